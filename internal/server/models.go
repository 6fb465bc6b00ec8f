package server

type listResponse struct {
	Name   string   `json:"name"`
	Size   int      `json:"size"`
	Values []string `json:"values"`
}

type sizeResponse struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type valueResponse struct {
	Value string `json:"value"`
}

type compareResponse struct {
	Result int `json:"result"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
}
