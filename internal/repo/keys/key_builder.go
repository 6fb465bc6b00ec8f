package keys

type Builder interface {
	Version() []byte
	Lists() []byte
	List(name string) []byte
	// Name strips the list prefix from a key produced by List.
	Name(key []byte) string
}

type builder struct {
}

func (b builder) Version() []byte {
	return append([]byte{}, versionPrefix[:]...)
}

func (b builder) Lists() []byte {
	return append([]byte{}, listPrefix[:]...)
}

func (b builder) List(name string) []byte {
	return append(listPrefix[:], []byte(name)...)
}

func (b builder) Name(key []byte) string {
	if len(key) < len(listPrefix) {
		return ""
	}

	return string(key[len(listPrefix):])
}

func NewBuilder() Builder {
	return &builder{}
}
