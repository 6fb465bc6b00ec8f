package server

import (
	"context"
	"errors"
	"strconv"

	"github.com/buaazp/fasthttprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/lueurxax/singlell/internal/lists"
	"github.com/lueurxax/singlell/internal/log"
)

const (
	nameParam  = "name"
	indexParam = "index"

	contentType = "application/json"
)

var errBadIndex = errors.New("index must be an integer")

type Server interface {
	Handler() fasthttp.RequestHandler
	ListenAndServe(ctx context.Context) error
}

type server struct {
	cfg     *Config
	service lists.Service
	router  *fasthttprouter.Router

	log log.Logger
}

func (s *server) Handler() fasthttp.RequestHandler {
	return s.router.Handler
}

// ListenAndServe serves until ctx is done, then shuts the listener down.
func (s *server) ListenAndServe(ctx context.Context) error {
	srv := &fasthttp.Server{
		Handler:      s.router.Handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		Name:         "singlell",
	}

	go func() {
		<-ctx.Done()

		if err := srv.Shutdown(); err != nil {
			s.log.WithError(err).Error("shutdown")
		}
	}()

	s.log.WithField("address", s.cfg.Address).Info("listening")

	return srv.ListenAndServe(s.cfg.Address)
}

func (s *server) names(ctx *fasthttp.RequestCtx) {
	s.write(ctx, fasthttp.StatusOK, namesResponse{Names: s.service.Names()})
}

func (s *server) get(ctx *fasthttp.RequestCtx) {
	name := param(ctx, nameParam)

	values, err := s.service.Get(name)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.write(ctx, fasthttp.StatusOK, listResponse{Name: name, Size: len(values), Values: values})
}

func (s *server) size(ctx *fasthttp.RequestCtx) {
	name := param(ctx, nameParam)

	size, err := s.service.Size(name)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.write(ctx, fasthttp.StatusOK, sizeResponse{Name: name, Size: size})
}

func (s *server) create(ctx *fasthttp.RequestCtx) {
	values := make([]string, 0)
	if body := ctx.PostBody(); len(body) > 0 {
		if err := jsoniter.Unmarshal(body, &values); err != nil {
			s.badRequest(ctx, err)
			return
		}
	}

	if err := s.service.Create(param(ctx, nameParam), values); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusCreated)
}

func (s *server) remove(ctx *fasthttp.RequestCtx) {
	if err := s.service.Delete(param(ctx, nameParam)); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) pushFront(ctx *fasthttp.RequestCtx) {
	req := valueRequest{}
	if err := jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.badRequest(ctx, err)
		return
	}

	if err := s.service.PushFront(param(ctx, nameParam), req.Value); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) popFront(ctx *fasthttp.RequestCtx) {
	value, err := s.service.PopFront(param(ctx, nameParam))
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.write(ctx, fasthttp.StatusOK, valueResponse{Value: value})
}

func (s *server) insertAfter(ctx *fasthttp.RequestCtx) {
	index, err := strconv.Atoi(param(ctx, indexParam))
	if err != nil {
		s.badRequest(ctx, errBadIndex)
		return
	}

	req := valueRequest{}
	if err = jsoniter.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.badRequest(ctx, err)
		return
	}

	if err = s.service.InsertAfter(param(ctx, nameParam), index, req.Value); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) eraseAfter(ctx *fasthttp.RequestCtx) {
	index, err := strconv.Atoi(param(ctx, indexParam))
	if err != nil {
		s.badRequest(ctx, errBadIndex)
		return
	}

	value, err := s.service.EraseAfter(param(ctx, nameParam), index)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.write(ctx, fasthttp.StatusOK, valueResponse{Value: value})
}

func (s *server) clear(ctx *fasthttp.RequestCtx) {
	if err := s.service.Clear(param(ctx, nameParam)); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) save(ctx *fasthttp.RequestCtx) {
	if err := s.service.Save(ctx, param(ctx, nameParam)); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) load(ctx *fasthttp.RequestCtx) {
	if err := s.service.Load(ctx, param(ctx, nameParam)); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) deleteSnapshot(ctx *fasthttp.RequestCtx) {
	if err := s.service.DeleteSnapshot(ctx, param(ctx, nameParam)); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) snapshots(ctx *fasthttp.RequestCtx) {
	names, err := s.service.Snapshots(ctx)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.write(ctx, fasthttp.StatusOK, namesResponse{Names: names})
}

func (s *server) swap(ctx *fasthttp.RequestCtx) {
	if err := s.service.Swap(param(ctx, "a"), param(ctx, "b")); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) copy(ctx *fasthttp.RequestCtx) {
	if err := s.service.Copy(param(ctx, "src"), param(ctx, "dst")); err != nil {
		s.fail(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *server) compare(ctx *fasthttp.RequestCtx) {
	result, err := s.service.Compare(param(ctx, "a"), param(ctx, "b"))
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.write(ctx, fasthttp.StatusOK, compareResponse{Result: result})
}

func (s *server) write(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	data, err := jsoniter.Marshal(body)
	if err != nil {
		s.log.WithError(err).Error("encode response")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)

		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType(contentType)
	ctx.SetBody(data)
}

func (s *server) badRequest(ctx *fasthttp.RequestCtx, err error) {
	s.write(ctx, fasthttp.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *server) fail(ctx *fasthttp.RequestCtx, err error) {
	status := fasthttp.StatusInternalServerError

	switch {
	case errors.Is(err, lists.ErrNotFound), errors.Is(err, lists.ErrNoSnapshot):
		status = fasthttp.StatusNotFound
	case errors.Is(err, lists.ErrExists):
		status = fasthttp.StatusConflict
	case errors.Is(err, lists.ErrEmpty), errors.Is(err, lists.ErrOutOfRange):
		status = fasthttp.StatusUnprocessableEntity
	default:
		s.log.WithError(err).WithField("path", string(ctx.Path())).Error("request failed")
	}

	s.write(ctx, status, errorResponse{Error: err.Error()})
}

func param(ctx *fasthttp.RequestCtx, key string) string {
	value, _ := ctx.UserValue(key).(string)
	return value
}

func NewServer(cfg *Config, service lists.Service, gatherer prometheus.Gatherer, logger log.Logger) Server {
	s := &server{
		cfg:     cfg,
		service: service,
		router:  fasthttprouter.New(),
		log:     logger,
	}

	s.router.GET("/lists", s.names)
	s.router.GET("/lists/:name", s.get)
	s.router.GET("/lists/:name/size", s.size)
	s.router.PUT("/lists/:name", s.create)
	s.router.DELETE("/lists/:name", s.remove)
	s.router.POST("/lists/:name/front", s.pushFront)
	s.router.DELETE("/lists/:name/front", s.popFront)
	s.router.POST("/lists/:name/after/:index", s.insertAfter)
	s.router.DELETE("/lists/:name/after/:index", s.eraseAfter)
	s.router.POST("/lists/:name/clear", s.clear)
	s.router.POST("/lists/:name/save", s.save)
	s.router.POST("/lists/:name/load", s.load)
	s.router.DELETE("/lists/:name/snapshot", s.deleteSnapshot)
	s.router.GET("/snapshots", s.snapshots)
	s.router.POST("/swap/:a/:b", s.swap)
	s.router.POST("/copy/:src/:dst", s.copy)
	s.router.GET("/compare/:a/:b", s.compare)
	s.router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return s
}
