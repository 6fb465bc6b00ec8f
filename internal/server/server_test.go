package server

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/lueurxax/singlell/internal/lists"
	"github.com/lueurxax/singlell/internal/lists/mocks"
	"github.com/lueurxax/singlell/internal/log"
	redisRepo "github.com/lueurxax/singlell/internal/repo/redis"
)

func newTestServer(t *testing.T) (*mocks.MockService, *prometheus.Registry, fasthttp.RequestHandler) {
	mockservice := mocks.NewMockService(gomock.NewController(t))
	registry := prometheus.NewRegistry()
	s := NewServer(&Config{Address: ":0"}, mockservice, registry, log.NewLogger(logrus.New()))

	return mockservice, registry, s.Handler()
}

func do(handler fasthttp.RequestHandler, method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	ctx.Request.SetBodyString(body)
	handler(ctx)

	return ctx
}

func Test_server_Get(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().Get("todo").Return([]string{"a", "b"}, nil)
	mockservice.EXPECT().Get("nope").Return(nil, errors.Wrap(lists.ErrNotFound, "nope"))

	ctx := do(handler, fasthttp.MethodGet, "/lists/todo", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"name":"todo","size":2,"values":["a","b"]}`, string(ctx.Response.Body()))
	assert.Equal(t, contentType, string(ctx.Response.Header.ContentType()))

	ctx = do(handler, fasthttp.MethodGet, "/lists/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"nope: list not found"}`, string(ctx.Response.Body()))
}

func Test_server_Names(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().Names().Return([]string{"a", "b"})

	ctx := do(handler, fasthttp.MethodGet, "/lists", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"names":["a","b"]}`, string(ctx.Response.Body()))
}

func Test_server_Create(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		values []string
		err    error
		status int
	}{
		{name: "with values", body: `["1","2"]`, values: []string{"1", "2"}, status: fasthttp.StatusCreated},
		{name: "empty body", body: ``, values: []string{}, status: fasthttp.StatusCreated},
		{name: "exists", body: `[]`, values: []string{}, err: lists.ErrExists, status: fasthttp.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockservice, _, handler := newTestServer(t)
			mockservice.EXPECT().Create("l", tt.values).Return(tt.err)

			ctx := do(handler, fasthttp.MethodPut, "/lists/l", tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
		})
	}

	t.Run("bad body", func(t *testing.T) {
		_, _, handler := newTestServer(t)
		ctx := do(handler, fasthttp.MethodPut, "/lists/l", `{"a":1}`)
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})
}

func Test_server_Front(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	gomock.InOrder(
		mockservice.EXPECT().PushFront("l", "x").Return(nil),
		mockservice.EXPECT().PopFront("l").Return("x", nil),
		mockservice.EXPECT().PopFront("l").Return("", errors.Wrap(lists.ErrEmpty, "l")),
	)

	ctx := do(handler, fasthttp.MethodPost, "/lists/l/front", `{"value":"x"}`)
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodDelete, "/lists/l/front", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"value":"x"}`, string(ctx.Response.Body()))

	ctx = do(handler, fasthttp.MethodDelete, "/lists/l/front", "")
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func Test_server_After(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().InsertAfter("l", -1, "x").Return(nil)
	mockservice.EXPECT().InsertAfter("l", 5, "y").Return(lists.ErrOutOfRange)
	mockservice.EXPECT().EraseAfter("l", 0).Return("z", nil)

	ctx := do(handler, fasthttp.MethodPost, "/lists/l/after/-1", `{"value":"x"}`)
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodPost, "/lists/l/after/5", `{"value":"y"}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodDelete, "/lists/l/after/0", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"value":"z"}`, string(ctx.Response.Body()))

	ctx = do(handler, fasthttp.MethodDelete, "/lists/l/after/first", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func Test_server_Pairs(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().Swap("a", "b").Return(nil)
	mockservice.EXPECT().Copy("a", "c").Return(nil)
	mockservice.EXPECT().Compare("a", "b").Return(-1, nil)

	ctx := do(handler, fasthttp.MethodPost, "/swap/a/b", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodPost, "/copy/a/c", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodGet, "/compare/a/b", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"result":-1}`, string(ctx.Response.Body()))
}

func Test_server_Lifecycle(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().Clear("l").Return(nil)
	mockservice.EXPECT().Save(gomock.Any(), "l").Return(nil)
	mockservice.EXPECT().Load(gomock.Any(), "l").Return(errors.New("redis down"))
	mockservice.EXPECT().Delete("l").Return(nil)

	ctx := do(handler, fasthttp.MethodPost, "/lists/l/clear", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodPost, "/lists/l/save", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodPost, "/lists/l/load", "")
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodDelete, "/lists/l", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
}

func Test_server_Metrics(t *testing.T) {
	_, registry, handler := newTestServer(t)
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_gauge", Help: "test"})
	registry.MustRegister(gauge)
	gauge.Set(3)

	ctx := do(handler, fasthttp.MethodGet, "/metrics", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "test_gauge 3")
}

func Test_server_Size(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().Size("l").Return(3, nil)
	mockservice.EXPECT().Size("nope").Return(0, errors.Wrap(lists.ErrNotFound, "nope"))

	ctx := do(handler, fasthttp.MethodGet, "/lists/l/size", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"name":"l","size":3}`, string(ctx.Response.Body()))

	ctx = do(handler, fasthttp.MethodGet, "/lists/nope/size", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func Test_server_Snapshots(t *testing.T) {
	mockservice, _, handler := newTestServer(t)
	mockservice.EXPECT().Load(gomock.Any(), "nope").Return(errors.Wrap(errors.Wrap(lists.ErrNoSnapshot, "nope"), "load"))
	mockservice.EXPECT().DeleteSnapshot(gomock.Any(), "l").Return(nil)
	mockservice.EXPECT().DeleteSnapshot(gomock.Any(), "nope").Return(errors.Wrap(lists.ErrNoSnapshot, "nope"))
	mockservice.EXPECT().Snapshots(gomock.Any()).Return([]string{"a", "l"}, nil)

	ctx := do(handler, fasthttp.MethodPost, "/lists/nope/load", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodDelete, "/lists/l/snapshot", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodDelete, "/lists/nope/snapshot", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(handler, fasthttp.MethodGet, "/snapshots", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"names":["a","l"]}`, string(ctx.Response.Body()))
}

func Test_server_LoadMissingSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockrepo := mocks.NewMockrepo(ctrl)
	mockrepo.EXPECT().GetList(gomock.Any(), "nope").Return(nil, errors.Wrap(redisRepo.ErrNotFound, "nope"))

	logger := log.NewLogger(logrus.New())
	s := NewServer(&Config{}, lists.NewService(mockrepo, logger), prometheus.NewRegistry(), logger)

	ctx := do(s.Handler(), fasthttp.MethodPost, "/lists/nope/load", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), lists.ErrNoSnapshot.Error())
}
