package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/singlell/internal/lists"
)

const (
	namespace = "singlell"
	subsystem = "lists"
)

type metricMiddleware struct {
	next lists.Service

	operationsHistogramSeconds *prometheus.HistogramVec
}

func (m *metricMiddleware) observe(op string, st time.Time, err error) {
	m.operationsHistogramSeconds.WithLabelValues(op, strconv.FormatBool(err != nil)).Observe(time.Since(st).Seconds())
}

func (m *metricMiddleware) Names() []string {
	return m.next.Names()
}

func (m *metricMiddleware) Sizes() map[string]int {
	return m.next.Sizes()
}

func (m *metricMiddleware) Get(name string) ([]string, error) {
	st := time.Now()
	data, err := m.next.Get(name)
	m.observe("get", st, err)

	return data, err
}

func (m *metricMiddleware) Size(name string) (int, error) {
	st := time.Now()
	size, err := m.next.Size(name)
	m.observe("size", st, err)

	return size, err
}

func (m *metricMiddleware) Create(name string, values []string) error {
	st := time.Now()
	err := m.next.Create(name, values)
	m.observe("create", st, err)

	return err
}

func (m *metricMiddleware) Delete(name string) error {
	st := time.Now()
	err := m.next.Delete(name)
	m.observe("delete", st, err)

	return err
}

func (m *metricMiddleware) PushFront(name, value string) error {
	st := time.Now()
	err := m.next.PushFront(name, value)
	m.observe("push_front", st, err)

	return err
}

func (m *metricMiddleware) PopFront(name string) (string, error) {
	st := time.Now()
	value, err := m.next.PopFront(name)
	m.observe("pop_front", st, err)

	return value, err
}

func (m *metricMiddleware) InsertAfter(name string, index int, value string) error {
	st := time.Now()
	err := m.next.InsertAfter(name, index, value)
	m.observe("insert_after", st, err)

	return err
}

func (m *metricMiddleware) EraseAfter(name string, index int) (string, error) {
	st := time.Now()
	value, err := m.next.EraseAfter(name, index)
	m.observe("erase_after", st, err)

	return value, err
}

func (m *metricMiddleware) Clear(name string) error {
	st := time.Now()
	err := m.next.Clear(name)
	m.observe("clear", st, err)

	return err
}

func (m *metricMiddleware) Swap(a, b string) error {
	st := time.Now()
	err := m.next.Swap(a, b)
	m.observe("swap", st, err)

	return err
}

func (m *metricMiddleware) Copy(src, dst string) error {
	st := time.Now()
	err := m.next.Copy(src, dst)
	m.observe("copy", st, err)

	return err
}

func (m *metricMiddleware) Compare(a, b string) (int, error) {
	st := time.Now()
	c, err := m.next.Compare(a, b)
	m.observe("compare", st, err)

	return c, err
}

func (m *metricMiddleware) Save(ctx context.Context, name string) error {
	st := time.Now()
	err := m.next.Save(ctx, name)
	m.observe("save", st, err)

	return err
}

func (m *metricMiddleware) Load(ctx context.Context, name string) error {
	st := time.Now()
	err := m.next.Load(ctx, name)
	m.observe("load", st, err)

	return err
}

func (m *metricMiddleware) DeleteSnapshot(ctx context.Context, name string) error {
	st := time.Now()
	err := m.next.DeleteSnapshot(ctx, name)
	m.observe("delete_snapshot", st, err)

	return err
}

func (m *metricMiddleware) Snapshots(ctx context.Context) ([]string, error) {
	st := time.Now()
	names, err := m.next.Snapshots(ctx)
	m.observe("snapshots", st, err)

	return names, err
}

func NewMetricMiddleware(next lists.Service, registerer prometheus.Registerer) lists.Service {
	operations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "operation_seconds",
		Help:      "List operations histogram in seconds",
	}, []string{"op", "error"})

	registerer.MustRegister(operations)

	return &metricMiddleware{
		next:                       next,
		operationsHistogramSeconds: operations,
	}
}
