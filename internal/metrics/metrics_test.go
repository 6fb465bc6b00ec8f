package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/singlell/internal/lists"
	"github.com/lueurxax/singlell/internal/lists/mocks"
	"github.com/lueurxax/singlell/internal/log"
)

func TestMetricMiddleware(t *testing.T) {
	mockservice := mocks.NewMockService(gomock.NewController(t))
	mockservice.EXPECT().PushFront("l", "v").Return(nil)
	mockservice.EXPECT().PopFront("l").Return("", lists.ErrEmpty)
	mockservice.EXPECT().Get("l").Return([]string{"v"}, nil)

	registry := prometheus.NewRegistry()
	m := NewMetricMiddleware(mockservice, registry)

	require.NoError(t, m.PushFront("l", "v"))
	_, err := m.PopFront("l")
	assert.ErrorIs(t, err, lists.ErrEmpty)
	values, err := m.Get("l")
	require.NoError(t, err)
	assert.Equal(t, []string{"v"}, values)

	histogram := m.(*metricMiddleware).operationsHistogramSeconds
	assert.Equal(t, 3, testutil.CollectAndCount(histogram))
	count, err := testutil.GatherAndCount(registry, "singlell_lists_operation_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReporter(t *testing.T) {
	mockservice := mocks.NewMockService(gomock.NewController(t))
	gomock.InOrder(
		mockservice.EXPECT().Sizes().Return(map[string]int{"a": 3, "b": 0}),
		mockservice.EXPECT().Sizes().Return(map[string]int{"a": 1}).AnyTimes(),
	)

	registry := prometheus.NewRegistry()
	r := NewReporter(mockservice, 10*time.Millisecond, registry, log.NewLogger(logrus.New())).(*reporter)

	r.report()
	assert.Equal(t, 3.0, testutil.ToFloat64(r.sizes.WithLabelValues("a")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.sizes))
	assert.Len(t, r.reported, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	r.Start(ctx)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.sizes.WithLabelValues("a")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.sizes))
	assert.Equal(t, map[string]struct{}{"a": {}}, r.reported)
	assert.True(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
}

func TestReporter_KeepsSeriesWhileUpdating(t *testing.T) {
	mockservice := mocks.NewMockService(gomock.NewController(t))
	gomock.InOrder(
		mockservice.EXPECT().Sizes().Return(map[string]int{"a": 1, "b": 2}),
		mockservice.EXPECT().Sizes().Return(map[string]int{"a": 5}),
	)

	registry := prometheus.NewRegistry()
	r := NewReporter(mockservice, time.Minute, registry, log.NewLogger(logrus.New())).(*reporter)
	r.report()
	a := r.sizes.WithLabelValues("a")

	r.report()

	// the series of a list that still exists is updated in place
	assert.Same(t, a, r.sizes.WithLabelValues("a"))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.sizes.WithLabelValues("a")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.sizes))
}
