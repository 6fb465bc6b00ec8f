package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/singlell/internal/log"
)

const nameLabel = "name"

type sizer interface {
	Sizes() map[string]int
}

// Reporter periodically exports the size of every list.
type Reporter interface {
	Start(ctx context.Context)
}

type reporter struct {
	sizer
	interval time.Duration
	sizes    *prometheus.GaugeVec
	reported map[string]struct{}

	log log.Logger
}

func (r *reporter) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.report()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *reporter) report() {
	sizes := r.sizer.Sizes()

	for name, size := range sizes {
		r.sizes.WithLabelValues(name).Set(float64(size))
	}

	// lists deleted since the last tick must not keep their old value
	for name := range r.reported {
		if _, ok := sizes[name]; !ok {
			r.sizes.DeleteLabelValues(name)
			delete(r.reported, name)
		}
	}

	for name := range sizes {
		r.reported[name] = struct{}{}
	}

	r.log.WithField("lists", len(sizes)).Trace("list sizes reported")
}

func NewReporter(sizer sizer, interval time.Duration, registerer prometheus.Registerer, logger log.Logger) Reporter {
	sizes := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "size",
		Help:      "Number of elements per list",
	}, []string{nameLabel})

	registerer.MustRegister(sizes)

	return &reporter{
		sizer:    sizer,
		interval: interval,
		sizes:    sizes,
		reported: make(map[string]struct{}),
		log:      logger,
	}
}
