package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kpe/rasa-nlu/errors"
)

// cacheMetrics exposes cache statistics as Prometheus metrics when enabled.
type cacheMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	sets   prometheus.Counter
	size   prometheus.Gauge
}

func newCacheMetrics(reg prometheus.Registerer, prefix string) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rasa_nlu",
			Subsystem: prefix,
			Name:      "cache_hits_total",
			Help:      "Total number of cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rasa_nlu",
			Subsystem: prefix,
			Name:      "cache_misses_total",
			Help:      "Total number of cache misses",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rasa_nlu",
			Subsystem: prefix,
			Name:      "cache_sets_total",
			Help:      "Total number of cache store operations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rasa_nlu",
			Subsystem: prefix,
			Name:      "cache_size",
			Help:      "Current number of cache entries",
		}),
	}

	for _, c := range []prometheus.Collector{m.hits, m.misses, m.sets, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, errors.WrapFatal(err, "cache", "newCacheMetrics", "metrics registration")
		}
	}
	return m, nil
}

func (m *cacheMetrics) recordHit()       { m.hits.Inc() }
func (m *cacheMetrics) recordMiss()      { m.misses.Inc() }
func (m *cacheMetrics) recordSet()       { m.sets.Inc() }
func (m *cacheMetrics) updateSize(n int) { m.size.Set(float64(n)) }
