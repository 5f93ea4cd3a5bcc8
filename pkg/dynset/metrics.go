package dynset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

type metrics struct {
	entries  prometheus.Gauge
	bytes    prometheus.Gauge
	hits     prometheus.Counter
	misses   prometheus.Counter
	removals prometheus.Counter
}

// newMetrics registers the set metrics on reg. A nil reg leaves them
// unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	interns := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "stringcache",
		Name:      "dynamic_interns_total",
		Help:      "Total number of interns into the dynamic atom set by result.",
	}, []string{"result"})

	return &metrics{
		entries: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "stringcache",
			Name:      "dynamic_entries",
			Help:      "Number of live entries in the dynamic atom set.",
		}),
		bytes: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "stringcache",
			Name:      "dynamic_bytes",
			Help:      "Bytes of string content held by the dynamic atom set.",
		}),
		hits:   interns.WithLabelValues(resultHit),
		misses: interns.WithLabelValues(resultMiss),
		removals: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "stringcache",
			Name:      "dynamic_removals_total",
			Help:      "Total number of entries removed after their last reference was released.",
		}),
	}
}
