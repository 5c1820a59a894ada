package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors which the server updates.
type Metrics struct {
	Requests      *prometheus.CounterVec
	PathsComputed *prometheus.CounterVec
	ComputeTime   prometheus.Histogram
	CacheLookups  *prometheus.CounterVec
	Fallbacks     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lucid_http_requests_total",
				Help: "Total number of HTTP requests, by route and status code",
			},
			[]string{"route", "code"},
		),
		PathsComputed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lucid_paths_computed_total",
				Help: "Total number of paths sampled, by outcome",
			},
			[]string{"outcome"},
		),
		ComputeTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lucid_path_compute_seconds",
				Help:    "Time taken to compute a path, including cache lookups",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lucid_path_cache_lookups_total",
				Help: "Total number of path cache lookups, by result",
			},
			[]string{"result"},
		),
		Fallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lucid_share_fallbacks_total",
				Help: "Total number of share codes which couldn't be decoded and were replaced by the default",
			},
		),
	}

	reg.MustRegister(m.Requests, m.PathsComputed, m.ComputeTime, m.CacheLookups, m.Fallbacks)
	return m
}
