package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service bundles the panel's prometheus collectors on a dedicated
// registry so multiple server instances (tests) never collide on the
// default one.
type Service struct {
	registry *prometheus.Registry

	RefreshTotal    prometheus.Counter
	RefreshFailures prometheus.Counter
	RefreshDuration prometheus.Histogram
	SignTotal       *prometheus.CounterVec
	SendTotal       *prometheus.CounterVec
}

func New() *Service {
	registry := prometheus.NewRegistry()

	s := &Service{
		registry: registry,
		RefreshTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallet_panel_refresh_total",
			Help: "Total number of wallet state refresh cycles.",
		}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallet_panel_refresh_failures_total",
			Help: "Total number of wallet state refresh cycles that failed hard.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wallet_panel_refresh_duration_seconds",
			Help:    "Duration of wallet state refresh cycles.",
			Buckets: prometheus.DefBuckets,
		}),
		SignTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_panel_sign_total",
			Help: "Total number of message signing operations.",
		}, []string{"outcome"}),
		SendTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_panel_send_total",
			Help: "Total number of submitted transactions.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.RefreshTotal,
		s.RefreshFailures,
		s.RefreshDuration,
		s.SignTotal,
		s.SendTotal,
	)

	return s
}

// Registry exposes the underlying registry for the metrics endpoint.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}
