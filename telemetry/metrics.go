package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanr_provider_requests_total",
		Help: "Calls to external content providers by outcome",
	}, []string{"provider", "outcome"})

	Fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanr_fallbacks_total",
		Help: "Responses served from the template tier, by the provider that was skipped or failed",
	}, []string{"provider"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripplanr_provider_duration_seconds",
		Help:    "Time spent waiting on external providers",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 15, 30},
	}, []string{"provider"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanr_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})
)
