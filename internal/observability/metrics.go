package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gera_wallet_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// PassesGenerated counts generation attempts by card type and outcome
	PassesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gera_wallet_passes_generated_total",
			Help: "Number of pass generation attempts",
		},
		[]string{"card_type", "outcome"},
	)

	// PassLookups counts retrievals by outcome
	PassLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gera_wallet_pass_lookups_total",
			Help: "Number of pass retrievals",
		},
		[]string{"result"},
	)

	// ImageFetchDuration tracks thumbnail downloads
	ImageFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gera_wallet_image_fetch_duration_seconds",
			Help:    "Duration of thumbnail downloads in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2},
		},
		[]string{"status"},
	)
)
