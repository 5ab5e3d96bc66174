// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "natal_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "natal_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	}, []string{"route"})
	ChartsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "natal_charts_total",
		Help: "Chart computations by kind and outcome",
	}, []string{"kind", "outcome"})
	DSTAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "natal_dst_applied_total",
		Help: "Charts whose resolved offset differs from the baseline by more than 30 minutes",
	})
	PlaceCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "natal_place_cache_hits_total",
		Help: "Place lookups served from the in-memory cache",
	})
	PlaceCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "natal_place_cache_misses_total",
		Help: "Place lookups that required inference",
	})
	TimezoneResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "natal_timezone_resolutions_total",
		Help: "Offset resolutions by answering strategy",
	}, []string{"strategy"})
	InferenceRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "natal_inference_requests_total",
		Help: "Inference completions by provider and outcome",
	}, []string{"provider", "outcome"})
	InferenceDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "natal_inference_duration_ms",
		Help:    "Inference completion latency in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	}, []string{"provider"})
	ReadingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "natal_readings_total",
		Help: "Extended readings by charge kind",
	}, []string{"charge"})
	PaymentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "natal_payments_total",
		Help: "Payment log events by status",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(ChartsTotal)
	prometheus.MustRegister(DSTAppliedTotal)
	prometheus.MustRegister(PlaceCacheHitsTotal)
	prometheus.MustRegister(PlaceCacheMissesTotal)
	prometheus.MustRegister(TimezoneResolutions)
	prometheus.MustRegister(InferenceRequestsTotal)
	prometheus.MustRegister(InferenceDurationMs)
	prometheus.MustRegister(ReadingsTotal)
	prometheus.MustRegister(PaymentsTotal)
}

// Handler exposes the registered collectors.
func Handler() http.Handler { return promhttp.Handler() }
