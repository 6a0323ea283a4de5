package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds only this service's collectors.
var Registry = prometheus.NewRegistry()

var (
	summariesResolved = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_summaries_resolved_total",
		Help: "Total roadmap summaries resolved",
	}, []string{"stage", "channel"})

	pageRenders = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "roadmap_page_renders_total",
		Help: "Total roadmap pages rendered",
	})

	requestDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route", "status"})
)

// IncSummaryResolved counts one resolution for a stage on a delivery channel (page, api).
func IncSummaryResolved(stage, channel string) {
	summariesResolved.WithLabelValues(stage, channel).Inc()
}

// IncPageRender increments the page render counter.
func IncPageRender() {
	pageRenders.Inc()
}

// ObserveRequest records a request duration in seconds.
func ObserveRequest(method, route, status string, seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
