package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matching Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carematch",
			Name:      "match_requests_total",
			Help:      "Total number of matching requests",
		},
		[]string{"status"}, // "success" / "error"
	)

	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "carematch",
			Name:      "match_duration_seconds",
			Help:      "End-to-end matching duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	MatchCandidatePoolSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "carematch",
			Name:      "match_candidate_pool_size",
			Help:      "Number of eligible caregivers scored per matching request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

var matchMetricsRegistered bool

// RegisterMatchingMetrics registers Prometheus matching metrics. Must be called once from main.
func RegisterMatchingMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(MatchCandidatePoolSize)
	matchMetricsRegistered = true
}
