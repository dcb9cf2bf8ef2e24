package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts searches by filter type.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "connecthub",
			Name:      "searches_total",
			Help:      "Total number of searches executed, by filter type",
		},
		[]string{"type"},
	)

	// SuggestCacheTotal counts autocomplete cache lookups by outcome.
	SuggestCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "connecthub",
			Name:      "suggest_cache_total",
			Help:      "Autocomplete cache lookups by result (hit/miss)",
		},
		[]string{"result"},
	)
)

// RegisterSearchMetrics registers the search counters with the default
// Prometheus registry. Call once at startup.
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SuggestCacheTotal)
}
