package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog"

var (
	listCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_list_requests_total",
		Help:      "Listing cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	cacheLookupSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_lookup_duration_seconds",
		Help:      "Latency of listing cache lookups.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"result"})

	invalidations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Successful listing namespace purges.",
	})

	invalidationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidation_failures_total",
		Help:      "Listing namespace purges that failed and were skipped.",
	})

	reactionToggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reaction_toggles_total",
		Help:      "Committed reaction toggles by outcome.",
	}, []string{"status"})

	reactionToggleRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reaction_toggle_retries_total",
		Help:      "Toggle attempts repeated after losing a race on the same user and product.",
	})
)

func init() {
	prometheus.MustRegister(
		listCacheRequests,
		cacheLookupSeconds,
		invalidations,
		invalidationFailures,
		reactionToggles,
		reactionToggleRetries,
	)
}

func IncListHit()   { listCacheRequests.WithLabelValues("hit").Inc() }
func IncListMiss()  { listCacheRequests.WithLabelValues("miss").Inc() }
func IncListError() { listCacheRequests.WithLabelValues("error").Inc() }

// AddHitDuration records a cache hit lookup time in seconds.
func AddHitDuration(seconds float64) {
	cacheLookupSeconds.WithLabelValues("hit").Observe(seconds)
}

// AddMissDuration records a cache miss lookup time in seconds.
func AddMissDuration(seconds float64) {
	cacheLookupSeconds.WithLabelValues("miss").Observe(seconds)
}

func IncInvalidation(ok bool) {
	if ok {
		invalidations.Inc()
		return
	}
	invalidationFailures.Inc()
}

func IncToggle(status string) { reactionToggles.WithLabelValues(status).Inc() }

func IncToggleRetry() { reactionToggleRetries.Inc() }

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
