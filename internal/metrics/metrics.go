package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the pricing pipeline and
// the exchange-rate cache.
type Metrics struct {
	// Cache behaviour
	RateCacheHitsTotal   prometheus.Counter
	RateCacheMissesTotal prometheus.Counter

	// Remote provider
	ProviderFetchesTotal prometheus.Counter
	ProviderErrorsTotal  prometheus.Counter

	// Pricing outcomes, labelled by the winning discount policy
	PricingsTotal *prometheus.CounterVec

	// HTTP surface
	RequestDuration *prometheus.HistogramVec
}

// New registers and returns the application metrics on the default
// Prometheus registry.
func New() *Metrics {
	return &Metrics{
		RateCacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rate_cache_hits_total",
			Help: "Rate lookups served from the cache without a provider call",
		}),
		RateCacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rate_cache_misses_total",
			Help: "Rate lookups that found the cache empty or stale",
		}),
		ProviderFetchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rate_provider_fetches_total",
			Help: "Calls made to the remote exchange-rate provider",
		}),
		ProviderErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rate_provider_errors_total",
			Help: "Provider calls that failed or lacked the target currency",
		}),
		PricingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "order_pricings_total",
			Help: "Completed order pricings by winning discount policy",
		}, []string{"policy"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// RecordPricing increments the pricing counter for a policy. Safe on a nil
// receiver so callers can run without metrics wired.
func (m *Metrics) RecordPricing(policy string) {
	if m == nil {
		return
	}
	m.PricingsTotal.WithLabelValues(policy).Inc()
}

// RecordCacheHit counts a lookup served without a provider call.
func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.RateCacheHitsTotal.Inc()
}

// RecordCacheMiss counts a lookup that needed a refresh.
func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.RateCacheMissesTotal.Inc()
}

// RecordProviderFetch counts one remote provider call.
func (m *Metrics) RecordProviderFetch() {
	if m == nil {
		return
	}
	m.ProviderFetchesTotal.Inc()
}

// RecordProviderError counts a failed remote provider call.
func (m *Metrics) RecordProviderError() {
	if m == nil {
		return
	}
	m.ProviderErrorsTotal.Inc()
}
