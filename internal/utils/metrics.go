package utils

import (
	"time"

	"realestate-valley/pkg/metrics"
)

func RecordUpstreamDuration(endpoint string, start time.Time) {
	duration := time.Since(start).Seconds()
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration)
}

func RecordUpstreamError(endpoint, kind string) {
	metrics.UpstreamErrorsTotal.WithLabelValues(endpoint, kind).Inc()
}

func RecordCacheLookup(tier string, hit bool) {
	if hit {
		metrics.CacheHitsTotal.WithLabelValues(tier).Inc()
		return
	}
	metrics.CacheMissesTotal.WithLabelValues(tier).Inc()
}

func RecordDegradedPeriod() {
	metrics.DegradedPeriodsTotal.Inc()
}
