package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "license_seats_allocations_total",
		Help: "Count of license allocation requests by outcome",
	}, []string{"outcome"})

	allocationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "license_seats_allocation_duration_seconds",
		Help:    "Duration of license allocation requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	seatsInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "license_seats_in_use",
		Help: "Seats currently consumed, as of the last usage computation",
	})
)

// ObserveAllocation records one allocation attempt with its outcome.
func ObserveAllocation(outcome string, duration time.Duration) {
	allocationsTotal.WithLabelValues(outcome).Inc()
	allocationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// SetSeatsInUse updates the consumption gauge.
func SetSeatsInUse(count int) {
	if count < 0 {
		count = 0
	}
	seatsInUse.Set(float64(count))
}
