package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the booking engine.
type Metrics struct {
	ReservationsCreated   prometheus.Counter
	ReservationsCancelled prometheus.Counter
	BookingFailures       *prometheus.CounterVec
	MileageAccrued        prometheus.Counter
	BookingDuration       prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ReservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "The total number of confirmed reservations",
		}),
		ReservationsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_cancelled_total",
			Help:      "The total number of cancelled reservations",
		}),
		BookingFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_failures_total",
			Help:      "The total number of rejected booking attempts",
		}, []string{"reason"}),
		MileageAccrued: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mileage_accrued_total",
			Help:      "The total mileage points accrued on bookings",
		}),
		BookingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_duration_seconds",
			Help:      "Time taken to process booking requests",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
