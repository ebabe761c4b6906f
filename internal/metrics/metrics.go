package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rahi_booking_transitions_total",
			Help: "Booking lifecycle transitions applied, by target status",
		},
		[]string{"status"},
	)

	BookingRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rahi_booking_rejections_total",
			Help: "Lifecycle operations rejected, by operation and reason",
		},
		[]string{"op", "reason"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rahi_operation_duration_seconds",
			Help:    "Duration of service operations",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2},
		},
		[]string{"op"},
	)

	WalletOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rahi_wallet_operations_total",
			Help: "Wallet ledger operations, by type and result",
		},
		[]string{"type", "result"},
	)

	NotificationsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rahi_notifications_delivered_total",
			Help: "Notifications stored or pushed, by channel and result",
		},
		[]string{"channel", "result"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rahi_booking_events_published_total",
			Help: "Booking events handed to the publisher, by routing key and result",
		},
		[]string{"key", "result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rahi_http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"method", "route", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rahi_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}

// Result labels a counter with "ok" or "error".
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
