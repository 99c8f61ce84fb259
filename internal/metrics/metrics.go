// Package metrics holds the Prometheus collectors for the storefront.
//
// Mount Handler on GET /metrics in the long-running server. Lambda hosts
// record into the same registry but never expose it.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts gateway envelopes by endpoint and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of endpoint invocations.",
		},
		[]string{"endpoint", "status"},
	)

	// Notifications counts outbound notifications by channel and outcome.
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifier",
			Name:      "notifications_total",
			Help:      "Total notifications attempted.",
		},
		[]string{"channel", "outcome"}, // "sent" | "failed" | "skipped"
	)

	// PaymentDuration tracks payment provider latency.
	PaymentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "payment",
			Name:      "request_duration_seconds",
			Help:      "Duration of payment provider calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	Registry.MustRegister(
		RequestsTotal,
		Notifications,
		PaymentDuration,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func ObserveRequest(endpoint string, status int) {
	RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

func RecordNotification(channel, outcome string) {
	Notifications.WithLabelValues(channel, outcome).Inc()
}

// ObservePayment records a provider call; status is "error" when no response
// arrived.
func ObservePayment(status string, start time.Time) {
	PaymentDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}
