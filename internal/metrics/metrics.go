package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "endpoint"},
	)

	// Business metrics
	contactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"inquiry_type"},
	)

	newsletterSubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_subscriptions_total",
			Help: "Newsletter subscribe requests by outcome",
		},
		[]string{"outcome"}, // subscribed, already_subscribed, reactivated
	)

	newsViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_views_total",
			Help: "Total number of news article detail views",
		},
	)

	adminBulkActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_bulk_actions_total",
			Help: "Admin bulk actions executed",
		},
		[]string{"entity", "action"},
	)

	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)

	outboxPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_published_total",
			Help: "Outbox events handed to Kafka",
		},
		[]string{"topic", "status"},
	)
)

// Middleware records request count, latency and response size. The
// endpoint label is the route template so that slugs do not explode the
// label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusCode).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint, statusCode).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(c.Request.Method, endpoint).Observe(float64(c.Writer.Size()))
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func RecordContactSubmission(inquiryType string) {
	contactSubmissionsTotal.WithLabelValues(inquiryType).Inc()
}

func RecordNewsletterSubscription(outcome string) {
	newsletterSubscriptionsTotal.WithLabelValues(outcome).Inc()
}

func RecordNewsView() {
	newsViewsTotal.Inc()
}

func RecordBulkAction(entity, action string) {
	adminBulkActionsTotal.WithLabelValues(entity, action).Inc()
}

func RecordAuthAttempt(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	authAttemptsTotal.WithLabelValues(status).Inc()
}

func RecordOutboxPublish(topic string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	outboxPublishedTotal.WithLabelValues(topic, status).Inc()
}
