package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/news/:slug", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/news/:slug", "200"))

	for _, slug := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news/"+slug, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/news/:slug", "200"))
	assert.Equal(t, float64(2), after-before)
}

func TestBusinessCounters(t *testing.T) {
	before := testutil.ToFloat64(adminBulkActionsTotal.WithLabelValues("inquiries", "mark_responded"))
	RecordBulkAction("inquiries", "mark_responded")
	assert.Equal(t, float64(1), testutil.ToFloat64(adminBulkActionsTotal.WithLabelValues("inquiries", "mark_responded"))-before)

	before = testutil.ToFloat64(newsletterSubscriptionsTotal.WithLabelValues("reactivated"))
	RecordNewsletterSubscription("reactivated")
	assert.Equal(t, float64(1), testutil.ToFloat64(newsletterSubscriptionsTotal.WithLabelValues("reactivated"))-before)

	before = testutil.ToFloat64(outboxPublishedTotal.WithLabelValues("t", "failed"))
	RecordOutboxPublish("t", errors.New("broker down"))
	assert.Equal(t, float64(1), testutil.ToFloat64(outboxPublishedTotal.WithLabelValues("t", "failed"))-before)
}
