package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterPerIP(t *testing.T) {
	l := NewIPRateLimiter(2)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestIPRateLimiterSweep(t *testing.T) {
	l := NewIPRateLimiter(5)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(5 * time.Minute)
	l.Allow("b")
	now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, l.Sweep())
	assert.Len(t, l.visitors, 1)
}

func TestRateLimitHandler(t *testing.T) {
	l := NewIPRateLimiter(1)
	h := l.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.0.2.1:5555"

	first := httptest.NewRecorder()
	h.ServeHTTP(first, req)
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "RATE_LIMITED")
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/things/{id}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/42", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/things/{id}", "418"))

	assert.Equal(t, before+1, after)
}

func TestPrometheusRecorder(t *testing.T) {
	rec := PrometheusRecorder{}
	before := testutil.ToFloat64(currencyResolutions.WithLabelValues("rates_failed"))

	rec.RecordCurrencyResolution("rates_failed")
	rec.RecordLeadSubmission("sent")
	rec.RecordIntegrationError("geocode")

	assert.Equal(t, before+1, testutil.ToFloat64(currencyResolutions.WithLabelValues("rates_failed")))
}
