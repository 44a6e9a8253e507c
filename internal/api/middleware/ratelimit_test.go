package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	mw "github.com/donaldgifford/phone-resale/internal/api/middleware"
	"github.com/donaldgifford/phone-resale/internal/metrics"
)

func newLimitedEcho(perSecond float64, burst int) *echo.Echo {
	e := echo.New()
	e.Use(mw.WriteRateLimit(perSecond, burst))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/", ok)
	e.POST("/add", ok)
	return e
}

func serveStatus(e *echo.Echo, method, path string) int {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, http.NoBody))
	return rec.Code
}

func TestWriteRateLimit(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimitedTotal.WithLabelValues(http.MethodPost))

	// A tiny refill rate keeps the bucket empty for the duration of the test.
	e := newLimitedEcho(0.001, 2)

	assert.Equal(t, http.StatusOK, serveStatus(e, http.MethodPost, "/add"))
	assert.Equal(t, http.StatusOK, serveStatus(e, http.MethodPost, "/add"))
	assert.Equal(t, http.StatusTooManyRequests, serveStatus(e, http.MethodPost, "/add"))

	// Reads pass even with an empty bucket.
	assert.Equal(t, http.StatusOK, serveStatus(e, http.MethodGet, "/"))

	assert.InDelta(t, before+1,
		testutil.ToFloat64(metrics.RateLimitedTotal.WithLabelValues(http.MethodPost)), 0)
}

func TestWriteRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	e := newLimitedEcho(0, 0)
	for range 50 {
		assert.Equal(t, http.StatusOK, serveStatus(e, http.MethodPost, "/add"))
	}
}
