package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_RoundTrip(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	setFlash(e.NewContext(httptest.NewRequest(http.MethodPost, "/add", http.NoBody), rec), Flash{
		Category: FlashSuccess,
		Message:  "Phone listed on Y at $110.00 [3 stars]",
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()

	f, ok := popFlash(e.NewContext(req, rec))
	require.True(t, ok)
	assert.Equal(t, FlashSuccess, f.Category)
	assert.Equal(t, "Phone listed on Y at $110.00 [3 stars]", f.Message)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestPopFlash_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "not base64", cookie: &http.Cookie{Name: flashCookie, Value: "%%%"}},
		{name: "not json", cookie: &http.Cookie{Name: flashCookie, Value: "bm90LWpzb24"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			_, ok := popFlash(echo.New().NewContext(req, httptest.NewRecorder()))
			assert.False(t, ok)
		})
	}
}
