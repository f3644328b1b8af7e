package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dnimmo/bestretro/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_ActualRequestAllowsAnyOrigin(t *testing.T) {
	var called bool
	h := middleware.CORS(middleware.DefaultCORSPolicy)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Origin", "https://retro.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	var called bool
	h := middleware.CORS(middleware.DefaultCORSPolicy)(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/user", nil)
	req.Header.Set("Origin", "https://retro.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called, "preflight must not reach the handler")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORS_PreflightRejected(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		headers string
	}{
		{name: "method not allowed", method: http.MethodPost},
		{name: "header not allowed", method: http.MethodGet, headers: "X-Custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			h := middleware.CORS(middleware.DefaultCORSPolicy)(okHandler(&called))

			req := httptest.NewRequest(http.MethodOptions, "/user", nil)
			req.Header.Set("Origin", "https://retro.example.com")
			req.Header.Set("Access-Control-Request-Method", tt.method)
			if tt.headers != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.headers)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
