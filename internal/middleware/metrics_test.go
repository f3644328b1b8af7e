package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dnimmo/bestretro/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *middleware.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	m := middleware.NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/teams/{teamID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/teams/1", "/teams/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `bestretro_http_requests_total{method="GET",route="/teams/{teamID}",status="200"} 2`)
	assert.Contains(t, body, `bestretro_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `bestretro_http_request_duration_seconds_count{method="GET",route="/teams/{teamID}"} 2`)
	assert.Contains(t, body, "go_goroutines")
}
