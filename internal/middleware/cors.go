package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSPolicy describes the cross-origin rules applied to every response.
type CORSPolicy struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // preflight cache lifetime, seconds
}

// DefaultCORSPolicy allows any origin to read the API with GET.
var DefaultCORSPolicy = CORSPolicy{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet},
	AllowedHeaders: []string{"Authorization", "Content-Type"},
	MaxAge:         3600,
}

// CORS returns middleware enforcing p. Preflight requests are answered by
// the middleware and never reach the router.
func CORS(p CORSPolicy) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: p.AllowedOrigins,
		AllowedMethods: p.AllowedMethods,
		AllowedHeaders: p.AllowedHeaders,
		MaxAge:         p.MaxAge,
	})
}
