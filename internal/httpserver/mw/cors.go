package mw

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry must be a full origin (scheme + host, no trailing slash).
// If allowedOrigins is empty, it acts as a passthrough.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Itinerary-Session"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
