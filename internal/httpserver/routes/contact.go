package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/httpserver/handlers"
	"github.com/brujula-viajes/brujula/internal/httpserver/mw"
)

func init() { Register(registerContact) }

func registerContact(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.ContactBurst,
		RefillPerIPPerMin: d.ContactPerMin,
		MaxEntries:        d.ContactMaxIPBuckets,
		TrustProxy:        d.TrustProxy,
	})
	r.With(limit).Post("/contacto", handlers.SubmitContact(d))
}
