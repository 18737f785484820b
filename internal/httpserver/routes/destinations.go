package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/httpserver/handlers"
)

func init() { Register(registerDestinations) }

func registerDestinations(r chi.Router, d deps.Deps) {
	r.Get("/destinos", handlers.ListDestinations(d))
	r.Get("/destinos/{id}", handlers.GetDestination(d))
}
