package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/httpserver/handlers"
)

func init() { Register(registerQuote) }

func registerQuote(r chi.Router, d deps.Deps) {
	r.Post("/cotizar", handlers.CreateQuote(d))
}
