package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/httpserver/handlers"
)

func init() { Register(registerItinerary) }

func registerItinerary(r chi.Router, d deps.Deps) {
	r.Get("/itinerario", handlers.GetItinerary(d))
	r.Post("/itinerario", handlers.AddReservation(d))
	r.Delete("/itinerario", handlers.ClearItinerary(d))
	r.Delete("/itinerario/{index}", handlers.RemoveReservation(d))
}
