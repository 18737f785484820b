package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brujula-viajes/brujula/internal/domain"
	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/logger"
)

// SessionHeader selects the itinerary slot. An absent or empty header maps
// to the default slot, which keeps pre-session clients working.
const SessionHeader = "X-Itinerary-Session"

type reservationView struct {
	Destination string  `json:"destino"`
	StartDate   string  `json:"fecha"`
	Days        int     `json:"dias"`
	PricePerDay float64 `json:"precioDia"`
	Total       float64 `json:"total"`
	TotalText   string  `json:"totalTexto"`
}

type itineraryResponse struct {
	Items          []reservationView `json:"items"`
	Count          int               `json:"count"`
	GrandTotal     float64           `json:"granTotal"`
	GrandTotalText string            `json:"granTotalTexto"`
}

func session(r *http.Request) string {
	return r.Header.Get(SessionHeader)
}

// GetItinerary lists the session's reservations. Totals are recomputed from
// each record's own fields, never read from the stored total.
func GetItinerary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Itineraries.ReadItinerary(r.Context(), session(r))
		if err != nil {
			d.Logger.Error("failed to read itinerary", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "storage_unavailable")
			return
		}

		views := make([]reservationView, 0, len(items))
		var grand float64
		for i := range items {
			total := items[i].Total()
			grand += total
			views = append(views, reservationView{
				Destination: items[i].Destination,
				StartDate:   items[i].StartDate,
				Days:        items[i].Days,
				PricePerDay: items[i].PricePerDay,
				Total:       total,
				TotalText:   domain.FormatUSD(total),
			})
		}

		writeJSON(w, http.StatusOK, itineraryResponse{
			Items:          views,
			Count:          len(views),
			GrandTotal:     grand,
			GrandTotalText: domain.FormatUSD(grand),
		})
	}
}

// AddReservation re-validates through the calculator, then appends a
// snapshot record with the rounded stored total.
func AddReservation(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body")
			return
		}

		dest, ok := d.MemoryIndex.GetDestination(req.DestinationID)
		if !ok || dest.Disabled {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}

		total, err := domain.Quote(dest, req.StartDate, req.Days)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, quoteErrorCode(err))
			return
		}

		res := domain.Reservation{
			Destination: dest.Name,
			StartDate:   req.StartDate,
			Days:        req.Days,
			PricePerDay: dest.PricePerDay,
			StoredTotal: math.Round(total),
		}

		if err := d.Itineraries.AppendReservation(r.Context(), session(r), res); err != nil {
			d.Logger.Error("failed to append reservation", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "storage_unavailable")
			return
		}

		d.Logger.Info("reservation added",
			logger.String("destination", dest.Name),
			logger.Int("days", req.Days))

		writeJSON(w, http.StatusCreated, reservationView{
			Destination: res.Destination,
			StartDate:   res.StartDate,
			Days:        res.Days,
			PricePerDay: res.PricePerDay,
			Total:       total,
			TotalText:   domain.FormatUSD(total),
		})
	}
}

// RemoveReservation deletes one entry by position. Out-of-range positions
// are a no-op, matching the store contract.
func RemoveReservation(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil || idx < 0 {
			writeError(w, http.StatusBadRequest, "invalid_index")
			return
		}

		if err := d.Itineraries.RemoveReservationAt(r.Context(), session(r), idx); err != nil {
			d.Logger.Error("failed to remove reservation", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "storage_unavailable")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ClearItinerary empties the session's slot.
func ClearItinerary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Itineraries.ClearItinerary(r.Context(), session(r)); err != nil {
			d.Logger.Error("failed to clear itinerary", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "storage_unavailable")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
