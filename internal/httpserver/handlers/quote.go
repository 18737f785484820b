package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brujula-viajes/brujula/internal/domain"
	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/logger"
)

type quoteRequest struct {
	DestinationID string `json:"destino_id"`
	StartDate     string `json:"fecha"`
	Days          int    `json:"dias"`
}

type quoteResponse struct {
	Destination string  `json:"destino"`
	StartDate   string  `json:"fecha"`
	Days        int     `json:"dias"`
	PricePerDay float64 `json:"precioDia"`
	Total       float64 `json:"total"`
	TotalText   string  `json:"totalTexto"`
}

// quoteErrorCode maps calculator failures to stable reason codes.
func quoteErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, domain.ErrInvalidDayCount):
		return "invalid_day_count"
	case errors.Is(err, domain.ErrNoPriceAvailable):
		return "no_price_available"
	default:
		return "invalid_request"
	}
}

// CreateQuote prices a stay without touching the itinerary.
func CreateQuote(d deps.Deps) http.HandlerFunc {
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
			d.Logger.Debug("quote rejected",
				logger.String("destination_id", req.DestinationID),
				logger.Error(err))
			writeError(w, http.StatusUnprocessableEntity, quoteErrorCode(err))
			return
		}

		writeJSON(w, http.StatusOK, quoteResponse{
			Destination: dest.Name,
			StartDate:   req.StartDate,
			Days:        req.Days,
			PricePerDay: dest.PricePerDay,
			Total:       total,
			TotalText:   domain.FormatUSD(total),
		})
	}
}
