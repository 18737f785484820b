package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/brujula-viajes/brujula/internal/domain"
	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
	"github.com/brujula-viajes/brujula/internal/logger"
)

// destinationView is the wire shape of a catalog record. Field names match
// what the storefront frontend consumes.
type destinationView struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	PricePerDay float64  `json:"precioDia"`
	PriceText   string   `json:"precioTexto"`
	Categories  []string `json:"categorias"`
	Gallery     []string `json:"galeria"`
	History     string   `json:"historia,omitempty"`
	Attractions string   `json:"atracciones,omitempty"`
	Duration    string   `json:"duracion,omitempty"`
	Season      string   `json:"temporada,omitempty"`
}

type listDestinationsResponse struct {
	Total        int               `json:"total"`
	Count        int               `json:"count"`
	Single       bool              `json:"single"`
	Filtered     bool              `json:"filtered"`
	Destinations []destinationView `json:"destinos"`
}

func toView(d *domain.Destination) destinationView {
	return destinationView{
		ID:          d.ID,
		Name:        d.Name,
		PricePerDay: d.PricePerDay,
		PriceText:   domain.FormatUSD(d.PricePerDay),
		Categories:  d.Categories,
		Gallery:     d.Gallery,
		History:     d.History,
		Attractions: d.Attractions,
		Duration:    d.Duration,
		Season:      d.Season,
	}
}

// ListDestinations serves the filtered, ordered catalog subset.
func ListDestinations(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		query := q.Get("q")
		// A non-empty search term must contain at least one letter of the
		// catalog alphabet, otherwise it can never match a name.
		if strings.TrimSpace(query) != "" && !domain.HasAnyLetter(query) {
			writeError(w, http.StatusBadRequest, "invalid_query")
			return
		}

		var maxPrice float64
		if raw := strings.TrimSpace(q.Get("precio_max")); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_query")
				return
			}
			maxPrice = v
		}

		filter := domain.Filter{
			Query:    query,
			MaxPrice: maxPrice,
			Category: q.Get("categoria"),
			Order:    q.Get("orden"),
		}

		all := d.MemoryIndex.GetAllDestinations()
		matched := filter.Apply(all)

		d.Logger.Debug("catalog lookup",
			logger.String("query", query),
			logger.Int("matched", len(matched)))

		views := make([]destinationView, 0, len(matched))
		for _, dest := range matched {
			views = append(views, toView(dest))
		}

		writeJSON(w, http.StatusOK, listDestinationsResponse{
			Total:        d.MemoryIndex.ActiveCount(),
			Count:        len(views),
			Single:       len(views) == 1,
			Filtered:     !filter.IsZero(),
			Destinations: views,
		})
	}
}

// GetDestination serves one catalog record by id.
func GetDestination(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		dest, ok := d.MemoryIndex.GetDestination(id)
		if !ok || dest.Disabled {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}

		writeJSON(w, http.StatusOK, toView(dest))
	}
}
