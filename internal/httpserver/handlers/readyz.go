package handlers

import (
	"net/http"

	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready        bool `json:"ready"`
	Destinations int  `json:"destinations"`
}

// Readyz reports readiness: the service can answer catalog lookups once the
// memory index holds at least one destination.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.MemoryIndex.Count()
		status := http.StatusOK
		if count == 0 {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, readyzResponse{
			Ready:        count > 0,
			Destinations: count,
		})
	}
}
