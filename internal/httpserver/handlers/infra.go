package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/brujula-viajes/brujula/internal/httpserver/deps"
)

type componentStatus struct {
	OK                 bool   `json:"ok"`
	DestinationsLoaded *int   `json:"destinations_loaded,omitempty"`
	LastReload         string `json:"last_reload,omitempty"`
	Mode               string `json:"mode,omitempty"`
	Impact             string `json:"impact,omitempty"`
	Error              string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.MemoryIndex.Count()
		lastReload := d.MemoryIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:                 count > 0,
				DestinationsLoaded: &count,
				LastReload:         lastReloadStr,
			},
			"redis": checkRedis(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServiceMode: serviceMode(components),
			Components:  components,
		})
	}
}

// serviceMode summarizes component health. The catalog is the hard
// dependency; Redis only carries itineraries and the contact inbox.
func serviceMode(components map[string]componentStatus) string {
	if catalog, exists := components["catalog"]; exists && !catalog.OK {
		return "critical"
	}
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}
	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "itineraries-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "itineraries-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "optimal",
	}
}
