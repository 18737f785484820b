package redis

import (
	"encoding/json"

	"github.com/brujula-viajes/brujula/internal/domain"
)

// wireReservation is the persisted form of one itinerary entry, including
// the legacy price aliases written by older storefront builds. The
// capitalized legacy names (Destino, Fecha, Dias) need no explicit fields:
// encoding/json matches keys case-insensitively. Alias handling lives only
// here, at the read boundary; the rest of the codebase sees canonical
// records.
type wireReservation struct {
	Destino   string   `json:"destino"`
	Fecha     string   `json:"fecha"`
	Dias      int      `json:"dias"`
	PrecioDia *float64 `json:"precioDia"`
	Total     float64  `json:"total"`

	// Legacy fallbacks for precioDia, in precedence order.
	UsdDia *float64 `json:"usdDia,omitempty"`
	Usd    *float64 `json:"usd,omitempty"`
}

func (w wireReservation) toDomain() domain.Reservation {
	price := 0.0
	switch {
	case w.PrecioDia != nil:
		price = *w.PrecioDia
	case w.UsdDia != nil:
		price = *w.UsdDia
	case w.Usd != nil:
		price = *w.Usd
	}
	return domain.Reservation{
		Destination: w.Destino,
		StartDate:   w.Fecha,
		Days:        w.Dias,
		PricePerDay: price,
		StoredTotal: w.Total,
	}
}

// decodeItinerary parses a persisted slot payload. Missing, empty or
// malformed content reads as an empty itinerary: a broken local cache is
// not an error condition.
func decodeItinerary(data []byte) []domain.Reservation {
	if len(data) == 0 {
		return []domain.Reservation{}
	}

	var wire []wireReservation
	if err := json.Unmarshal(data, &wire); err != nil {
		return []domain.Reservation{}
	}

	items := make([]domain.Reservation, 0, len(wire))
	for _, w := range wire {
		items = append(items, w.toDomain())
	}
	return items
}

// encodeItinerary serializes the full itinerary in the canonical wire shape.
// The stored total is the rounded write-time snapshot.
func encodeItinerary(items []domain.Reservation) ([]byte, error) {
	wire := make([]wireReservation, 0, len(items))
	for i := range items {
		r := items[i]
		price := r.PricePerDay
		wire = append(wire, wireReservation{
			Destino:   r.Destination,
			Fecha:     r.StartDate,
			Dias:      r.Days,
			PrecioDia: &price,
			Total:     r.StoredTotal,
		})
	}
	return json.Marshal(wire)
}
