package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/brujula-viajes/brujula/internal/domain"
)

// FallbackImage is substituted when a catalog entry ships no gallery.
const FallbackImage = "/imagenes/placeholder.webp"

// Mapper converts catalog entries to domain.Destination records
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapDestinations converts a catalog Document to []*domain.Destination.
// Entries without an id or a name are skipped; category tags are lower-cased
// and trimmed; an empty gallery is replaced by the fallback image.
func (m *Mapper) MapDestinations(doc *Document) ([]*domain.Destination, error) {
	if doc == nil {
		return nil, fmt.Errorf("no catalog document")
	}

	var destinations []*domain.Destination
	now := time.Now()

	for _, entry := range doc.Destinos {
		id := strings.TrimSpace(string(entry.ID))
		name := strings.TrimSpace(entry.Nombre)
		if id == "" || name == "" {
			continue
		}

		d := &domain.Destination{
			ID:          id,
			Name:        name,
			PricePerDay: entry.PrecioDia,
			Categories:  normalizeCategories(entry.Categorias),
			Gallery:     gallery(entry),
			History:     strings.TrimSpace(entry.Historia),
			Attractions: strings.TrimSpace(entry.Atracciones),
			Duration:    strings.TrimSpace(entry.Duracion),
			Season:      strings.TrimSpace(entry.Temporada),
			LastSeenAt:  now,
			UpdatedAt:   now,
		}

		destinations = append(destinations, d)
	}

	if len(destinations) == 0 {
		return nil, fmt.Errorf("no valid destinations found in catalog")
	}

	return destinations, nil
}

// normalizeCategories lower-cases and trims tags, dropping empties
func normalizeCategories(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// gallery returns the ordered image list, preferring the explicit galeria,
// then the card image, then the fallback
func gallery(entry DestinoEntry) []string {
	imgs := make([]string, 0, len(entry.Galeria))
	for _, img := range entry.Galeria {
		img = strings.TrimSpace(img)
		if img != "" {
			imgs = append(imgs, img)
		}
	}
	if len(imgs) > 0 {
		return imgs
	}
	if img := strings.TrimSpace(entry.Imagen); img != "" {
		return []string{img}
	}
	return []string{FallbackImage}
}
