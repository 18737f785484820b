package domain

import (
	"math"
	"time"
)

// Destination represents one catalog entry.
//
// It is the canonical runtime truth of a destination: all inputs (catalog
// file, Redis cache) are merged into this structure. Catalog records are
// immutable for the duration of a session; mutation only happens when the
// catalog file is reloaded.
//
// A Destination is uniquely identified by its ID.
type Destination struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the stable catalog identifier.
	ID string

	// Name is the display name, primary search and sort key.
	Name string

	// ─────────────────────────────
	// Pricing
	// ─────────────────────────────

	// PricePerDay is the daily price in USD. Zero, negative or NaN means
	// the catalog carries no usable price and pricing is disabled for
	// this record.
	PricePerDay float64

	// ─────────────────────────────
	// Classification & media
	// ─────────────────────────────

	// Categories are lower-cased, trimmed tags. May be empty.
	Categories []string

	// Gallery is the ordered list of image references. Never empty after
	// mapping: a fallback image is substituted when the catalog has none.
	Gallery []string

	// Display-only fields, no invariants.
	History     string
	Attractions string
	Duration    string
	Season      string

	// ─────────────────────────────
	// Provenance & cleanup
	// ─────────────────────────────

	// LastSeenAt is updated whenever the record is observed in the
	// catalog file.
	LastSeenAt time.Time

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time

	// Disabled marks a record that disappeared from the catalog file.
	// Disabled records are hidden from filtering and may be
	// garbage-collected later.
	Disabled bool
}

// HasPrice reports whether the record carries a usable daily price.
func (d *Destination) HasPrice() bool {
	return !math.IsNaN(d.PricePerDay) && !math.IsInf(d.PricePerDay, 0) && d.PricePerDay > 0
}

// HasCategory reports whether the record is tagged with cat.
// Categories are stored lower-cased, so cat must be lower-cased too.
func (d *Destination) HasCategory(cat string) bool {
	for _, c := range d.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
