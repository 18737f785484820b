package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll is the sentinel category that passes every record. It is the
// wire value submitted by the catalog UI; an empty category means the same.
const CategoryAll = "todas"

// Sort orders for filtered results.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter is a declarative filter spec over the catalog. A Filter is
// recomputed from the request on every call: the text predicate and the
// price/category predicate are independent, and Apply always evaluates their
// conjunction from scratch, so there is no order-dependence between
// searching and filtering.
type Filter struct {
	// Query is the name substring to match. It is normalized (whitespace
	// collapse + lower-case) before matching; empty means no text filter.
	Query string

	// MaxPrice is the price ceiling. Zero or negative disables the
	// ceiling. Records without a usable price always pass.
	MaxPrice float64

	// Category must be carried by the record, unless it is empty or
	// CategoryAll.
	Category string

	// Order is SortAsc or SortDesc by name; anything else sorts
	// ascending.
	Order string
}

// IsZero reports whether no filtering predicate is active, so callers can
// tell an unfiltered render apart from a filtered one with zero matches.
func (f Filter) IsZero() bool {
	return NormalizeSpaces(f.Query) == "" &&
		f.MaxPrice <= 0 &&
		(f.Category == "" || strings.ToLower(f.Category) == CategoryAll)
}

// Apply returns the ordered subset of destinations that pass every active
// predicate. Disabled records never match. The input slice is not mutated;
// applying the same filter twice yields the same result.
func (f Filter) Apply(destinations []*Destination) []*Destination {
	term := strings.ToLower(NormalizeSpaces(f.Query))
	cat := strings.ToLower(strings.TrimSpace(f.Category))

	out := make([]*Destination, 0, len(destinations))
	for _, d := range destinations {
		if d.Disabled {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(d.Name), term) {
			continue
		}
		if f.MaxPrice > 0 && d.HasPrice() && d.PricePerDay > f.MaxPrice {
			continue
		}
		if cat != "" && cat != CategoryAll && !d.HasCategory(cat) {
			continue
		}
		out = append(out, d)
	}

	coll := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		c := coll.CompareString(out[i].Name, out[j].Name)
		if f.Order == SortDesc {
			return c > 0
		}
		return c < 0
	})

	return out
}
