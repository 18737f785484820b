package domain

// MaxReservationDays is the upper bound on the day count of a reservation.
const MaxReservationDays = 60

// Reservation is one itinerary entry: a chosen destination, start date and
// day count, with a snapshot of the destination's daily price at booking
// time. Later catalog changes never touch stored reservations.
//
// The JSON tags are the persisted wire names; they are fixed (see the store
// package for the legacy aliases tolerated on read).
type Reservation struct {
	// Destination is the denormalized display name, not a foreign key.
	Destination string `json:"destino"`

	// StartDate is an ISO YYYY-MM-DD calendar date, not in the past at
	// creation time.
	StartDate string `json:"fecha"`

	// Days is the stay length, 1..MaxReservationDays.
	Days int `json:"dias"`

	// PricePerDay is the booking-time price snapshot, > 0.
	PricePerDay float64 `json:"precioDia"`

	// StoredTotal is round(Days × PricePerDay) written at booking time.
	// It is an audit value only: display code must use Total instead, so
	// the itinerary view stays self-consistent even for records written
	// before a rounding change.
	StoredTotal float64 `json:"total"`
}

// Total recomputes the reservation cost from its own fields, independent of
// the stored total.
func (r *Reservation) Total() float64 {
	return float64(r.Days) * r.PricePerDay
}
