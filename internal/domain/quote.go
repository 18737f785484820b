package domain

import (
	"errors"
	"time"
)

// Reservation validation failures. Each maps to one user-facing message in
// the view layer; the calculator itself never notifies anyone.
var (
	// ErrInvalidDate means the start date is malformed or in the past.
	ErrInvalidDate = errors.New("invalid or past start date")

	// ErrInvalidDayCount means the day count is not an integer in
	// [1, MaxReservationDays].
	ErrInvalidDayCount = errors.New("day count out of range")

	// ErrNoPriceAvailable means the destination carries no usable daily
	// price, so it cannot be quoted.
	ErrNoPriceAvailable = errors.New("no price available for destination")
)

// Quote validates a (startDate, days) pair against the destination's daily
// price and returns the unrounded stay cost. Validation order: date, then
// day count, then price. No side effects; nothing is persisted.
func Quote(dest *Destination, startDate string, days int) (float64, error) {
	return quoteAt(dest, startDate, days, time.Now())
}

func quoteAt(dest *Destination, startDate string, days int, now time.Time) (float64, error) {
	if !notPastAt(startDate, now) {
		return 0, ErrInvalidDate
	}
	if days < 1 || days > MaxReservationDays {
		return 0, ErrInvalidDayCount
	}
	if dest == nil || !dest.HasPrice() {
		return 0, ErrNoPriceAvailable
	}
	return float64(days) * dest.PricePerDay, nil
}
