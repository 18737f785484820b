package domain

import (
	"errors"
	"testing"
	"time"
)

func TestQuoteAt(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.Local)
	dest := &Destination{ID: "1", Name: "Bariloche", PricePerDay: 50}

	tests := []struct {
		name      string
		dest      *Destination
		startDate string
		days      int
		wantTotal float64
		wantErr   error
	}{
		{
			name:      "valid quote",
			dest:      dest,
			startDate: "2026-09-01",
			days:      10,
			wantTotal: 500,
		},
		{
			name:      "fractional price is not rounded",
			dest:      &Destination{ID: "2", PricePerDay: 100.5},
			startDate: "2026-09-15",
			days:      3,
			wantTotal: 301.5,
		},
		{
			name:      "past date",
			dest:      dest,
			startDate: "2026-08-31",
			days:      10,
			wantErr:   ErrInvalidDate,
		},
		{
			name:      "malformed date",
			dest:      dest,
			startDate: "2026/09/01",
			days:      10,
			wantErr:   ErrInvalidDate,
		},
		{
			name:      "zero days",
			dest:      dest,
			startDate: "2026-09-01",
			days:      0,
			wantErr:   ErrInvalidDayCount,
		},
		{
			name:      "over the limit",
			dest:      dest,
			startDate: "2026-09-01",
			days:      61,
			wantErr:   ErrInvalidDayCount,
		},
		{
			name:      "exactly the limit",
			dest:      dest,
			startDate: "2026-09-01",
			days:      60,
			wantTotal: 3000,
		},
		{
			name:      "zero price",
			dest:      &Destination{ID: "3", PricePerDay: 0},
			startDate: "2026-09-01",
			days:      5,
			wantErr:   ErrNoPriceAvailable,
		},
		{
			name:      "nil destination",
			dest:      nil,
			startDate: "2026-09-01",
			days:      5,
			wantErr:   ErrNoPriceAvailable,
		},
		{
			name:      "date validated before day count",
			dest:      dest,
			startDate: "not-a-date",
			days:      0,
			wantErr:   ErrInvalidDate,
		},
		{
			name:      "day count validated before price",
			dest:      &Destination{ID: "4", PricePerDay: 0},
			startDate: "2026-09-01",
			days:      0,
			wantErr:   ErrInvalidDayCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := quoteAt(tt.dest, tt.startDate, tt.days, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("quoteAt() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && total != tt.wantTotal {
				t.Errorf("quoteAt() total = %v, want %v", total, tt.wantTotal)
			}
		})
	}
}
