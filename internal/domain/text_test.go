package domain

import (
	"math"
	"testing"
	"time"
)

func TestHasAnyLetter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain word", "cusco", true},
		{"upper case", "CUSCO", true},
		{"accented only", "ñandú", true},
		{"digits only", "12345", false},
		{"symbols only", "!!??--", false},
		{"digits with letter", "4x4", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnyLetter(tt.input); got != tt.want {
				t.Errorf("HasAnyLetter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsOnlyLettersAndSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "Ana", true},
		{"with digit", "Ana2", false},
		{"too short", "A", false},
		{"accented full name", "Añoñez Núñez", true},
		{"with spaces", "Maria del Carmen", true},
		{"too long", "abcdefghijklmnopqrstuvwxyz abcdefghijklmno", false},
		{"exactly forty", "abcdefghijklmnopqrstuvwxyz abcdefghijklm", true},
		{"empty", "", false},
		{"symbol", "Ana-Lia", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOnlyLettersAndSpaces(tt.input); got != tt.want {
				t.Errorf("IsOnlyLettersAndSpaces(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no change", "machu picchu", "machu picchu"},
		{"double spaces", "machu  picchu", "machu picchu"},
		{"tabs and newlines", "machu\t\npicchu", "machu picchu"},
		{"leading and trailing", "  bariloche  ", "bariloche"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSpaces(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeSpaces(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Idempotence
			if again := NormalizeSpaces(got); again != got {
				t.Errorf("NormalizeSpaces not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"minimal valid", "a@b.com", true},
		{"no dot in domain", "a@b", false},
		{"double at", "a@@b.com", false},
		{"tld too short", "a@b.c", false},
		{"empty local", "@b.com", false},
		{"empty domain", "a@", false},
		{"dot first in domain", "a@.com", false},
		{"dot last in domain", "a@b.", false},
		{"empty", "", false},
		{"too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa@b.com", false},
		{"subdomain", "a@mail.b.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"integer", 500, "500"},
		{"one decimal", 10.5, "10.5"},
		{"rounds to two decimals", 10.567, "10.57"},
		{"zero", 0, "0"},
		{"nan", math.NaN(), "0"},
		{"positive infinity", math.Inf(1), "0"},
		{"negative infinity", math.Inf(-1), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUSD(tt.input); got != tt.want {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNotPastAt(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"today", "2026-09-01", true},
		{"tomorrow", "2026-09-02", true},
		{"yesterday", "2026-08-31", false},
		{"far future", "2030-01-01", true},
		{"invalid calendar date", "2024-02-30", false},
		{"month overflow", "2026-13-01", false},
		{"wrong shape", "2026-9-1", false},
		{"not a date", "mañana", false},
		{"empty", "", false},
		{"extra field", "2026-09-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notPastAt(tt.input, now); got != tt.want {
				t.Errorf("notPastAt(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsNotPastDateToday(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	if !IsNotPastDate(today) {
		t.Errorf("IsNotPastDate(%q) = false, want true", today)
	}
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if IsNotPastDate(yesterday) {
		t.Errorf("IsNotPastDate(%q) = true, want false", yesterday)
	}
}
