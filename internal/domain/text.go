package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Letters is the fixed alphabet accepted by the text validators: ASCII
// lower-case letters plus the Spanish accented vowels and ñ. Matching is
// case-insensitive.
const Letters = "abcdefghijklmnopqrstuvwxyzáéíóúüñ"

const (
	minNameLen  = 2
	maxNameLen  = 40
	maxEmailLen = 60
)

// HasAnyLetter reports whether s contains at least one letter from the
// alphabet (case-insensitive). Input that is only digits or symbols fails.
func HasAnyLetter(s string) bool {
	for _, r := range strings.ToLower(s) {
		if strings.ContainsRune(Letters, r) {
			return true
		}
	}
	return false
}

// IsOnlyLettersAndSpaces reports whether s is 2..40 characters long and made
// exclusively of spaces and alphabet letters (case-insensitive). Used for
// name and surname validation.
func IsOnlyLettersAndSpaces(s string) bool {
	runes := []rune(s)
	if len(runes) < minNameLen || len(runes) > maxNameLen {
		return false
	}
	for _, r := range strings.ToLower(s) {
		if r == ' ' || strings.ContainsRune(Letters, r) {
			continue
		}
		return false
	}
	return true
}

// NormalizeSpaces collapses every run of whitespace (space, tab, newline) to
// a single space and trims the result. Idempotent.
func NormalizeSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsValidEmail performs a structural email check: non-empty, at most 60
// characters, exactly one @, non-empty local and domain parts, and a domain
// whose last dot is internal with a TLD of at least two characters.
// Deliberately not RFC 5322.
func IsValidEmail(s string) bool {
	if s == "" || len(s) > maxEmailLen {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	if domain == "" {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	if len(domain)-dot-1 < 2 {
		return false
	}
	return true
}

// FormatUSD renders n rounded to two decimals as a plain decimal string, no
// thousands separator and no currency symbol (callers prepend "USD").
// Non-finite input renders as "0".
func FormatUSD(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	return strconv.FormatFloat(math.Round(n*100)/100, 'f', -1, 64)
}

// IsNotPastDate reports whether s is a strict YYYY-MM-DD calendar date that
// is not before today's local midnight. Non-dates such as "2024-02-30" fail
// the round-trip check and are rejected.
func IsNotPastDate(s string) bool {
	return notPastAt(s, time.Now())
}

func notPastAt(s string, now time.Time) bool {
	d, ok := parseStrictDate(s, now.Location())
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// parseStrictDate parses a 4-2-2 digit YYYY-MM-DD string into a local
// midnight time. The parsed fields must round-trip to the same calendar
// date, which rejects overflows like month 13 or February 30th.
func parseStrictDate(s string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
