// Package qr turns scanned or typed table identifiers into table numbers
// and renders the printable table codes.
package qr

import (
	"errors"
	"strings"

	"foodfriend/diner-svc/internal/domain"
)

const (
	InvalidScanMessage   = "Invalid QR code format. Please scan a valid table QR code."
	InvalidManualMessage = "Please enter a valid table number (1-100)"
)

var ErrInvalidPayload = errors.New("invalid table payload")

// Markers are tried in order; the first one found in the payload wins.
var markers = []string{"FOODFRIEND-TABLE-", "TABLE-", "TABLE="}

// Parse extracts the table number from a scanned payload. Matching is
// case-insensitive and a payload without a marker is read as a bare number.
func Parse(payload string) (int, error) {
	upper := strings.ToUpper(payload)
	rest := strings.TrimSpace(payload)
	for _, marker := range markers {
		if i := strings.Index(upper, marker); i >= 0 {
			rest = upper[i+len(marker):]
			break
		}
	}

	n, ok := leadingInt(rest)
	if !ok || !domain.ValidTable(n) {
		return 0, ErrInvalidPayload
	}
	return n, nil
}

// ParseManual validates a typed table number.
func ParseManual(input string) (int, error) {
	n, ok := leadingInt(input)
	if !ok || !domain.ValidTable(n) {
		return 0, domain.ErrInvalidTable
	}
	return n, nil
}

// leadingInt reads an optionally signed run of digits after leading
// whitespace and ignores whatever follows it.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n > 1_000_000 {
			return 0, false
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
