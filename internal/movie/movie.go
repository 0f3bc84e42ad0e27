// Package movie defines the inventory record and the input rules applied
// before a record reaches the store.
package movie

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Movie is one physical media item on a shelf.
type Movie struct {
	ID       int64  `json:"id"`       // assigned by the store, immutable
	Name     string `json:"name"`     // title; empty when the column is NULL
	Location int    `json:"location"` // binder number
}

// Detail returns the subtitle line shown under the title in a list row.
func (m Movie) Detail() string {
	return "Volume: " + strconv.Itoa(m.Location)
}

// TrimName removes surrounding whitespace and newlines. The rest of the
// title is kept byte for byte.
func TrimName(raw string) string {
	return strings.TrimSpace(raw)
}

// SameName reports whether two titles are canonically equivalent, so a
// composed "\u00e9" matches "e" followed by a combining acute accent.
func SameName(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// SanitizeLocation drops every character that is not a digit or '.'.
func SanitizeLocation(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseLocation sanitizes raw and returns its leading integer value.
//
// Input without a leading digit yields 0, so "abc" and ".5" both map to 0
// while "12a3.5" becomes "123.5" and then 123. Values beyond MaxInt32
// saturate; binder numbers were always 32-bit.
func ParseLocation(raw string) int {
	s := SanitizeLocation(strings.TrimSpace(raw))

	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > math.MaxInt32 {
			return math.MaxInt32
		}
	}
	return n
}
