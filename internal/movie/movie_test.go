package movie

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"12a3.5", "123.5"},
		{"abc", ""},
		{"  7 ", "7"},
		{"vol. 3", ".3"},
		{"-5", "5"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLocation(tt.in))
		})
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "42", 42},
		{"mixed digits and letters", "12a3.5", 123},
		{"letters only", "abc", 0},
		{"leading dot", ".5", 0},
		{"dot after prefix", "7.9", 7},
		{"surrounding whitespace", "  15  ", 15},
		{"leading zeros", "007", 7},
		{"empty", "", 0},
		{"saturates", "99999999999", math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocation(tt.in))
		})
	}
}

func TestTrimName(t *testing.T) {
	assert.Equal(t, "Inception", TrimName("  Inception\n"))
	assert.Equal(t, "", TrimName(" \t\n "))

	// Decomposed text is left alone.
	decomposed := "Ame\u0301lie"
	assert.Equal(t, decomposed, TrimName(" "+decomposed+" "))
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Ame\u0301lie", "Am\u00e9lie"))
	assert.True(t, SameName("Heat", "Heat"))
	assert.False(t, SameName("Heat", "heat"))
	assert.False(t, SameName("Amelie", "Am\u00e9lie"))
}

func TestDetail(t *testing.T) {
	m := Movie{ID: 1, Name: "Inception", Location: 42}
	assert.Equal(t, "Volume: 42", m.Detail())
}
