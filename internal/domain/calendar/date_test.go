package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		wantOK bool
	}{
		{name: "canonical passes through", raw: "2025-06-05", want: "2025-06-05", wantOK: true},
		{name: "internal whitespace stripped", raw: " 2025 - 06 - 05 ", want: "2025-06-05", wantOK: true},
		{name: "slash date is day first", raw: "7/6/2025", want: "2025-06-07", wantOK: true},
		{name: "slash date zero padded", raw: "07/06/2025", want: "2025-06-07", wantOK: true},
		{name: "textual month fallback", raw: "Jun 5, 2025", want: "2025-06-05", wantOK: true},
		{name: "rfc3339 fallback", raw: "2025-06-05T10:30:00Z", want: "2025-06-05", wantOK: true},
		{name: "empty fails", raw: "", wantOK: false},
		{name: "whitespace only fails", raw: "   ", wantOK: false},
		{name: "garbage fails", raw: "next thursday", wantOK: false},
		{name: "impossible calendar date fails", raw: "2025-13-40", wantOK: false},
		{name: "impossible slash date fails", raw: "40/13/2025", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeDateRoundTrip(t *testing.T) {
	// Canonical input must come back unchanged.
	for _, iso := range []string{"2025-01-01", "2025-06-05", "2025-12-31"} {
		got, ok := NormalizeDate(iso)
		require.True(t, ok)
		assert.Equal(t, iso, got)
	}
}

func TestParseDay(t *testing.T) {
	day, ok := ParseDay("5/6/2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, time.Thursday, day.Weekday())

	_, ok = ParseDay("not a date")
	assert.False(t, ok)
}

func TestDay(t *testing.T) {
	noon := time.Date(2025, time.June, 5, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), Day(noon))
}
