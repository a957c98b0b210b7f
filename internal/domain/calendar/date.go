package calendar

import (
	"regexp"
	"strings"
	"time"
)

// ISODate is the canonical YYYY-MM-DD layout used across the service.
const ISODate = "2006-01-02"

var (
	isoPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Slash dates in the booking sheet are day-first, matching the venue locale.
// Looser fallback layouts cover the occasional hand-typed cell.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// NormalizeDate turns a raw sheet cell into canonical YYYY-MM-DD form.
// It reports false when the cell is empty or not a recognizable date.
func NormalizeDate(raw string) (string, bool) {
	s := spacePattern.ReplaceAllString(strings.TrimSpace(raw), "")
	if s == "" {
		return "", false
	}
	if isoPattern.MatchString(s) {
		if _, err := time.Parse(ISODate, s); err != nil {
			return "", false
		}
		return s, true
	}
	if m := slashPattern.FindStringSubmatch(s); m != nil {
		day, month, year := m[1], m[2], m[3]
		iso := year + "-" + pad2(month) + "-" + pad2(day)
		if _, err := time.Parse(ISODate, iso); err != nil {
			return "", false
		}
		return iso, true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return t.UTC().Format(ISODate), true
		}
	}
	return "", false
}

// ParseDay resolves a raw date string to a UTC midnight time.Time.
func ParseDay(raw string) (time.Time, bool) {
	iso, ok := NormalizeDate(raw)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day truncates t to a UTC midnight date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
