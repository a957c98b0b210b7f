package availability

import (
	"sort"
	"time"

	"villasunset/internal/domain/calendar"
	"villasunset/internal/domain/pricing"
)

const (
	maxNearbyAlternatives      = 3
	maxSameWeekdayAlternatives = 2
)

// candidate is a priced window tagged with its distance from the requested
// check-in, used only for ranking.
type candidate struct {
	Window
	distance time.Duration
}

// scanWindows slides a window of length nights over the sheet's row order.
// A window starting at row i qualifies when the start date normalizes, is not
// in the past, passes startOK, and all nights rows in the window are unbooked.
// The window's end date assumes consecutive days from the start; each row is
// priced by its own date (weekday default when the date is unreadable).
func scanWindows(sheet *calendar.Sheet, policy pricing.Policy, checkIn, today time.Time, nights int, startOK func(time.Time) bool) []candidate {
	var found []candidate
	for i := 0; i+nights <= len(sheet.Rows); i++ {
		start, ok := calendar.ParseDay(sheet.Rows[i].Date)
		if !ok || start.Before(today) {
			continue
		}
		if startOK != nil && !startOK(start) {
			continue
		}

		free := true
		rates := make([]pricing.Rate, 0, nights)
		for j := 0; j < nights; j++ {
			row := sheet.Rows[i+j]
			if row.Booked() {
				free = false
				break
			}
			if day, ok := calendar.ParseDay(row.Date); ok {
				rates = append(rates, policy.NightRate(day, row.Price))
			} else {
				rates = append(rates, policy.FallbackRate(row.Price))
			}
		}
		if !free {
			continue
		}

		distance := start.Sub(checkIn)
		if distance < 0 {
			distance = -distance
		}
		found = append(found, candidate{
			Window: Window{
				Start:  start,
				End:    start.AddDate(0, 0, nights),
				Nights: nights,
				Quote:  policy.Quote(rates),
			},
			distance: distance,
		})
	}
	return found
}

// nearbyWindows proposes one- and two-night stays close to the requested
// check-in, nearest first, longer stays winning ties. At most three results,
// deduplicated by date range.
func nearbyWindows(sheet *calendar.Sheet, policy pricing.Policy, checkIn, today time.Time) []Window {
	var candidates []candidate
	for nights := 1; nights <= 2; nights++ {
		candidates = append(candidates, scanWindows(sheet, policy, checkIn, today, nights, nil)...)
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].distance != candidates[b].distance {
			return candidates[a].distance < candidates[b].distance
		}
		return candidates[a].Nights > candidates[b].Nights
	})
	return dedupe(candidates, maxNearbyAlternatives)
}

// sameWeekdayWindows proposes stays of the requested length starting on the
// same day of week as the requested check-in, nearest first. At most two
// results, deduplicated by date range.
func sameWeekdayWindows(sheet *calendar.Sheet, policy pricing.Policy, stay Stay, today time.Time) []Window {
	weekday := stay.CheckIn.Weekday()
	candidates := scanWindows(sheet, policy, stay.CheckIn, today, stay.NightsCount(), func(start time.Time) bool {
		return start.Weekday() == weekday
	})
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].distance < candidates[b].distance
	})
	return dedupe(candidates, maxSameWeekdayAlternatives)
}

func dedupe(candidates []candidate, limit int) []Window {
	windows := make([]Window, 0, limit)
	seen := map[string]bool{}
	for _, c := range candidates {
		key := c.Start.Format(calendar.ISODate) + "/" + c.End.Format(calendar.ISODate)
		if !seen[key] {
			seen[key] = true
			windows = append(windows, c.Window)
		}
		if len(windows) >= limit {
			break
		}
	}
	return windows
}
