package availability

import (
	"time"

	"villasunset/internal/domain/calendar"
	"villasunset/internal/domain/pricing"
)

// Stay is a requested booking window. CheckIn is the first night; CheckOut is
// the departure date and not itself a night. Both are UTC midnight dates.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the night dates the stay occupies, [CheckIn, CheckOut).
func (s Stay) Nights() []time.Time {
	var nights []time.Time
	for d := s.CheckIn; d.Before(s.CheckOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

// NightsCount is the stay length as an integer day difference.
func (s Stay) NightsCount() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Window is a priced candidate booking range: either an alternative to an
// unavailable stay or an extra-night extension of an available one.
type Window struct {
	Start  time.Time
	End    time.Time
	Nights int
	Quote  pricing.Quote
}

// Evaluation is the full outcome of an availability request.
type Evaluation struct {
	Stay      Stay
	Available bool
	Quote     pricing.Quote

	// Populated only when the stay is unavailable.
	Alternatives []Window
	SameWeekday  []Window

	// Populated only when the stay is available.
	ExtraNight *Window
}

// Evaluate checks the stay against the booking sheet and prices it. A nil
// sheet means no calendar data exists for the year: every night falls back to
// the weekday default, the stay is available, and no suggestions are made.
func Evaluate(sheet *calendar.Sheet, policy pricing.Policy, stay Stay, today time.Time) Evaluation {
	eval := Evaluation{Stay: stay, Available: true}

	if sheet == nil {
		var rates []pricing.Rate
		for _, night := range stay.Nights() {
			rates = append(rates, policy.NightRate(night, ""))
		}
		eval.Quote = policy.Quote(rates)
		return eval
	}

	available, rates := checkNights(sheet, policy, stay)
	eval.Available = available
	eval.Quote = policy.Quote(rates)

	if !available {
		eval.Alternatives = nearbyWindows(sheet, policy, stay.CheckIn, today)
		eval.SameWeekday = sameWeekdayWindows(sheet, policy, stay, today)
		return eval
	}

	eval.ExtraNight = extraNight(sheet, policy, stay, rates, today)
	return eval
}

// checkNights walks the stay's nights in order. The scan stops at the first
// booked night, so nights past a conflict are never priced.
func checkNights(sheet *calendar.Sheet, policy pricing.Policy, stay Stay) (bool, []pricing.Rate) {
	var rates []pricing.Rate
	for _, night := range stay.Nights() {
		row, ok := sheet.Find(night.Format(calendar.ISODate))
		if !ok {
			rates = append(rates, policy.NightRate(night, ""))
			continue
		}
		if row.Booked() {
			return false, rates
		}
		rates = append(rates, policy.NightRate(night, row.Price))
	}
	return true, rates
}

// extraNight probes for one bookable night adjacent to an available stay: the
// day before check-in first (it must not be in the past), then the check-out
// day. The probed night must exist as an unbooked sheet row. The suggestion is
// repriced over the whole extended stay with the extra night's rate appended.
func extraNight(sheet *calendar.Sheet, policy pricing.Policy, stay Stay, rates []pricing.Rate, today time.Time) *Window {
	probe := func(day time.Time) (pricing.Rate, bool) {
		row, ok := sheet.Find(day.Format(calendar.ISODate))
		if !ok || row.Booked() {
			return pricing.Rate{}, false
		}
		return policy.NightRate(day, row.Price), true
	}

	before := stay.CheckIn.AddDate(0, 0, -1)
	if !before.Before(today) {
		if rate, ok := probe(before); ok {
			extended := append(append([]pricing.Rate(nil), rates...), rate)
			return &Window{
				Start:  before,
				End:    stay.CheckOut,
				Nights: stay.NightsCount() + 1,
				Quote:  policy.Quote(extended),
			}
		}
	}

	after := stay.CheckOut
	if rate, ok := probe(after); ok {
		extended := append(append([]pricing.Rate(nil), rates...), rate)
		return &Window{
			Start:  stay.CheckIn,
			End:    stay.CheckOut.AddDate(0, 0, 1),
			Nights: stay.NightsCount() + 1,
			Quote:  policy.Quote(extended),
		}
	}
	return nil
}
