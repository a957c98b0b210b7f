package pricing

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Nightly defaults in NIS. The venue's weekend nights are Thursday and Friday.
const (
	WeekendRate  = 1600
	MidweekList  = 1200
	MidweekSale  = 990

	// Sheet price cells below this are treated as junk (serial numbers,
	// stray digits) and replaced with the weekday default.
	MinSheetPrice = 100

	repeatNightDiscount = 200
)

const (
	PolicyStepped = "stepped"
	PolicyPromo   = "promo"
)

var ErrUnknownPolicy = errors.New("pricing: unknown policy")

// Rate is the price of a single night: List is the advertised price,
// Charge what the guest actually pays.
type Rate struct {
	List   float64
	Charge float64
}

// Quote is the total for an ordered sequence of nights.
type Quote struct {
	Original   float64
	Discounted float64
}

// Policy decides nightly rates and how a stay's total is computed.
// One policy instance serves a whole request, pricing the requested stay and
// every alternative window alike, so the two formulas can never mix.
type Policy interface {
	// NightRate prices a night with a known date. A sheet price wins when it
	// parses to at least MinSheetPrice; otherwise the weekday default applies.
	NightRate(day time.Time, sheetPrice string) Rate
	// FallbackRate prices a night whose row date could not be normalized.
	FallbackRate(sheetPrice string) Rate
	// Quote totals an ordered sequence of nightly rates.
	Quote(rates []Rate) Quote
}

// New selects a policy by configuration name.
func New(name string) (Policy, error) {
	switch name {
	case PolicyStepped, "":
		return SteppedDiscount{PerNight: repeatNightDiscount}, nil
	case PolicyPromo:
		return MidweekPromo{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// IsWeekendNight reports whether the night falls on the venue's weekend
// (Thursday or Friday, not Saturday/Sunday).
func IsWeekendNight(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Thursday || wd == time.Friday
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ParseSheetPrice extracts a usable price from a raw sheet cell.
func ParseSheetPrice(raw string) (float64, bool) {
	stripped := nonNumeric.ReplaceAllString(raw, "")
	if stripped == "" {
		return 0, false
	}
	p, err := strconv.ParseFloat(stripped, 64)
	if err != nil || p < MinSheetPrice {
		return 0, false
	}
	return p, true
}

// SteppedDiscount charges full price for the first night and knocks PerNight
// off every later night, floored at zero.
type SteppedDiscount struct {
	PerNight float64
}

func (p SteppedDiscount) NightRate(day time.Time, sheetPrice string) Rate {
	if price, ok := ParseSheetPrice(sheetPrice); ok {
		return Rate{List: price, Charge: price}
	}
	if IsWeekendNight(day) {
		return Rate{List: WeekendRate, Charge: WeekendRate}
	}
	return Rate{List: MidweekList, Charge: MidweekList}
}

func (p SteppedDiscount) FallbackRate(sheetPrice string) Rate {
	if price, ok := ParseSheetPrice(sheetPrice); ok {
		return Rate{List: price, Charge: price}
	}
	return Rate{List: MidweekList, Charge: MidweekList}
}

func (p SteppedDiscount) Quote(rates []Rate) Quote {
	var q Quote
	for i, r := range rates {
		q.Original += r.List
		if i == 0 {
			q.Discounted += r.List
			continue
		}
		discounted := r.List - p.PerNight
		if discounted < 0 {
			discounted = 0
		}
		q.Discounted += discounted
	}
	return q
}

// MidweekPromo charges list price for every night, except that midweek nights
// without a sheet price sell at the promotional rate against the 1200 list.
type MidweekPromo struct{}

func (MidweekPromo) NightRate(day time.Time, sheetPrice string) Rate {
	if price, ok := ParseSheetPrice(sheetPrice); ok {
		return Rate{List: price, Charge: price}
	}
	if IsWeekendNight(day) {
		return Rate{List: WeekendRate, Charge: WeekendRate}
	}
	return Rate{List: MidweekList, Charge: MidweekSale}
}

func (MidweekPromo) FallbackRate(sheetPrice string) Rate {
	if price, ok := ParseSheetPrice(sheetPrice); ok {
		return Rate{List: price, Charge: price}
	}
	return Rate{List: MidweekList, Charge: MidweekSale}
}

func (MidweekPromo) Quote(rates []Rate) Quote {
	var q Quote
	for _, r := range rates {
		q.Original += r.List
		q.Discounted += r.Charge
	}
	return q
}
