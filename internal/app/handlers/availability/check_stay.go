package availability

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"villasunset/internal/app/dto"
	stay "villasunset/internal/domain/availability"
	"villasunset/internal/domain/calendar"
	"villasunset/internal/domain/pricing"
	"villasunset/internal/infra/sheets"
)

var (
	ErrInvalidDate  = errors.New("availability: unparseable date")
	ErrInvalidRange = errors.New("availability: check-out must be after check-in")
	ErrInvalidMonth = errors.New("availability: month must be between 1 and 12")
)

// SheetSource yields the parsed booking sheet for a year.
type SheetSource interface {
	Rows(ctx context.Context, year string) (*calendar.Sheet, error)
}

// CheckStayQuery asks whether a stay is bookable and what it costs.
type CheckStayQuery struct {
	CheckIn  string
	CheckOut string
}

func (CheckStayQuery) Key() string { return "availability.check_stay" }

// CheckStayHandler runs the availability computation for one request: fetch
// the year's sheet, walk the nights, price the stay, and either probe for an
// extra night or search for alternative windows.
type CheckStayHandler struct {
	Sheets         SheetSource
	Policy         pricing.Policy
	WhatsAppNumber string
	Now            func() time.Time
}

func (h *CheckStayHandler) Handle(ctx context.Context, query CheckStayQuery) (dto.AvailabilityResult, error) {
	checkIn, ok := calendar.ParseDay(query.CheckIn)
	if !ok {
		return dto.AvailabilityResult{}, fmt.Errorf("%w: check-in %q", ErrInvalidDate, query.CheckIn)
	}
	checkOut, ok := calendar.ParseDay(query.CheckOut)
	if !ok {
		return dto.AvailabilityResult{}, fmt.Errorf("%w: check-out %q", ErrInvalidDate, query.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return dto.AvailabilityResult{}, ErrInvalidRange
	}

	requested := stay.Stay{CheckIn: checkIn, CheckOut: checkOut}
	today := calendar.Day(h.now())

	sheet, err := h.Sheets.Rows(ctx, strconv.Itoa(checkIn.Year()))
	if err != nil {
		// An unmapped year is not a failure: every night prices at the
		// weekday default and no suggestions are made.
		if !errors.Is(err, sheets.ErrYearNotSupported) {
			return dto.AvailabilityResult{}, err
		}
		sheet = nil
	}

	eval := stay.Evaluate(sheet, h.Policy, requested, today)
	return dto.MapAvailability(eval, h.WhatsAppNumber), nil
}

func (h *CheckStayHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
