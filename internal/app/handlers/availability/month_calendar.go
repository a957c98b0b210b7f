package availability

import (
	"context"
	"fmt"
	"time"

	"villasunset/internal/app/dto"
	"villasunset/internal/domain/calendar"
	"villasunset/internal/domain/pricing"
)

// MonthCalendarQuery asks for a per-date availability map, either for one
// month (1-12) or for a rolling three-month window when Month is nil.
type MonthCalendarQuery struct {
	Year  string
	Month *int
}

func (MonthCalendarQuery) Key() string { return "availability.month_calendar" }

// MonthCalendarHandler builds the calendar view the booking widget renders:
// one entry per sheet row with a readable future date, carrying the guest name
// for booked days and the nightly price for free ones.
type MonthCalendarHandler struct {
	Sheets SheetSource
	Policy pricing.Policy
	Now    func() time.Time
}

func (h *MonthCalendarHandler) Handle(ctx context.Context, query MonthCalendarQuery) (dto.MonthCalendar, error) {
	if query.Month != nil && (*query.Month < 1 || *query.Month > 12) {
		return dto.MonthCalendar{}, fmt.Errorf("%w: %d", ErrInvalidMonth, *query.Month)
	}

	sheet, err := h.Sheets.Rows(ctx, query.Year)
	if err != nil {
		return dto.MonthCalendar{}, err
	}

	today := calendar.Day(h.now())
	days := map[string]dto.CalendarDay{}
	for _, row := range sheet.Rows {
		day, ok := calendar.ParseDay(row.Date)
		if !ok || day.Before(today) {
			continue
		}
		if query.Month != nil && int(day.Month()) != *query.Month {
			continue
		}
		if query.Month == nil && !inRollingWindow(day, today) {
			continue
		}

		entry := dto.CalendarDay{IsWeekend: pricing.IsWeekendNight(day)}
		if row.Booked() {
			entry.GuestName = row.Name
		} else {
			entry.Available = true
			price := h.Policy.NightRate(day, row.Price).Charge
			entry.Price = &price
		}
		days[day.Format(calendar.ISODate)] = entry
	}

	return dto.MonthCalendar{
		Success: true,
		Data:    days,
		Year:    query.Year,
		Month:   query.Month,
	}, nil
}

// inRollingWindow keeps dates within the current month and the two after it.
func inRollingWindow(day, today time.Time) bool {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	return !day.Before(start) && day.Before(end)
}

func (h *MonthCalendarHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
