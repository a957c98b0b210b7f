package dto

// CalendarDay is one date's state in the month calendar view. Booked days
// carry the guest name and no price; free days carry the nightly price.
type CalendarDay struct {
	Available bool     `json:"available"`
	Price     *float64 `json:"price,omitempty"`
	GuestName string   `json:"guestName,omitempty"`
	IsWeekend bool     `json:"isWeekend"`
}

// MonthCalendar is the calendar endpoint's response body, mapping ISO dates
// to their day state.
type MonthCalendar struct {
	Success bool                   `json:"success"`
	Data    map[string]CalendarDay `json:"data"`
	Year    string                 `json:"year"`
	Month   *int                   `json:"month,omitempty"`
}
