package dto

import (
	stay "villasunset/internal/domain/availability"
	"villasunset/internal/domain/calendar"
)

// AltRange is a candidate alternative booking window with its own pricing.
type AltRange struct {
	Start         string  `json:"start"`
	End           string  `json:"end"`
	Nights        int     `json:"nights"`
	Total         float64 `json:"total"`
	OriginalTotal float64 `json:"originalTotal"`
}

// AvailabilityResult is the availability endpoint's response body.
type AvailabilityResult struct {
	Available                  bool       `json:"available"`
	Total                      float64    `json:"total"`
	OriginalTotal              float64    `json:"originalTotal"`
	Nights                     int        `json:"nights"`
	CheckIn                    string     `json:"checkIn"`
	CheckOut                   string     `json:"checkOut"`
	Alternatives               []AltRange `json:"alternatives"`
	SameDayPatternAlternatives []AltRange `json:"sameDayPatternAlternatives"`
	ExtraNightSuggestion       *AltRange  `json:"extraNightSuggestion"`
	BookingLink                string     `json:"bookingLink,omitempty"`
}

// MapAvailability converts a domain evaluation into the response shape,
// normalizing all dates to display form.
func MapAvailability(eval stay.Evaluation, whatsappNumber string) AvailabilityResult {
	result := AvailabilityResult{
		Available:                  eval.Available,
		Total:                      eval.Quote.Discounted,
		OriginalTotal:              eval.Quote.Original,
		Nights:                     eval.Stay.NightsCount(),
		CheckIn:                    eval.Stay.CheckIn.Format(calendar.ISODate),
		CheckOut:                   eval.Stay.CheckOut.Format(calendar.ISODate),
		Alternatives:               mapWindows(eval.Alternatives),
		SameDayPatternAlternatives: mapWindows(eval.SameWeekday),
	}
	if eval.ExtraNight != nil {
		w := mapWindow(*eval.ExtraNight)
		result.ExtraNightSuggestion = &w
	}
	if whatsappNumber != "" {
		result.BookingLink = WhatsAppLink(whatsappNumber, result)
	}
	return result
}

func mapWindows(windows []stay.Window) []AltRange {
	ranges := make([]AltRange, 0, len(windows))
	for _, w := range windows {
		ranges = append(ranges, mapWindow(w))
	}
	return ranges
}

func mapWindow(w stay.Window) AltRange {
	return AltRange{
		Start:         w.Start.Format(calendar.ISODate),
		End:           w.End.Format(calendar.ISODate),
		Nights:        w.Nights,
		Total:         w.Quote.Discounted,
		OriginalTotal: w.Quote.Original,
	}
}
