package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// WhatsAppLink builds the booking call-to-action deep link for a computed
// availability result. The site has no booking backend: guests confirm over
// WhatsApp, so the link carries the stay dates and quoted total.
func WhatsAppLink(number string, result AvailabilityResult) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}
	total := strconv.FormatFloat(result.Total, 'f', -1, 64)
	message := fmt.Sprintf(
		"Hi! I'd like to book the villa from %s to %s (%d nights, %s NIS total).",
		result.CheckIn, result.CheckOut, result.Nights, total,
	)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}
