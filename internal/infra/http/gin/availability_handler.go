package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"villasunset/internal/app/dto"
	availabilityapp "villasunset/internal/app/handlers/availability"
	"villasunset/internal/app/queries"
	"villasunset/internal/infra/sheets"
)

type AvailabilityHandler struct {
	Queries queries.Bus
}

type checkStayRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type monthCalendarRequest struct {
	Year  string `json:"year"`
	Month *int   `json:"month"`
}

func (h AvailabilityHandler) CheckStay(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	var req checkStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query := availabilityapp.CheckStayQuery{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}
	result, err := queries.Ask[availabilityapp.CheckStayQuery, dto.AvailabilityResult](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h AvailabilityHandler) MonthCalendar(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	var req monthCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}
	query := availabilityapp.MonthCalendarQuery{
		Year:  req.Year,
		Month: req.Month,
	}
	result, err := queries.Ask[availabilityapp.MonthCalendarQuery, dto.MonthCalendar](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError maps domain failures to HTTP statuses. Upstream sheet problems
// surface as a bad gateway with a generic message; validation failures are the
// caller's fault.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availabilityapp.ErrInvalidDate),
		errors.Is(err, availabilityapp.ErrInvalidRange),
		errors.Is(err, availabilityapp.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sheets.ErrYearNotSupported):
		c.JSON(http.StatusBadRequest, gin.H{"error": "year not supported"})
	case errors.Is(err, sheets.ErrFormat):
		c.JSON(http.StatusBadGateway, gin.H{"error": "invalid data format received"})
	case errors.Is(err, sheets.ErrFetch):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch booking data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

var _ AvailabilityHTTP = AvailabilityHandler{}
