package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villasunset/internal/domain/calendar"
	"villasunset/internal/domain/pricing"
	"villasunset/internal/infra/sheets"
)

func newMonthCalendarHandler(t *testing.T, source *stubSource) *MonthCalendarHandler {
	t.Helper()
	policy, err := pricing.New(pricing.PolicyStepped)
	require.NoError(t, err)
	return &MonthCalendarHandler{Sheets: source, Policy: policy, Now: fixedNow(t)}
}

func monthCalendarSheet() *calendar.Sheet {
	return calendar.ParseCSV("Date,Name,Price\n" +
		"2025-05-30,,\n" + // past, must be skipped
		"2025-06-05,,\n" +
		"2025-06-10,Smith,1200\n" +
		"2025-07-03,,1500\n" +
		"2025-11-20,,\n")
}

func intPtr(n int) *int { return &n }

func TestMonthCalendarForOneMonth(t *testing.T) {
	source := &stubSource{sheet: monthCalendarSheet()}
	h := newMonthCalendarHandler(t, source)

	result, err := h.Handle(context.Background(), MonthCalendarQuery{Year: "2025", Month: intPtr(6)})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "2025", result.Year)
	require.Len(t, result.Data, 2)

	free, ok := result.Data["2025-06-05"]
	require.True(t, ok)
	assert.True(t, free.Available)
	require.NotNil(t, free.Price)
	assert.Equal(t, float64(1600), *free.Price) // Thursday default
	assert.True(t, free.IsWeekend)
	assert.Empty(t, free.GuestName)

	booked, ok := result.Data["2025-06-10"]
	require.True(t, ok)
	assert.False(t, booked.Available)
	assert.Nil(t, booked.Price)
	assert.Equal(t, "Smith", booked.GuestName)
	assert.False(t, booked.IsWeekend)
}

func TestMonthCalendarRollingWindow(t *testing.T) {
	source := &stubSource{sheet: monthCalendarSheet()}
	h := newMonthCalendarHandler(t, source)

	// Month omitted: current month plus the next two (June through August).
	result, err := h.Handle(context.Background(), MonthCalendarQuery{Year: "2025"})
	require.NoError(t, err)
	assert.Contains(t, result.Data, "2025-06-05")
	assert.Contains(t, result.Data, "2025-07-03")
	assert.NotContains(t, result.Data, "2025-11-20")
	assert.NotContains(t, result.Data, "2025-05-30")
}

func TestMonthCalendarValidatesMonth(t *testing.T) {
	h := newMonthCalendarHandler(t, &stubSource{sheet: monthCalendarSheet()})

	for _, month := range []int{0, 13, -1} {
		_, err := h.Handle(context.Background(), MonthCalendarQuery{Year: "2025", Month: intPtr(month)})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestMonthCalendarUnsupportedYear(t *testing.T) {
	h := newMonthCalendarHandler(t, &stubSource{err: sheets.ErrYearNotSupported})

	_, err := h.Handle(context.Background(), MonthCalendarQuery{Year: "1999"})
	assert.ErrorIs(t, err, sheets.ErrYearNotSupported)
}
