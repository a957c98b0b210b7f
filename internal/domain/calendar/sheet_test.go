package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	csv := "Date,Name,Price\r\n" +
		"2025-06-05,,1500\r\n" +
		"6/6/2025, Smith ,  1600\r\n" +
		"2025-06-07,,\r\n" +
		"not-a-date,Jones,999\r\n" +
		"2025-06-08\r\n"

	sheet := ParseCSV(csv)
	require.Len(t, sheet.Rows, 5)

	row, ok := sheet.Find("2025-06-05")
	require.True(t, ok)
	assert.Equal(t, "1500", row.Price)
	assert.False(t, row.Booked())

	// Slash dates normalize into the index; cells are trimmed.
	row, ok = sheet.Find("2025-06-06")
	require.True(t, ok)
	assert.Equal(t, "Smith", row.Name)
	assert.True(t, row.Booked())

	// Ragged line still yields a row with empty trailing cells.
	row, ok = sheet.Find("2025-06-08")
	require.True(t, ok)
	assert.Empty(t, row.Name)
	assert.Empty(t, row.Price)

	_, ok = sheet.Find("2025-06-09")
	assert.False(t, ok)
}

func TestParseCSVColumnsMatchedByHeaderName(t *testing.T) {
	// Column order must not matter.
	sheet := ParseCSV("Price,Name,Date\n1500,,2025-06-05")
	row, ok := sheet.Find("2025-06-05")
	require.True(t, ok)
	assert.Equal(t, "1500", row.Price)
	assert.Equal(t, "2025-06-05", row.Date)
}

func TestParseCSVMissingColumns(t *testing.T) {
	sheet := ParseCSV("Date,Notes\n2025-06-05,cleaning day")
	row, ok := sheet.Find("2025-06-05")
	require.True(t, ok)
	assert.Empty(t, row.Name)
	assert.Empty(t, row.Price)
}

func TestFindFirstRowWinsOnDuplicateDates(t *testing.T) {
	sheet := ParseCSV("Date,Name,Price\n2025-06-05,First,1000\n2025-06-05,Second,2000")
	row, ok := sheet.Find("2025-06-05")
	require.True(t, ok)
	assert.Equal(t, "First", row.Name)
}

func TestFindOnNilSheet(t *testing.T) {
	var sheet *Sheet
	_, ok := sheet.Find("2025-06-05")
	assert.False(t, ok)
}

func TestRowBooked(t *testing.T) {
	assert.False(t, Row{Name: ""}.Booked())
	assert.False(t, Row{Name: "   "}.Booked())
	assert.True(t, Row{Name: "Smith"}.Booked())
}
