package calendar

import "strings"

// Row is one line of the booking sheet. Cells are kept raw; the sheet has no
// schema enforcement, so every consumer goes through the defaulting accessors.
type Row struct {
	Date  string
	Name  string
	Price string
}

// Booked reports whether the night is taken by a guest.
func (r Row) Booked() bool {
	return strings.TrimSpace(r.Name) != ""
}

// Sheet holds the parsed booking calendar in row order, with a by-date index.
// When the same date appears twice the first row wins.
type Sheet struct {
	Rows []Row

	byDate map[string]int
}

// Find returns the first row whose normalized date equals the given ISO date.
func (s *Sheet) Find(iso string) (Row, bool) {
	if s == nil {
		return Row{}, false
	}
	i, ok := s.byDate[iso]
	if !ok {
		return Row{}, false
	}
	return s.Rows[i], true
}

// ParseCSV parses the sheet's CSV export. The export uses no quoting, so each
// line is split on commas and zipped against the header line by position;
// ragged or malformed lines become rows with empty cells rather than errors.
func ParseCSV(data string) *Sheet {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) == 0 {
		return &Sheet{byDate: map[string]int{}}
	}

	headers := splitCells(lines[0])
	cols := map[string]int{}
	for i, h := range headers {
		cols[strings.ToLower(h)] = i
	}
	col := func(name string) int {
		if i, ok := cols[name]; ok {
			return i
		}
		return -1
	}
	dateCol, nameCol, priceCol := col("date"), col("name"), col("price")

	sheet := &Sheet{
		Rows:   make([]Row, 0, len(lines)-1),
		byDate: make(map[string]int, len(lines)-1),
	}
	for _, line := range lines[1:] {
		cells := splitCells(line)
		row := Row{
			Date:  cellAt(cells, dateCol),
			Name:  cellAt(cells, nameCol),
			Price: cellAt(cells, priceCol),
		}
		sheet.Rows = append(sheet.Rows, row)
		if iso, ok := NormalizeDate(row.Date); ok {
			if _, seen := sheet.byDate[iso]; !seen {
				sheet.byDate[iso] = len(sheet.Rows) - 1
			}
		}
	}
	return sheet
}

func splitCells(line string) []string {
	cells := strings.Split(strings.TrimRight(line, "\r"), ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
