// Package calendar builds the month-view grid: a pure function of the
// target month, the user's active dates and today's date.
package calendar

import (
	"fmt"
	"time"
)

type CellState string

const (
	StatePadding  CellState = "padding"
	StatePlain    CellState = "plain"
	StateActivity CellState = "activity"
	StateToday    CellState = "today"
)

// Weekdays is the fixed header row, Monday first. It is rendered above
// the grid and is not part of the cell count.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is one slot of the 7-column grid. Date is set for real month days
// only; padding cells carry a display number but no date.
type Cell struct {
	Day   int       `json:"day"`
	State CellState `json:"state"`
	Date  string    `json:"date,omitempty"`
}

// MonthGrid lays out year/month as an ordered run of day cells.
//
// Leading padding cells show the trailing day numbers of the previous
// month. Each real day is tagged with exactly one state; today wins over
// activity. Trailing padding restarts numbering at 1 (display parity
// with the original UI, the numbers are not real dates). The total cell
// count is 42 when leading padding plus days in month exceeds 35,
// otherwise 35, so the grid is always 5 or 6 full weeks.
func MonthGrid(year, month int, active map[string]bool, today time.Time) ([]Cell, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d-%d", year, month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	leading := (int(first.Weekday()) + 6) % 7 // Monday = 0
	daysInMonth := first.AddDate(0, 1, -1).Day()
	daysInPrev := first.AddDate(0, 0, -1).Day()

	todayStr := today.Format("2006-01-02")

	cells := make([]Cell, 0, 42)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{
			Day:   daysInPrev - leading + i + 1,
			State: StatePadding,
		})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		state := StatePlain
		switch {
		case date == todayStr:
			state = StateToday
		case active[date]:
			state = StateActivity
		}
		cells = append(cells, Cell{Day: day, State: state, Date: date})
	}

	total := leading + daysInMonth
	target := 35
	if total > 35 {
		target = 42
	}
	for i := 0; i < target-total; i++ {
		cells = append(cells, Cell{Day: i + 1, State: StatePadding})
	}

	return cells, nil
}
