package aggregate

import (
	"fmt"
	"sort"
	"time"

	"casemonitor/internal/model"
)

// Window trailing number of calendar days shown in the daily section
type Window int

const (
	WindowToday Window = 1
	WindowWeek  Window = 7
	WindowMonth Window = 30
)

// Windows lists the selectable windows in display order
var Windows = []Window{WindowToday, WindowWeek, WindowMonth}

// ParseWindow maps a query value to a window; empty means today.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", "today", "1":
		return WindowToday, nil
	case "7d", "7":
		return WindowWeek, nil
	case "30d", "30":
		return WindowMonth, nil
	}
	return 0, fmt.Errorf("unknown range %q", s)
}

// Days number of dates in the window
func (w Window) Days() int {
	return int(w)
}

// Param query value of the window
func (w Window) Param() string {
	if w == WindowToday {
		return "today"
	}
	return fmt.Sprintf("%dd", int(w))
}

// Label human-readable name of the window
func (w Window) Label() string {
	if w == WindowToday {
		return "Today"
	}
	return fmt.Sprintf("Last %d days", int(w))
}

// WindowDates returns the window's dates as YYYY-MM-DD, newest first, ending
// on now's calendar date in now's location.
func WindowDates(w Window, now time.Time) []string {
	days := w.Days()
	if days < 1 {
		days = 1
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = today.AddDate(0, 0, -i).Format(model.DateLayout)
	}
	return dates
}

// DayTotal completed cases on one day across all operators
type DayTotal struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// OperatorDaily one operator's completed counts, aligned with Daily.Dates
type OperatorDaily struct {
	Operator string `json:"operator"`
	Sum      int    `json:"sum"`
	PerDay   []int  `json:"per_day"`
}

// Daily day-by-day completion counts of a window
type Daily struct {
	Dates     []string        `json:"dates"`     // ascending
	Totals    []DayTotal      `json:"totals"`    // ascending by date
	Operators []OperatorDaily `json:"operators"` // by Sum, highest first
	HasData   bool            `json:"has_data"`
}

// TallyDaily sums counts per day and per operator. dates is the window as
// returned by WindowDates; operators are ranked by their sum with ties in
// the order they were first seen walking dates and their counters in order.
func TallyDaily(dates []string, counts map[string][]model.OperatorCount) *Daily {
	d := &Daily{
		Dates:     append([]string(nil), dates...),
		Totals:    make([]DayTotal, 0, len(dates)),
		Operators: make([]OperatorDaily, 0),
	}
	sort.Strings(d.Dates)

	pos := make(map[string]int, len(d.Dates))
	for i, date := range d.Dates {
		pos[date] = i
	}

	totals := make([]int, len(d.Dates))
	opIdx := make(map[string]int)
	for _, date := range dates {
		p := pos[date]
		for _, oc := range counts[date] {
			totals[p] += oc.Completed

			i, ok := opIdx[oc.Operator]
			if !ok {
				i = len(d.Operators)
				opIdx[oc.Operator] = i
				d.Operators = append(d.Operators, OperatorDaily{
					Operator: oc.Operator,
					PerDay:   make([]int, len(d.Dates)),
				})
			}
			d.Operators[i].PerDay[p] = oc.Completed
		}
	}

	for i, date := range d.Dates {
		d.Totals = append(d.Totals, DayTotal{Date: date, Completed: totals[i]})
		if totals[i] > 0 {
			d.HasData = true
		}
	}
	for i := range d.Operators {
		for _, n := range d.Operators[i].PerDay {
			d.Operators[i].Sum += n
		}
	}
	sort.SliceStable(d.Operators, func(i, j int) bool {
		return d.Operators[i].Sum > d.Operators[j].Sum
	})
	return d
}
