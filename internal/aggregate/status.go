// Package aggregate turns flat case and operator-counter records into the
// grouped statistics shown on the dashboard. Everything here is a pure
// function of its inputs.
package aggregate

import (
	"strconv"

	"casemonitor/internal/model"
)

// StatusCounts is a fixed-schema counter: one bucket per known status plus
// a catch-all for values the work-assignment system should not produce.
type StatusCounts struct {
	Unassigned int `json:"wolny"`
	Assigned   int `json:"przydzielony"`
	InProgress int `json:"w_toku"`
	Completed  int `json:"zakonczony"`
	Skipped    int `json:"pominiety"`
	Unknown    int `json:"unknown"`
}

// Inc counts one case with status s. An empty status counts as unassigned.
func (c *StatusCounts) Inc(s model.CaseStatus) {
	if s == "" {
		s = model.CaseStatusUnassigned
	}
	if !s.IsKnown() {
		c.Unknown++
		return
	}
	switch s {
	case model.CaseStatusUnassigned:
		c.Unassigned++
	case model.CaseStatusAssigned:
		c.Assigned++
	case model.CaseStatusInProgress:
		c.InProgress++
	case model.CaseStatusCompleted:
		c.Completed++
	case model.CaseStatusSkipped:
		c.Skipped++
	}
}

// Get returns the bucket for s; unrecognised statuses read the catch-all.
func (c StatusCounts) Get(s model.CaseStatus) int {
	switch s {
	case model.CaseStatusUnassigned, "":
		return c.Unassigned
	case model.CaseStatusAssigned:
		return c.Assigned
	case model.CaseStatusInProgress:
		return c.InProgress
	case model.CaseStatusCompleted:
		return c.Completed
	case model.CaseStatusSkipped:
		return c.Skipped
	default:
		return c.Unknown
	}
}

// Total sums every bucket, the catch-all included.
func (c StatusCounts) Total() int {
	return c.Unassigned + c.Assigned + c.InProgress + c.Completed + c.Skipped + c.Unknown
}

// Percent returns done/total as a percentage rounded to one decimal, 0 when
// total is 0. Exact halves round to even (6.25 -> 6.2).
func Percent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	v := float64(done) / float64(total) * 100
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return 0
	}
	return rounded
}
