package aggregate

import (
	"sort"

	"casemonitor/internal/model"
)

// Summary global, per-group and per-operator tallies of one case set
type Summary struct {
	Counts    StatusCounts    `json:"counts"`
	Total     int             `json:"total"`
	Percent   float64         `json:"percent"`
	Groups    []GroupTally    `json:"groups"`    // first-encounter order
	Operators []OperatorTally `json:"operators"` // first-encounter order
}

// GroupTally per-status counts of one group
type GroupTally struct {
	Group   string       `json:"group"`
	Counts  StatusCounts `json:"counts"`
	Total   int          `json:"total"`
	Percent float64      `json:"percent"`
}

// OperatorTally cases currently or previously held by one operator
type OperatorTally struct {
	Operator   string `json:"operator"`
	Assigned   int    `json:"assigned"`
	InProgress int    `json:"in_progress"`
	Completed  int    `json:"completed"`
}

// Summarize computes the global, group and operator tallies in one pass.
func Summarize(cases []*model.Case) *Summary {
	s := &Summary{
		Groups:    make([]GroupTally, 0),
		Operators: make([]OperatorTally, 0),
	}
	groupIdx := make(map[string]int)
	opIdx := make(map[string]int)

	for _, c := range cases {
		s.Counts.Inc(c.Status)

		group := c.Group
		if group == "" {
			group = model.UnknownGroup
		}
		i, ok := groupIdx[group]
		if !ok {
			i = len(s.Groups)
			groupIdx[group] = i
			s.Groups = append(s.Groups, GroupTally{Group: group})
		}
		s.Groups[i].Counts.Inc(c.Status)
		s.Groups[i].Total++

		if !c.HasOperator() || !countsForOperator(c.Status) {
			continue
		}
		j, ok := opIdx[c.AssignedTo]
		if !ok {
			j = len(s.Operators)
			opIdx[c.AssignedTo] = j
			s.Operators = append(s.Operators, OperatorTally{Operator: c.AssignedTo})
		}
		switch c.Status {
		case model.CaseStatusAssigned:
			s.Operators[j].Assigned++
		case model.CaseStatusInProgress:
			s.Operators[j].InProgress++
		case model.CaseStatusCompleted:
			s.Operators[j].Completed++
		}
	}

	s.Total = len(cases)
	s.Percent = Percent(s.Counts.Completed, s.Total)
	for i := range s.Groups {
		s.Groups[i].Percent = Percent(s.Groups[i].Counts.Completed, s.Groups[i].Total)
	}
	return s
}

func countsForOperator(s model.CaseStatus) bool {
	return s == model.CaseStatusAssigned || s == model.CaseStatusInProgress || s == model.CaseStatusCompleted
}

// Group returns the tally of the named group, or an empty one if no case carries it.
func (s *Summary) Group(name string) GroupTally {
	for _, g := range s.Groups {
		if g.Group == name {
			return g
		}
	}
	return GroupTally{Group: name}
}

// RankOperators returns a copy of ops ordered by completed count, highest
// first. Ties keep their input order.
func RankOperators(ops []OperatorTally) []OperatorTally {
	ranked := make([]OperatorTally, len(ops))
	copy(ranked, ops)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Completed > ranked[j].Completed
	})
	return ranked
}
