package aggregate

import (
	"testing"

	"casemonitor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_MixedCases(t *testing.T) {
	cases := []*model.Case{
		{Status: model.CaseStatusCompleted, Group: "DE"},
		{Status: model.CaseStatusUnassigned, Group: "DE"},
		{Status: model.CaseStatusInProgress, Group: "FR", AssignedTo: "alice", Score: 5},
	}

	s := Summarize(cases)

	assert.Equal(t, StatusCounts{Unassigned: 1, Completed: 1, InProgress: 1}, s.Counts)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 33.3, s.Percent)

	require.Len(t, s.Groups, 2)
	assert.Equal(t, "DE", s.Groups[0].Group)
	assert.Equal(t, 2, s.Groups[0].Total)
	assert.Equal(t, 50.0, s.Groups[0].Percent)
	assert.Equal(t, "FR", s.Groups[1].Group)
	assert.Equal(t, 0.0, s.Groups[1].Percent)

	require.Len(t, s.Operators, 1)
	assert.Equal(t, OperatorTally{Operator: "alice", InProgress: 1}, s.Operators[0])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.Percent)
	assert.Empty(t, s.Groups)
	assert.Empty(t, s.Operators)
}

func TestSummarize_CatchAllBuckets(t *testing.T) {
	cases := []*model.Case{
		{Status: "archived", Group: "DE"},
		{Status: "", Group: ""},
		{Status: model.CaseStatusSkipped, Group: "ES"},
	}

	s := Summarize(cases)

	assert.Equal(t, 1, s.Counts.Unknown)
	assert.Equal(t, 1, s.Counts.Unassigned)
	assert.Equal(t, 1, s.Counts.Skipped)
	assert.Equal(t, s.Total, s.Counts.Total())

	assert.Equal(t, 1, s.Group(model.UnknownGroup).Total)
	assert.Equal(t, 1, s.Group("ES").Total)
	assert.Equal(t, GroupTally{Group: "UKPL"}, s.Group("UKPL"))
}

func TestSummarize_OperatorFilter(t *testing.T) {
	tests := []struct {
		name    string
		c       *model.Case
		counted bool
	}{
		{"assigned with operator", &model.Case{Status: model.CaseStatusAssigned, AssignedTo: "bob"}, true},
		{"in progress with operator", &model.Case{Status: model.CaseStatusInProgress, AssignedTo: "bob"}, true},
		{"completed with operator", &model.Case{Status: model.CaseStatusCompleted, AssignedTo: "bob"}, true},
		{"completed without operator", &model.Case{Status: model.CaseStatusCompleted}, false},
		{"skipped with operator", &model.Case{Status: model.CaseStatusSkipped, AssignedTo: "bob"}, false},
		{"unassigned with stale operator", &model.Case{Status: model.CaseStatusUnassigned, AssignedTo: "bob"}, false},
		{"unknown status with operator", &model.Case{Status: "archived", AssignedTo: "bob"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize([]*model.Case{tt.c})
			if tt.counted {
				assert.Len(t, s.Operators, 1)
			} else {
				assert.Empty(t, s.Operators)
			}
		})
	}
}

func TestRankOperators_StableOnTies(t *testing.T) {
	ops := []OperatorTally{
		{Operator: "bob", Completed: 5},
		{Operator: "carol", Completed: 1},
		{Operator: "alice", Completed: 5},
		{Operator: "dave", Completed: 7},
	}

	ranked := RankOperators(ops)

	names := make([]string, len(ranked))
	for i, op := range ranked {
		names[i] = op.Operator
	}
	assert.Equal(t, []string{"dave", "bob", "alice", "carol"}, names)
	assert.Equal(t, "bob", ops[0].Operator, "input must not be reordered")
}

func TestPercent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 8, 12.5},
		{3, 3, 100},
		{1, 16, 6.2},
		{5, 16, 31.2},
		{3, 16, 18.8},
		{1, 400, 0.2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.done, tt.total), "%d/%d", tt.done, tt.total)
	}
}

func TestInProgress(t *testing.T) {
	cases := []*model.Case{
		{ID: "a", Status: model.CaseStatusAssigned, Score: 3},
		{ID: "b", Status: model.CaseStatusCompleted, Score: 9},
		{ID: "c", Status: model.CaseStatusInProgress, Score: 7},
		{ID: "d", Status: model.CaseStatusInProgress, Score: 3},
		{ID: "e", Status: model.CaseStatusUnassigned, Score: 10},
	}

	active := InProgress(cases)

	require.Len(t, active, 3)
	assert.Equal(t, "c", active[0].Case.ID)
	assert.Equal(t, IconInProgress, active[0].Icon)
	assert.Equal(t, "a", active[1].Case.ID)
	assert.Equal(t, IconAssigned, active[1].Icon)
	assert.Equal(t, "d", active[2].Case.ID)
}

func TestStatusCounts_IncAndGet(t *testing.T) {
	var c StatusCounts
	for _, s := range model.KnownCaseStatuses {
		c.Inc(s)
	}
	c.Inc("")
	c.Inc("archived")

	for _, s := range model.KnownCaseStatuses {
		assert.True(t, s.IsKnown(), s)
	}
	assert.Equal(t, 2, c.Get(model.CaseStatusUnassigned))
	assert.Equal(t, 2, c.Get(""))
	assert.Equal(t, 1, c.Get(model.CaseStatusCompleted))
	assert.Equal(t, 1, c.Get("archived"))
	assert.False(t, model.CaseStatus("archived").IsKnown())
	assert.Equal(t, 7, c.Total())
}
