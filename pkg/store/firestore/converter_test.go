package firestore

import (
	"math"
	"testing"

	"casemonitor/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestToCaseDomain(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]interface{}
		expected *model.Case
	}{
		{
			name: "all fields present",
			data: map[string]interface{}{
				"batch_id":         "b1",
				"grupa":            "DE",
				"status":           "w_toku",
				"assigned_to":      "alice",
				"score":            int64(7),
				"priority_icon":    "🔥",
				"numer_zamowienia": "ZAM-1",
			},
			expected: &model.Case{
				ID: "c1", BatchID: "b1", Group: "DE", Status: model.CaseStatusInProgress,
				AssignedTo: "alice", Score: 7, PriorityIcon: "🔥", OrderNumber: "ZAM-1",
			},
		},
		{
			name: "missing optional fields fall back to placeholders",
			data: map[string]interface{}{"batch_id": "b1"},
			expected: &model.Case{
				ID: "c1", BatchID: "b1", Group: "?", Status: model.CaseStatusUnassigned, OrderNumber: "?",
			},
		},
		{
			name: "null operator and wrong types",
			data: map[string]interface{}{
				"batch_id":         "b1",
				"assigned_to":      nil,
				"score":            "not a number",
				"numer_zamowienia": int64(12345),
				"grupa":            "",
			},
			expected: &model.Case{
				ID: "c1", BatchID: "b1", Group: "?", Status: model.CaseStatusUnassigned, OrderNumber: "12345",
			},
		},
		{
			name: "float score and float order number",
			data: map[string]interface{}{"score": 4.5, "status": "zakonczony", "numer_zamowienia": 99.0},
			expected: &model.Case{
				ID: "c1", Group: "?", Status: model.CaseStatusCompleted, Score: 4.5, OrderNumber: "99",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCaseDomain("c1", tt.data))
		})
	}
}

func TestToBatchDomain(t *testing.T) {
	b := ToBatchDomain("b1", map[string]interface{}{
		"status":     "active",
		"date_label": "2026-10-16 rano",
		"summary":    "120 casów",
	})

	assert.Equal(t, &model.Batch{
		ID: "b1", Status: "active", DateLabel: "2026-10-16 rano", Summary: "120 casów",
		PromptUsed: "?", ModelUsed: "?",
	}, b)
}

func TestToOperatorCountDomain(t *testing.T) {
	assert.Equal(t, model.OperatorCount{Operator: "bob", Completed: 3},
		ToOperatorCountDomain("bob", map[string]interface{}{"cases_completed": int64(3)}))
	assert.Equal(t, model.OperatorCount{Operator: "bob"},
		ToOperatorCountDomain("bob", map[string]interface{}{}))
}

func TestNumberField(t *testing.T) {
	assert.Equal(t, 0.0, numberField(map[string]interface{}{"x": math.NaN()}, "x"))
	assert.Equal(t, 0.0, numberField(map[string]interface{}{"x": true}, "x"))
	assert.Equal(t, 2.0, numberField(map[string]interface{}{"x": "2"}, "x"))
}
