package firestore

import (
	"fmt"
	"math"
	"strconv"

	"casemonitor/internal/model"
)

// Documents are written by other systems, so every field is optional and
// any type mismatch falls back to the field's default.

// ToBatchDomain converts a batch document to the domain Batch
func ToBatchDomain(id string, data map[string]interface{}) *model.Batch {
	return &model.Batch{
		ID:         id,
		Status:     stringField(data, "status", ""),
		DateLabel:  stringField(data, "date_label", "?"),
		Summary:    stringField(data, "summary", ""),
		PromptUsed: stringField(data, "prompt_used", "?"),
		ModelUsed:  stringField(data, "model_used", "?"),
	}
}

// ToCaseDomain converts a case document to the domain Case
func ToCaseDomain(id string, data map[string]interface{}) *model.Case {
	return &model.Case{
		ID:           id,
		BatchID:      stringField(data, "batch_id", ""),
		Group:        stringField(data, "grupa", model.UnknownGroup),
		Status:       model.CaseStatus(stringField(data, "status", string(model.CaseStatusUnassigned))),
		AssignedTo:   stringField(data, "assigned_to", ""),
		Score:        numberField(data, "score"),
		PriorityIcon: stringField(data, "priority_icon", ""),
		OrderNumber:  stringField(data, "numer_zamowienia", model.UnknownOrderNumber),
	}
}

// ToOperatorCountDomain converts an operator counter document; the document ID is the operator
func ToOperatorCountDomain(id string, data map[string]interface{}) model.OperatorCount {
	return model.OperatorCount{
		Operator:  id,
		Completed: int(numberField(data, "cases_completed")),
	}
}

// stringField reads key as text. Numbers are formatted, nil and empty strings give def.
func stringField(data map[string]interface{}, key, def string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return def
		}
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// numberField reads key as a number, 0 when missing or not numeric
func numberField(data map[string]interface{}, key string) float64 {
	switch t := data[key].(type) {
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return t
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return 0
}
