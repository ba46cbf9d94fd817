package model

// CaseStatus case status as stored by the work-assignment system
type CaseStatus string

const (
	CaseStatusUnassigned CaseStatus = "wolny"        // Unassigned
	CaseStatusAssigned   CaseStatus = "przydzielony" // Assigned to an operator
	CaseStatusInProgress CaseStatus = "w_toku"       // Operator is working on it
	CaseStatusCompleted  CaseStatus = "zakonczony"   // Completed
	CaseStatusSkipped    CaseStatus = "pominiety"    // Skipped
)

// KnownCaseStatuses lists the recognised statuses in display order
var KnownCaseStatuses = []CaseStatus{
	CaseStatusUnassigned,
	CaseStatusAssigned,
	CaseStatusInProgress,
	CaseStatusCompleted,
	CaseStatusSkipped,
}

// Placeholders substituted for missing case fields
const (
	UnknownGroup       = "?"
	UnknownOrderNumber = "?"
	UnknownOperator    = "?"
)

// IsKnown reports whether s is one of the recognised statuses
func (s CaseStatus) IsKnown() bool {
	for _, known := range KnownCaseStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Case a single unit of work
type Case struct {
	ID           string     `json:"id"`
	BatchID      string     `json:"batch_id"`
	Group        string     `json:"group"`                 // "?" when missing
	Status       CaseStatus `json:"status"`                // "wolny" when missing
	AssignedTo   string     `json:"assigned_to,omitempty"` // empty when nobody holds the case
	Score        float64    `json:"score"`
	PriorityIcon string     `json:"priority_icon,omitempty"`
	OrderNumber  string     `json:"order_number"` // "?" when missing
}

// HasOperator reports whether an operator is assigned
func (c *Case) HasOperator() bool {
	return c.AssignedTo != ""
}
