package model

// DateLayout is the key format of the daily operator counters
const DateLayout = "2006-01-02"

// OperatorCount completed-case count of one operator on one day
type OperatorCount struct {
	Operator  string `json:"operator"`
	Completed int    `json:"completed"`
}
