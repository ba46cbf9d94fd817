package model

// BatchStatusActive is the only lifecycle status the dashboard reads
const BatchStatusActive = "active"

// Batch a generated unit of work containing many cases
type Batch struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	DateLabel  string `json:"date_label"`
	Summary    string `json:"summary"`
	PromptUsed string `json:"prompt_used"`
	ModelUsed  string `json:"model_used"`
}
