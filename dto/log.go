package dto

// LogDraft carries the caller-supplied fields of a new daily log. Hours must
// be positive and the date must be a plain YYYY-MM-DD calendar day; both are
// enforced at this boundary, not inside the store.
type LogDraft struct {
	Date           string   `json:"date" binding:"required,dateonly"`
	HoursSpent     float64  `json:"hours_spent" binding:"required,gt=0"`
	Notes          string   `json:"notes"`
	TasksCompleted []string `json:"tasks_completed"`
}
