package dto

import "time"

// TaskDraft carries the caller-supplied fields of a new task. The store
// fills in the identifier and creation timestamp.
type TaskDraft struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"omitempty,dateonly"`
	ModuleID    string `json:"module_id"`
}

// TaskPatch is a partial update: nil fields are left untouched, non-nil
// fields overwrite the target task's value.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ModuleID    *string    `json:"module_id,omitempty"`
}
