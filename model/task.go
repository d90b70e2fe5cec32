package model

import "time"

type Task struct {
	TaskID      string    `json:"id"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	DueDate     time.Time `json:"due_date,omitempty"`
	ModuleID    string    `json:"module_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// DueOn reports whether the task is due on the given calendar day.
func (t *Task) DueOn(day time.Time) bool {
	if t.DueDate.IsZero() {
		return false
	}
	y1, m1, d1 := t.DueDate.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
