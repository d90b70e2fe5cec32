package model

import "time"

// DailyLog records study hours for one calendar day. Logs are append-only;
// Date carries no time-of-day component (midnight UTC).
type DailyLog struct {
	LogID          string    `json:"id"`
	Date           time.Time `json:"date"`
	HoursSpent     float64   `json:"hours_spent"`
	Notes          string    `json:"notes,omitempty"`
	TasksCompleted []string  `json:"tasks_completed,omitempty"`
}

// Day returns the log's date truncated to a calendar day in UTC. Persisted
// data can be edited out of band, so callers should not assume Date is
// already normalized.
func (l *DailyLog) Day() time.Time {
	y, m, d := l.Date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
