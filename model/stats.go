package model

// LearningStats is a derived view over the three collections. It is
// recomputed on every request and never persisted.
type LearningStats struct {
	TotalHoursLogged    float64 `json:"total_hours_logged"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	CurrentStreak       int     `json:"current_streak"`
	LongestStreak       int     `json:"longest_streak"`
	ModulesCompleted    int     `json:"modules_completed"`
	OverallProgress     float64 `json:"overall_progress"`
}
