package usecase

import (
	"sort"
	"time"

	"learntrack/model"
)

// ComputeStats derives the statistics snapshot from the three collections.
// It is a pure function: today is passed in so callers control the clock.
func ComputeStats(tasks []model.Task, modules []model.Module, logs []model.DailyLog, today time.Time) model.LearningStats {
	var stats model.LearningStats

	for _, entry := range logs {
		stats.TotalHoursLogged += entry.HoursSpent
	}

	for _, task := range tasks {
		if task.Completed {
			stats.TotalTasksCompleted++
		}
	}

	progressSum := 0
	for _, mod := range modules {
		if mod.Completed {
			stats.ModulesCompleted++
		}
		progressSum += mod.Progress
	}
	if len(modules) > 0 {
		stats.OverallProgress = float64(progressSum) / float64(len(modules))
	}

	days := studyDays(logs)
	stats.CurrentStreak = currentStreak(days, today)
	stats.LongestStreak = longestStreak(days)
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	return stats
}

// studyDays collapses the logs to their distinct calendar days, most recent
// first. Multiple logs on one day count as a single studied day.
func studyDays(logs []model.DailyLog) []time.Time {
	seen := make(map[time.Time]struct{}, len(logs))
	var days []time.Time
	for i := range logs {
		day := logs[i].Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}

// currentStreak walks backward from today one day at a time and counts the
// consecutive studied days. A missing "today" means the streak is 0.
func currentStreak(days []time.Time, today time.Time) int {
	y, m, d := today.UTC().Date()
	expected := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	streak := 0
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak scans the descending day list pairwise; a run extends when
// neighbors differ by exactly one day.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
