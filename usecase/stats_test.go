package usecase

import (
	"testing"
	"time"

	"learntrack/model"

	"github.com/stretchr/testify/assert"
)

// Fixed evaluation day so the streak walk is reproducible.
var today = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func logOn(daysAgo int, hours float64) model.DailyLog {
	return model.DailyLog{
		LogID:      "log",
		Date:       today.AddDate(0, 0, -daysAgo),
		HoursSpent: hours,
	}
}

func TestComputeStatsNoLogs(t *testing.T) {
	stats := ComputeStats(nil, nil, nil, today)

	assert.Equal(t, 0.0, stats.TotalHoursLogged)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Equal(t, 0.0, stats.OverallProgress)
}

func TestComputeStatsTotals(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "a", Completed: true},
		{TaskID: "b", Completed: false},
		{TaskID: "c", Completed: true},
	}
	modules := []model.Module{
		{ModuleID: "m1", Progress: 100, Completed: true},
		{ModuleID: "m2", Progress: 50},
		{ModuleID: "m3", Progress: 0},
	}
	logs := []model.DailyLog{
		logOn(0, 1.5),
		logOn(3, 2),
		logOn(7, 0.5),
	}

	stats := ComputeStats(tasks, modules, logs, today)

	assert.Equal(t, 4.0, stats.TotalHoursLogged)
	assert.Equal(t, 2, stats.TotalTasksCompleted)
	assert.Equal(t, 1, stats.ModulesCompleted)
	assert.Equal(t, 50.0, stats.OverallProgress)
}

func TestCompletedCountIgnoresOrder(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "a", Completed: true},
		{TaskID: "b"},
		{TaskID: "c", Completed: true},
	}
	reversed := []model.Task{tasks[2], tasks[1], tasks[0]}

	assert.Equal(t,
		ComputeStats(tasks, nil, nil, today).TotalTasksCompleted,
		ComputeStats(reversed, nil, nil, today).TotalTasksCompleted)
}

func TestOverallProgressEmptyModules(t *testing.T) {
	stats := ComputeStats(nil, []model.Module{}, nil, today)
	assert.Equal(t, 0.0, stats.OverallProgress)
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		daysAgo     []int
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "three consecutive days ending today",
			daysAgo:     []int{0, 1, 2},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "single log five days ago",
			daysAgo:     []int{5},
			wantCurrent: 0,
			wantLongest: 1,
		},
		{
			name:        "two day run now, longer run in the past",
			daysAgo:     []int{0, 1, 10, 11, 12},
			wantCurrent: 2,
			wantLongest: 3,
		},
		{
			name:        "no logs",
			daysAgo:     nil,
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name:        "gap before today",
			daysAgo:     []int{1, 2, 3},
			wantCurrent: 0,
			wantLongest: 3,
		},
		{
			name:        "duplicate logs on one day count once",
			daysAgo:     []int{0, 0, 1, 1, 2},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "unsorted input",
			daysAgo:     []int{2, 0, 1},
			wantCurrent: 3,
			wantLongest: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs []model.DailyLog
			for _, ago := range tt.daysAgo {
				logs = append(logs, logOn(ago, 1))
			}

			stats := ComputeStats(nil, nil, logs, today)
			assert.Equal(t, tt.wantCurrent, stats.CurrentStreak, "current streak")
			assert.Equal(t, tt.wantLongest, stats.LongestStreak, "longest streak")
		})
	}
}

func TestStreakIgnoresTimeOfDay(t *testing.T) {
	// Two logs on the same day at different hours are one studied day.
	logs := []model.DailyLog{
		{LogID: "a", Date: today.Add(9 * time.Hour), HoursSpent: 1},
		{LogID: "b", Date: today.Add(21 * time.Hour), HoursSpent: 1},
		{LogID: "c", Date: today.AddDate(0, 0, -1).Add(13 * time.Hour), HoursSpent: 1},
	}

	stats := ComputeStats(nil, nil, logs, today.Add(11*time.Hour))
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.LongestStreak)
}
