package usecase

import (
	"context"
	"testing"
	"time"

	"learntrack/dto"
	"learntrack/model"
	"learntrack/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []model.Module {
	return []model.Module{
		{ModuleID: "week-1", Title: "Foundations", WeekNumber: 1, EstimatedHours: 10},
		{ModuleID: "week-2", Title: "Transformers", WeekNumber: 2, EstimatedHours: 12},
	}
}

func newTestService(t *testing.T) (*LearningService, *repository.MemoryStore) {
	t.Helper()
	blob := repository.NewMemoryStore()
	svc := NewLearningService(blob, testSeed())
	svc.Load(context.Background())
	return svc, blob
}

func TestAddTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := svc.AddTask(ctx, model.Task{
		Title:    "Read attention paper",
		ModuleID: "week-2",
	})

	require.NotEmpty(t, created.TaskID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.Completed)

	tasks := svc.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}

func TestAddTaskPreservesInsertionOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := svc.AddTask(ctx, model.Task{Title: "first"})
	second := svc.AddTask(ctx, model.Task{Title: "second"})

	tasks := svc.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, first.TaskID, tasks[0].TaskID)
	assert.Equal(t, second.TaskID, tasks[1].TaskID)
	assert.NotEqual(t, first.TaskID, second.TaskID)
}

func TestUpdateTaskPatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := svc.AddTask(ctx, model.Task{
		Title:       "Draft notes",
		Description: "rough outline",
		ModuleID:    "week-1",
	})

	newTitle := "Write notes"
	done := true
	svc.UpdateTask(ctx, created.TaskID, dto.TaskPatch{
		Title:     &newTitle,
		Completed: &done,
	})

	task := svc.Tasks()[0]
	assert.Equal(t, "Write notes", task.Title)
	assert.True(t, task.Completed)
	// Untouched fields survive the patch
	assert.Equal(t, "rough outline", task.Description)
	assert.Equal(t, "week-1", task.ModuleID)
}

func TestUpdateTaskUnknownIDIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.AddTask(ctx, model.Task{Title: "keep me"})
	before := svc.Tasks()

	title := "changed"
	svc.UpdateTask(ctx, "no-such-id", dto.TaskPatch{Title: &title})
	svc.DeleteTask(ctx, "no-such-id")
	svc.ToggleTaskComplete(ctx, "no-such-id")

	assert.Equal(t, before, svc.Tasks())
}

func TestToggleTaskCompleteIsItsOwnInverse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := svc.AddTask(ctx, model.Task{Title: "toggle me"})

	svc.ToggleTaskComplete(ctx, created.TaskID)
	assert.True(t, svc.Tasks()[0].Completed)

	svc.ToggleTaskComplete(ctx, created.TaskID)
	assert.False(t, svc.Tasks()[0].Completed)
	assert.Equal(t, created, svc.Tasks()[0])
}

func TestAddThenDeleteRestoresCollection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.AddTask(ctx, model.Task{Title: "existing"})
	before := svc.Tasks()

	created := svc.AddTask(ctx, model.Task{Title: "transient"})
	svc.DeleteTask(ctx, created.TaskID)

	assert.Equal(t, before, svc.Tasks())
}

func TestUpdateModuleProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.UpdateModuleProgress(ctx, "week-1", 100)
	modules := svc.Modules()
	assert.Equal(t, 100, modules[0].Progress)
	assert.True(t, modules[0].Completed)

	svc.UpdateModuleProgress(ctx, "week-1", 60)
	modules = svc.Modules()
	assert.Equal(t, 60, modules[0].Progress)
	assert.False(t, modules[0].Completed)

	// Unknown module is a no-op
	svc.UpdateModuleProgress(ctx, "week-99", 100)
	assert.Equal(t, modules, svc.Modules())
}

func TestAddDailyLogNormalizesDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	noon := time.Date(2025, 9, 1, 12, 30, 0, 0, time.UTC)
	entry := svc.AddDailyLog(ctx, model.DailyLog{
		Date:       noon,
		HoursSpent: 2.5,
		Notes:      "worked through backprop",
	})

	require.NotEmpty(t, entry.LogID)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), entry.Date)

	logs := svc.DailyLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entry, logs[0])
}

func TestPersistedRoundTrip(t *testing.T) {
	svc, blob := newTestService(t)
	ctx := context.Background()

	svc.AddTask(ctx, model.Task{Title: "survives restart", ModuleID: "week-1"})
	svc.UpdateModuleProgress(ctx, "week-2", 75)
	svc.AddDailyLog(ctx, model.DailyLog{
		Date:       time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC),
		HoursSpent: 3,
	})

	// A fresh session over the same medium restores identical collections.
	restored := NewLearningService(blob, testSeed())
	restored.Load(ctx)

	assert.Equal(t, svc.Tasks(), restored.Tasks())
	assert.Equal(t, svc.Modules(), restored.Modules())
	assert.Equal(t, svc.DailyLogs(), restored.DailyLogs())
}

func TestLoadSeedsModulesWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Empty(t, svc.Tasks())
	assert.Empty(t, svc.DailyLogs())
	assert.Equal(t, testSeed(), svc.Modules())
}

func TestLoadFallsBackOnMalformedValues(t *testing.T) {
	blob := repository.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, blob.Set(ctx, repository.TasksKey, "{not json"))
	require.NoError(t, blob.Set(ctx, repository.ModulesKey, "also not json]"))
	require.NoError(t, blob.Set(ctx, repository.LogsKey, "42garbage"))

	svc := NewLearningService(blob, testSeed())
	svc.Load(ctx)

	assert.Empty(t, svc.Tasks())
	assert.Empty(t, svc.DailyLogs())
	assert.Equal(t, testSeed(), svc.Modules())
}

func TestTodaysTasks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	now := time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	due := svc.AddTask(ctx, model.Task{
		Title:   "due today",
		DueDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	svc.AddTask(ctx, model.Task{
		Title:   "due tomorrow",
		DueDate: time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
	})
	svc.AddTask(ctx, model.Task{Title: "no due date"})

	todays := svc.TodaysTasks()
	require.Len(t, todays, 1)
	assert.Equal(t, due.TaskID, todays[0].TaskID)
}

func TestStatsUsesLiveCollections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := svc.AddTask(ctx, model.Task{Title: "count me"})
	svc.ToggleTaskComplete(ctx, created.TaskID)
	svc.UpdateModuleProgress(ctx, "week-1", 100)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.TotalTasksCompleted)
	assert.Equal(t, 1, stats.ModulesCompleted)
	assert.Equal(t, 50.0, stats.OverallProgress)
}
