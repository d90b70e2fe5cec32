package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"learntrack/dto"
	"learntrack/model"
	"learntrack/repository"
	"learntrack/utils"
)

// LearningService owns the three collections for the lifetime of the
// session. Every mutation rewrites the touched collection to the blob store;
// a failed write is logged and counted but never surfaced, because the
// in-memory state stays authoritative until shutdown.
type LearningService struct {
	mu   sync.RWMutex
	blob repository.BlobStore
	seed []model.Module
	now  func() time.Time

	tasks   []model.Task
	modules []model.Module
	logs    []model.DailyLog
}

func NewLearningService(blob repository.BlobStore, seed []model.Module) *LearningService {
	return &LearningService{
		blob: blob,
		seed: seed,
		now:  time.Now,
	}
}

// Load restores the collections from the blob store. An absent or unparsable
// value falls back to the default: the seed curriculum for modules, an empty
// collection otherwise. Nothing here is an error to the caller.
func (svc *LearningService) Load(ctx context.Context) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.tasks = nil
	if raw, err := svc.blob.Get(ctx, repository.TasksKey); err == nil {
		if err := json.Unmarshal([]byte(raw), &svc.tasks); err != nil {
			log.Printf("Discarding unparsable tasks value: %v", err)
			utils.TrackStoreError("restore_tasks")
			svc.tasks = nil
		}
	}

	svc.modules = nil
	restored := false
	if raw, err := svc.blob.Get(ctx, repository.ModulesKey); err == nil {
		var modules []model.Module
		if err := json.Unmarshal([]byte(raw), &modules); err != nil {
			log.Printf("Discarding unparsable modules value: %v", err)
			utils.TrackStoreError("restore_modules")
		} else {
			svc.modules = modules
			restored = true
		}
	}
	if !restored {
		svc.modules = append([]model.Module(nil), svc.seed...)
	}

	svc.logs = nil
	if raw, err := svc.blob.Get(ctx, repository.LogsKey); err == nil {
		if err := json.Unmarshal([]byte(raw), &svc.logs); err != nil {
			log.Printf("Discarding unparsable logs value: %v", err)
			utils.TrackStoreError("restore_logs")
			svc.logs = nil
		}
	}
}

// Tasks returns a copy of the task collection in insertion order.
func (svc *LearningService) Tasks() []model.Task {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]model.Task(nil), svc.tasks...)
}

func (svc *LearningService) Modules() []model.Module {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]model.Module(nil), svc.modules...)
}

func (svc *LearningService) DailyLogs() []model.DailyLog {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]model.DailyLog(nil), svc.logs...)
}

// AddTask constructs a task from the draft with a fresh identifier and
// creation timestamp, appends it, and returns it.
func (svc *LearningService) AddTask(ctx context.Context, draft model.Task) model.Task {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	task := draft
	task.TaskID = utils.GenerateID()
	// UTC also drops the monotonic reading so the value round-trips
	// through persistence unchanged.
	task.CreatedAt = svc.now().UTC()

	svc.tasks = append(svc.tasks, task)
	svc.persistTasks(ctx)
	utils.TrackStoreOperation("add_task")
	return task
}

// UpdateTask merges the non-nil patch fields into the matching task. Unknown
// ids are a silent no-op.
func (svc *LearningService) UpdateTask(ctx context.Context, id string, patch dto.TaskPatch) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.tasks {
		if svc.tasks[i].TaskID != id {
			continue
		}
		if patch.Title != nil {
			svc.tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			svc.tasks[i].Description = *patch.Description
		}
		if patch.Completed != nil {
			svc.tasks[i].Completed = *patch.Completed
		}
		if patch.DueDate != nil {
			svc.tasks[i].DueDate = *patch.DueDate
		}
		if patch.ModuleID != nil {
			svc.tasks[i].ModuleID = *patch.ModuleID
		}
		svc.persistTasks(ctx)
		utils.TrackStoreOperation("update_task")
		return
	}
}

func (svc *LearningService) DeleteTask(ctx context.Context, id string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.tasks {
		if svc.tasks[i].TaskID == id {
			svc.tasks = append(svc.tasks[:i], svc.tasks[i+1:]...)
			svc.persistTasks(ctx)
			utils.TrackStoreOperation("delete_task")
			return
		}
	}
}

func (svc *LearningService) ToggleTaskComplete(ctx context.Context, id string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.tasks {
		if svc.tasks[i].TaskID == id {
			svc.tasks[i].Completed = !svc.tasks[i].Completed
			svc.persistTasks(ctx)
			utils.TrackStoreOperation("toggle_task")
			return
		}
	}
}

// UpdateModuleProgress sets a module's progress and the derived completion
// flag. Clamping to 0-100 is the caller's responsibility.
func (svc *LearningService) UpdateModuleProgress(ctx context.Context, moduleID string, progress int) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.modules {
		if svc.modules[i].ModuleID == moduleID {
			svc.modules[i].Progress = progress
			svc.modules[i].Completed = progress >= 100
			svc.persistModules(ctx)
			utils.TrackStoreOperation("update_module_progress")
			return
		}
	}
}

// AddDailyLog appends a new log with a fresh identifier. The date is
// normalized to a calendar day so same-day logs compare equal downstream.
func (svc *LearningService) AddDailyLog(ctx context.Context, draft model.DailyLog) model.DailyLog {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	entry := draft
	entry.LogID = utils.GenerateID()
	entry.Date = entry.Day()

	svc.logs = append(svc.logs, entry)
	svc.persistLogs(ctx)
	utils.TrackStoreOperation("add_daily_log")
	return entry
}

// TodaysTasks returns the tasks due on the current calendar day.
func (svc *LearningService) TodaysTasks() []model.Task {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	today := svc.now()
	var due []model.Task
	for _, task := range svc.tasks {
		if task.DueOn(today) {
			due = append(due, task)
		}
	}
	return due
}

// Stats derives the statistics snapshot from the live collections.
func (svc *LearningService) Stats() model.LearningStats {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return ComputeStats(svc.tasks, svc.modules, svc.logs, svc.now())
}

func (svc *LearningService) persistTasks(ctx context.Context) {
	svc.persist(ctx, repository.TasksKey, svc.tasks)
}

func (svc *LearningService) persistModules(ctx context.Context) {
	svc.persist(ctx, repository.ModulesKey, svc.modules)
}

func (svc *LearningService) persistLogs(ctx context.Context) {
	svc.persist(ctx, repository.LogsKey, svc.logs)
}

func (svc *LearningService) persist(ctx context.Context, key string, collection interface{}) {
	payload, err := json.Marshal(collection)
	if err != nil {
		log.Printf("Failed to serialize %s: %v", key, err)
		utils.TrackStoreError("serialize")
		return
	}
	if err := svc.blob.Set(ctx, key, string(payload)); err != nil {
		log.Printf("Failed to persist %s: %v", key, err)
		utils.TrackStoreError("persist")
	}
}
