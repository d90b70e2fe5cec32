package handler

import (
	"time"

	"learntrack/dto"
	"learntrack/model"
	"learntrack/usecase"
	"learntrack/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *usecase.LearningService
}

func NewTaskHandler(service *usecase.LearningService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	utils.Success(c, h.service.Tasks())
}

func (h *TaskHandler) TodaysTasks(c *gin.Context) {
	utils.Success(c, h.service.TodaysTasks())
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskDraft

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := utils.ParseDay(req.DueDate)
		if err != nil {
			utils.BadRequest(c, "Due date must be a YYYY-MM-DD day")
			return
		}
		dueDate = parsed
	}

	task := h.service.AddTask(c.Request.Context(), model.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		ModuleID:    req.ModuleID,
	})

	utils.Created(c, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	// Wire shape of the patch; dates travel as plain days
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
		DueDate     *string `json:"due_date" binding:"omitempty,dateonly"`
		ModuleID    *string `json:"module_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.Title != nil && *req.Title == "" {
		utils.BadRequest(c, "Title cannot be empty")
		return
	}

	patch := dto.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		ModuleID:    req.ModuleID,
	}
	if req.DueDate != nil {
		parsed, err := utils.ParseDay(*req.DueDate)
		if err != nil {
			utils.BadRequest(c, "Due date must be a YYYY-MM-DD day")
			return
		}
		patch.DueDate = &parsed
	}

	h.service.UpdateTask(c.Request.Context(), taskID, patch)
	c.Status(204)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	h.service.DeleteTask(c.Request.Context(), c.Param("id"))
	c.Status(204)
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	h.service.ToggleTaskComplete(c.Request.Context(), c.Param("id"))
	c.Status(204)
}
