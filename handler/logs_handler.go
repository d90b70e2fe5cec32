package handler

import (
	"learntrack/dto"
	"learntrack/model"
	"learntrack/usecase"
	"learntrack/utils"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	service *usecase.LearningService
}

func NewLogHandler(service *usecase.LearningService) *LogHandler {
	return &LogHandler{service: service}
}

func (h *LogHandler) ListLogs(c *gin.Context) {
	utils.Success(c, h.service.DailyLogs())
}

func (h *LogHandler) CreateLog(c *gin.Context) {
	var req dto.LogDraft

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	day, err := utils.ParseDay(req.Date)
	if err != nil {
		utils.BadRequest(c, "Date must be a YYYY-MM-DD day")
		return
	}

	entry := h.service.AddDailyLog(c.Request.Context(), model.DailyLog{
		Date:           day,
		HoursSpent:     req.HoursSpent,
		Notes:          req.Notes,
		TasksCompleted: req.TasksCompleted,
	})

	utils.Created(c, entry)
}
