package handler

import (
	"learntrack/dto"
	"learntrack/usecase"
	"learntrack/utils"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	service *usecase.LearningService
}

func NewModuleHandler(service *usecase.LearningService) *ModuleHandler {
	return &ModuleHandler{service: service}
}

func (h *ModuleHandler) ListModules(c *gin.Context) {
	utils.Success(c, h.service.Modules())
}

func (h *ModuleHandler) UpdateProgress(c *gin.Context) {
	moduleID := c.Param("id")

	var req dto.ProgressUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Progress must be an integer between 0 and 100")
		return
	}

	h.service.UpdateModuleProgress(c.Request.Context(), moduleID, *req.Progress)
	c.Status(204)
}
