package handler

import (
	"learntrack/usecase"
	"learntrack/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *usecase.LearningService
}

func NewStatsHandler(service *usecase.LearningService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats returns the statistics snapshot derived from the live
// collections. Nothing is cached: the snapshot is recomputed per request.
func (h *StatsHandler) GetStats(c *gin.Context) {
	utils.Success(c, h.service.Stats())
}
