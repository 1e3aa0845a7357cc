package handlers

import (
	"net/http"

	"github.com/formforge/formforge/internal/application"
	"github.com/formforge/formforge/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *application.StatsService
}

func NewStatsHandler(service *application.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats godoc
// @Summary Dashboard aggregate counts
// @Tags stats
// @Produce json
// @Success 200 {object} application.Stats
// @Failure 500 {object} response.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
