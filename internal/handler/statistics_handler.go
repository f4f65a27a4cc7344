package handler

import (
	"net/http"

	"walks-api/internal/middleware"
	"walks-api/internal/model"
	"walks-api/internal/service"
	"walks-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	authCfg           service.TokenConfig
}

// NewStatisticsHandler sets up the routing dependencies for statistics endpoints
func NewStatisticsHandler(statisticsService service.StatisticsService, authCfg service.TokenConfig) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, authCfg: authCfg}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/stats/walks", middleware.RequireAuth(h.authCfg, model.RoleReader, model.RoleWriter), h.GetWalkStatistics)
}

// GetWalkStatistics handles GET /api/stats/walks
// @Summary      Walk statistics per region
// @Description  Retrieves per-region walk counts, total and average lengths
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.RegionWalkSummary}
// @Failure      500  {object}  response.Response
// @Router       /api/stats/walks [get]
func (h *StatisticsHandler) GetWalkStatistics(c *gin.Context) {
	stats, err := h.statisticsService.GetWalkStatistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to compute statistics"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
