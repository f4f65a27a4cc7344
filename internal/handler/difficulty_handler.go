package handler

import (
	"net/http"

	"walks-api/internal/middleware"
	"walks-api/internal/model"
	"walks-api/internal/service"
	"walks-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type DifficultyHandler struct {
	difficultyService service.DifficultyService
	authCfg           service.TokenConfig
}

// NewDifficultyHandler sets up the routing dependencies for Difficulty endpoints
func NewDifficultyHandler(difficultyService service.DifficultyService, authCfg service.TokenConfig) *DifficultyHandler {
	return &DifficultyHandler{difficultyService: difficultyService, authCfg: authCfg}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *DifficultyHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/difficulties", middleware.RequireAuth(h.authCfg, model.RoleReader, model.RoleWriter), h.GetAll)
}

// GetAll handles GET /api/difficulties
// @Summary      List difficulties
// @Description  Retrieves the seeded difficulty reference data
// @Tags         difficulties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.DifficultyResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/difficulties [get]
func (h *DifficultyHandler) GetAll(c *gin.Context) {
	difficulties, err := h.difficultyService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch difficulties"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, difficulties))
}
