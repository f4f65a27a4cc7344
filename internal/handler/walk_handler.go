package handler

import (
	"errors"
	"net/http"
	"strconv"

	"walks-api/internal/middleware"
	"walks-api/internal/model"
	"walks-api/internal/repository"
	"walks-api/internal/service"
	"walks-api/pkg/pagination"
	"walks-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalkHandler struct {
	walkService service.WalkService
	authCfg     service.TokenConfig
}

// NewWalkHandler sets up the routing dependencies for Walk endpoints
func NewWalkHandler(walkService service.WalkService, authCfg service.TokenConfig) *WalkHandler {
	return &WalkHandler{walkService: walkService, authCfg: authCfg}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *WalkHandler) RegisterRoutes(router *gin.RouterGroup) {
	walks := router.Group("/api/walks")
	{
		walks.GET("", middleware.RequireAuth(h.authCfg, model.RoleReader, model.RoleWriter), h.List)
		walks.GET("/:id", middleware.RequireAuth(h.authCfg, model.RoleReader, model.RoleWriter), h.GetByID)
		walks.POST("", middleware.RequireAuth(h.authCfg, model.RoleWriter), h.Create)
		walks.PUT("/:id", middleware.RequireAuth(h.authCfg, model.RoleWriter), h.Update)
		walks.DELETE("/:id", middleware.RequireAuth(h.authCfg, model.RoleWriter), h.Delete)
	}
}

// List handles GET /api/walks with filter/sort/pagination controls
// @Summary      List walks
// @Description  Retrieves a filtered, sorted, paginated page of walks with their region and difficulty
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        filterOn     query     string  false  "Field to filter on (name)"
// @Param        filterQuery  query     string  false  "Substring the filter field must contain"
// @Param        sortBy       query     string  false  "Field to sort by (name, lengthInKm)"
// @Param        isAscending  query     bool    false  "Sort direction (default true)"
// @Param        pageNumber   query     int     false  "Page number (default 1)"
// @Param        pageSize     query     int     false  "Page size (default 10, max 100)"
// @Success      200          {object}  response.Response{data=[]service.WalkResponse}
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /api/walks [get]
func (h *WalkHandler) List(c *gin.Context) {
	ascending, err := strconv.ParseBool(c.DefaultQuery("isAscending", "true"))
	if err != nil {
		ascending = true
	}

	params := service.ListWalksParams{
		FilterOn:    c.Query("filterOn"),
		FilterQuery: c.Query("filterQuery"),
		SortBy:      c.Query("sortBy"),
		Ascending:   ascending,
		Page:        pagination.Parse(c),
	}

	walks, err := h.walkService.List(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownFilterField):
			c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest,
				[]response.FieldError{{Field: "filterOn", Message: err.Error()}}))
		case errors.Is(err, repository.ErrUnknownSortField):
			c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest,
				[]response.FieldError{{Field: "sortBy", Message: err.Error()}}))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch walks"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, walks))
}

// GetByID handles GET /api/walks/:id
// @Summary      Get walk by ID
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Walk ID"
// @Success      200  {object}  response.Response{data=service.WalkResponse}
// @Failure      404  "Not Found"
// @Router       /api/walks/{id} [get]
func (h *WalkHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	walk, err := h.walkService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch walk")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, walk))
}

// Create handles POST /api/walks
// @Summary      Create a new walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.WalkRequest  true  "Create Walk Payload"
// @Success      201      {object}  response.Response{data=service.WalkResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/walks [post]
func (h *WalkHandler) Create(c *gin.Context) {
	var req service.WalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, bindingFieldErrors(err)))
		return
	}

	walk, err := h.walkService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to create walk"))
		return
	}

	c.Header("Location", "/api/walks/"+walk.ID.String())
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, walk))
}

// Update handles PUT /api/walks/:id, replacing all mutable fields atomically
// @Summary      Update walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Walk ID"
// @Param        payload  body      service.WalkRequest  true  "Update Walk Payload"
// @Success      200      {object}  response.Response{data=service.WalkResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      "Not Found"
// @Router       /api/walks/{id} [put]
func (h *WalkHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req service.WalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, bindingFieldErrors(err)))
		return
	}

	walk, err := h.walkService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update walk")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, walk))
}

// Delete handles DELETE /api/walks/:id and returns the deleted record
// @Summary      Delete walk
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Walk ID"
// @Success      200  {object}  response.Response{data=service.WalkResponse}
// @Failure      404  "Not Found"
// @Router       /api/walks/{id} [delete]
func (h *WalkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	walk, err := h.walkService.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to delete walk")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, walk))
}

func (h *WalkHandler) respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, message))
}
