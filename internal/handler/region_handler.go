package handler

import (
	"errors"
	"net/http"

	"walks-api/internal/middleware"
	"walks-api/internal/model"
	"walks-api/internal/repository"
	"walks-api/internal/service"
	"walks-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegionHandler struct {
	regionService service.RegionService
	authCfg       service.TokenConfig
}

// NewRegionHandler sets up the routing dependencies for Region endpoints
func NewRegionHandler(regionService service.RegionService, authCfg service.TokenConfig) *RegionHandler {
	return &RegionHandler{regionService: regionService, authCfg: authCfg}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// Reads require any seeded role; writes require Writer.
func (h *RegionHandler) RegisterRoutes(router *gin.RouterGroup) {
	regions := router.Group("/api/regions")
	{
		regions.GET("", middleware.RequireAuth(h.authCfg, model.RoleReader, model.RoleWriter), h.GetAll)
		regions.GET("/:id", middleware.RequireAuth(h.authCfg, model.RoleReader, model.RoleWriter), h.GetByID)
		regions.POST("", middleware.RequireAuth(h.authCfg, model.RoleWriter), h.Create)
		regions.PUT("/:id", middleware.RequireAuth(h.authCfg, model.RoleWriter), h.Update)
		regions.DELETE("/:id", middleware.RequireAuth(h.authCfg, model.RoleWriter), h.Delete)
	}
}

// GetAll handles GET /api/regions
// @Summary      List regions
// @Description  Retrieves all regions
// @Tags         regions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.RegionResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/regions [get]
func (h *RegionHandler) GetAll(c *gin.Context) {
	regions, err := h.regionService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch regions"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, regions))
}

// GetByID handles GET /api/regions/:id
// @Summary      Get region by ID
// @Tags         regions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Region ID"
// @Success      200  {object}  response.Response{data=service.RegionResponse}
// @Failure      404  "Not Found"
// @Router       /api/regions/{id} [get]
func (h *RegionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	region, err := h.regionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch region")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, region))
}

// Create handles POST /api/regions
// @Summary      Create a new region
// @Tags         regions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.RegionRequest  true  "Create Region Payload"
// @Success      201      {object}  response.Response{data=service.RegionResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/regions [post]
func (h *RegionHandler) Create(c *gin.Context) {
	var req service.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, bindingFieldErrors(err)))
		return
	}

	region, err := h.regionService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to create region"))
		return
	}

	c.Header("Location", "/api/regions/"+region.ID.String())
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, region))
}

// Update handles PUT /api/regions/:id, replacing all mutable fields
// @Summary      Update region
// @Tags         regions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Region ID"
// @Param        payload  body      service.RegionRequest  true  "Update Region Payload"
// @Success      200      {object}  response.Response{data=service.RegionResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      "Not Found"
// @Router       /api/regions/{id} [put]
func (h *RegionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req service.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, bindingFieldErrors(err)))
		return
	}

	region, err := h.regionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update region")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, region))
}

// Delete handles DELETE /api/regions/:id and returns the deleted record
// @Summary      Delete region
// @Tags         regions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Region ID"
// @Success      200  {object}  response.Response{data=service.RegionResponse}
// @Failure      404  "Not Found"
// @Router       /api/regions/{id} [delete]
func (h *RegionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	region, err := h.regionService.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to delete region")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, region))
}

// respondError maps missing records to an empty-body 404, everything else to 500
func (h *RegionHandler) respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, message))
}
