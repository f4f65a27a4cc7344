package handler

import (
	"errors"
	"net/http"

	"walks-api/internal/service"
	"walks-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler sets up the routing dependencies for auth endpoints
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register handles POST /api/auth/register
// @Summary      Register a new user
// @Description  Creates a user with the given roles. The username doubles as the email address.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterRequest  true  "Registration Payload"
// @Success      200      {object}  response.Response{data=string}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, bindingFieldErrors(err)))
		return
	}

	if err := h.authService.Register(c.Request.Context(), req); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, verr.Fields))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to register user"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "User was registered! Please login."))
}

// Login handles POST /api/auth/login
// @Summary      Login user
// @Description  Authenticates a user by username and password, returning a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{data=service.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(http.StatusBadRequest, bindingFieldErrors(err)))
		return
	}

	tokenRes, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic message for unknown user, wrong password and
			// role-less account, so callers cannot enumerate usernames.
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, service.ErrInvalidCredentials.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to login"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tokenRes))
}
