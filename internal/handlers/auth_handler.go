package handlers

import (
	"net/http"

	"lawconnect_backend/internal/services"
	"lawconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes mounts the public auth endpoints. Clients and lawyers
// register through separate endpoints because the lawyer profile carries
// the directory fields.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.LoginUser)
		auth.POST("/lawyers/register", h.RegisterLawyer)
		auth.POST("/lawyers/login", h.LoginLawyer)
	}
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RegisterUser(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.LoginUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) RegisterLawyer(c *gin.Context) {
	var req dto.RegisterLawyerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RegisterLawyer(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Lawyer registered successfully"})
}

func (h *AuthHandler) LoginLawyer(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.LoginLawyer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
