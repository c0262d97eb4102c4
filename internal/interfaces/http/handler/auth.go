package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/partyhub/backend/internal/application/identity"
	"github.com/partyhub/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles registration, the three login flows, and the
// current-role probe.
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// PersonLogin handles POST /persons/login
func (h *AuthHandler) PersonLogin(c *gin.Context) {
	var req identityapp.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.PersonLogin(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// OrganizationLogin handles POST /organizations/login
func (h *AuthHandler) OrganizationLogin(c *gin.Context) {
	var req identityapp.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.OrganizationLogin(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CurrentRole handles GET /currentrole. Any authenticated principal can
// ask for the role its token carries.
func (h *AuthHandler) CurrentRole(c *gin.Context) {
	role := middleware.GetJWTRole(c)
	if role == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}
	h.Success(c, gin.H{"role": role})
}
