package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// PartyRoleHandler handles the caller-owned party role endpoints.
type PartyRoleHandler struct {
	BaseHandler
	roleService *partyapp.PartyRoleService
}

// NewPartyRoleHandler creates a new PartyRoleHandler
func NewPartyRoleHandler(roleService *partyapp.PartyRoleService) *PartyRoleHandler {
	return &PartyRoleHandler{roleService: roleService}
}

// Create handles POST /party_role/
func (h *PartyRoleHandler) Create(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partyapp.CreatePartyRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), partyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, role)
}

// Get handles GET /party_role/:id
func (h *PartyRoleHandler) Get(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party role ID")
		return
	}

	role, err := h.roleService.Get(c.Request.Context(), partyID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, role)
}

// List handles GET /party_role/
func (h *PartyRoleHandler) List(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roles, err := h.roleService.List(c.Request.Context(), partyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, roles)
}

// Update handles PUT /party_role/:id
func (h *PartyRoleHandler) Update(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party role ID")
		return
	}

	var req partyapp.UpdatePartyRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	role, err := h.roleService.Update(c.Request.Context(), partyID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, role)
}

// Delete handles DELETE /party_role/:id
func (h *PartyRoleHandler) Delete(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party role ID")
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), partyID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
