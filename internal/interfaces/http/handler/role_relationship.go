package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// RoleRelationshipHandler handles the caller-owned relationship endpoints.
type RoleRelationshipHandler struct {
	BaseHandler
	relService *partyapp.RoleRelationshipService
}

// NewRoleRelationshipHandler creates a new RoleRelationshipHandler
func NewRoleRelationshipHandler(relService *partyapp.RoleRelationshipService) *RoleRelationshipHandler {
	return &RoleRelationshipHandler{relService: relService}
}

// Create handles POST /role_relationship/
func (h *RoleRelationshipHandler) Create(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partyapp.CreateRoleRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rel, err := h.relService.Create(c.Request.Context(), partyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, rel)
}

// Get handles GET /role_relationship/:id
func (h *RoleRelationshipHandler) Get(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid relationship ID")
		return
	}

	rel, err := h.relService.Get(c.Request.Context(), partyID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rel)
}

// List handles GET /role_relationship/
func (h *RoleRelationshipHandler) List(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rels, err := h.relService.List(c.Request.Context(), partyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rels)
}

// Update handles PUT /role_relationship/:id
func (h *RoleRelationshipHandler) Update(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid relationship ID")
		return
	}

	var req partyapp.UpdateRoleRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rel, err := h.relService.Update(c.Request.Context(), partyID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rel)
}

// Delete handles DELETE /role_relationship/:id
func (h *RoleRelationshipHandler) Delete(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid relationship ID")
		return
	}

	if err := h.relService.Delete(c.Request.Context(), partyID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
