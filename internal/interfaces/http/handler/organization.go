package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// OrganizationHandler handles organization administration endpoints.
type OrganizationHandler struct {
	BaseHandler
	orgService *partyapp.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(orgService *partyapp.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// Create handles POST /organizations/
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req partyapp.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, org)
}

// Get handles GET /organizations/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	org, err := h.orgService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, org)
}

// List handles GET /organizations/
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.orgService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orgs)
}

// Update handles PUT /organizations/:id
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req partyapp.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, org)
}

// Delete handles DELETE /organizations/:id
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	if err := h.orgService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
