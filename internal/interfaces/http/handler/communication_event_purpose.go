package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// CommunicationEventPurposeHandler handles the caller-owned purpose
// tag endpoints.
type CommunicationEventPurposeHandler struct {
	BaseHandler
	purposeService *partyapp.CommunicationEventPurposeService
}

// NewCommunicationEventPurposeHandler creates a new CommunicationEventPurposeHandler
func NewCommunicationEventPurposeHandler(purposeService *partyapp.CommunicationEventPurposeService) *CommunicationEventPurposeHandler {
	return &CommunicationEventPurposeHandler{purposeService: purposeService}
}

// Create handles POST /communication_event_purpose/
func (h *CommunicationEventPurposeHandler) Create(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partyapp.CreateCommunicationEventPurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purpose, err := h.purposeService.Create(c.Request.Context(), partyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, purpose)
}

// Get handles GET /communication_event_purpose/:id
func (h *CommunicationEventPurposeHandler) Get(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purpose ID")
		return
	}

	purpose, err := h.purposeService.Get(c.Request.Context(), partyID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, purpose)
}

// List handles GET /communication_event_purpose/
func (h *CommunicationEventPurposeHandler) List(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	purposes, err := h.purposeService.List(c.Request.Context(), partyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, purposes)
}

// Update handles PUT /communication_event_purpose/:id
func (h *CommunicationEventPurposeHandler) Update(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purpose ID")
		return
	}

	var req partyapp.UpdateCommunicationEventPurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purpose, err := h.purposeService.Update(c.Request.Context(), partyID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, purpose)
}

// Delete handles DELETE /communication_event_purpose/:id
func (h *CommunicationEventPurposeHandler) Delete(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purpose ID")
		return
	}

	if err := h.purposeService.Delete(c.Request.Context(), partyID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
