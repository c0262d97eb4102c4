package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// CommunicationEventHandler handles the caller-owned communication
// event endpoints.
type CommunicationEventHandler struct {
	BaseHandler
	eventService *partyapp.CommunicationEventService
}

// NewCommunicationEventHandler creates a new CommunicationEventHandler
func NewCommunicationEventHandler(eventService *partyapp.CommunicationEventService) *CommunicationEventHandler {
	return &CommunicationEventHandler{eventService: eventService}
}

// Create handles POST /communication_event/
func (h *CommunicationEventHandler) Create(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partyapp.CreateCommunicationEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), partyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, event)
}

// Get handles GET /communication_event/:id
func (h *CommunicationEventHandler) Get(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid communication event ID")
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), partyID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, event)
}

// List handles GET /communication_event/
func (h *CommunicationEventHandler) List(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	events, err := h.eventService.List(c.Request.Context(), partyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, events)
}

// Update handles PUT /communication_event/:id
func (h *CommunicationEventHandler) Update(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid communication event ID")
		return
	}

	var req partyapp.UpdateCommunicationEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), partyID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, event)
}

// Delete handles DELETE /communication_event/:id
func (h *CommunicationEventHandler) Delete(c *gin.Context) {
	partyID, err := getPartyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid communication event ID")
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), partyID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
