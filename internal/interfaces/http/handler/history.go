package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// HistoryHandler serves the read-only endpoints of one history table.
type HistoryHandler[H any] struct {
	BaseHandler
	historyService *partyapp.HistoryService[H]
}

// NewHistoryHandler creates a handler over one history table.
func NewHistoryHandler[H any](historyService *partyapp.HistoryService[H]) *HistoryHandler[H] {
	return &HistoryHandler[H]{historyService: historyService}
}

// Get handles GET /<entity>_history/:id
func (h *HistoryHandler[H]) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid history ID")
		return
	}

	record, err := h.historyService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// List handles GET /<entity>_history/
func (h *HistoryHandler[H]) List(c *gin.Context) {
	records, err := h.historyService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}
