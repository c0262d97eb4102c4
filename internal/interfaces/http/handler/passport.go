package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// PassportHandler handles passport administration endpoints.
type PassportHandler struct {
	BaseHandler
	passportService *partyapp.PassportService
}

// NewPassportHandler creates a new PassportHandler
func NewPassportHandler(passportService *partyapp.PassportService) *PassportHandler {
	return &PassportHandler{passportService: passportService}
}

// Create handles POST /passports/
func (h *PassportHandler) Create(c *gin.Context) {
	var req partyapp.CreatePassportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	passport, err := h.passportService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, passport)
}

// Get handles GET /passports/:id
func (h *PassportHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid passport ID")
		return
	}

	passport, err := h.passportService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, passport)
}

// List handles GET /passports/
func (h *PassportHandler) List(c *gin.Context) {
	passports, err := h.passportService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, passports)
}

// Update handles PUT /passports/:id
func (h *PassportHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid passport ID")
		return
	}

	var req partyapp.UpdatePassportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	passport, err := h.passportService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, passport)
}

// Delete handles DELETE /passports/:id
func (h *PassportHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid passport ID")
		return
	}

	if err := h.passportService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
