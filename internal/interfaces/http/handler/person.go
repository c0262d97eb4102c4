package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/partyhub/backend/internal/application/party"
)

// PersonHandler handles person administration endpoints.
type PersonHandler struct {
	BaseHandler
	personService *partyapp.PersonService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(personService *partyapp.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// Create handles POST /persons/
func (h *PersonHandler) Create(c *gin.Context) {
	var req partyapp.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	person, err := h.personService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, person)
}

// Get handles GET /persons/:id
func (h *PersonHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	person, err := h.personService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, person)
}

// List handles GET /persons/
func (h *PersonHandler) List(c *gin.Context) {
	persons, err := h.personService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, persons)
}

// Update handles PUT /persons/:id
func (h *PersonHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	var req partyapp.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	person, err := h.personService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, person)
}

// Delete handles DELETE /persons/:id
func (h *PersonHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	if err := h.personService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
