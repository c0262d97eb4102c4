package handler

import (
	"github.com/gin-gonic/gin"

	lookupapp "github.com/partyhub/backend/internal/application/lookup"
	"github.com/partyhub/backend/internal/domain/lookup"
)

// DescriptionHandler serves CRUD for one description-only lookup type.
// The build closure lifts the validated description into the concrete
// table type; everything else is identical across the thirteen tables.
type DescriptionHandler[E any] struct {
	BaseHandler
	service *lookupapp.Service[E]
	build   func(lookup.Description) E
}

// NewDescriptionHandler creates a handler for one lookup table.
func NewDescriptionHandler[E any](service *lookupapp.Service[E], build func(lookup.Description) E) *DescriptionHandler[E] {
	return &DescriptionHandler[E]{service: service, build: build}
}

// Create handles POST /<lookup>/
func (h *DescriptionHandler[E]) Create(c *gin.Context) {
	var req lookupapp.CreateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	d, derr := lookup.NewDescription(req.Description)
	if derr != nil {
		h.HandleDomainError(c, derr)
		return
	}

	e := h.build(d)
	created, err := h.service.Create(c.Request.Context(), &e)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// Get handles GET /<lookup>/:id
func (h *DescriptionHandler[E]) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, e)
}

// List handles GET /<lookup>/
func (h *DescriptionHandler[E]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Update handles PUT /<lookup>/:id
func (h *DescriptionHandler[E]) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	var req lookupapp.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req.Changes())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, e)
}

// Delete handles DELETE /<lookup>/:id
func (h *DescriptionHandler[E]) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// CountryHandler serves CRUD for the country table.
type CountryHandler struct {
	BaseHandler
	service *lookupapp.Service[lookup.Country]
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(service *lookupapp.Service[lookup.Country]) *CountryHandler {
	return &CountryHandler{service: service}
}

// Create handles POST /countries/
func (h *CountryHandler) Create(c *gin.Context) {
	var req lookupapp.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country := lookup.Country{
		ISOCode: req.ISOCode,
		NameEN:  req.NameEN,
		NameTH:  req.NameTH,
	}
	created, err := h.service.Create(c.Request.Context(), &country)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// Get handles GET /countries/:id
func (h *CountryHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	country, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, country)
}

// List handles GET /countries/
func (h *CountryHandler) List(c *gin.Context) {
	countries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, countries)
}

// Update handles PUT /countries/:id
func (h *CountryHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	var req lookupapp.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.service.Update(c.Request.Context(), id, req.Changes())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, country)
}

// Delete handles DELETE /countries/:id
func (h *CountryHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// IndustryTypeHandler serves CRUD for the industry_type table.
type IndustryTypeHandler struct {
	BaseHandler
	service *lookupapp.Service[lookup.IndustryType]
}

// NewIndustryTypeHandler creates a new IndustryTypeHandler
func NewIndustryTypeHandler(service *lookupapp.Service[lookup.IndustryType]) *IndustryTypeHandler {
	return &IndustryTypeHandler{service: service}
}

// Create handles POST /industry_types/
func (h *IndustryTypeHandler) Create(c *gin.Context) {
	var req lookupapp.CreateIndustryTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	it := lookup.IndustryType{
		NAICS:       req.NAICS,
		Description: req.Description,
	}
	created, err := h.service.Create(c.Request.Context(), &it)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// Get handles GET /industry_types/:id
func (h *IndustryTypeHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	it, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, it)
}

// List handles GET /industry_types/
func (h *IndustryTypeHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Update handles PUT /industry_types/:id
func (h *IndustryTypeHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	var req lookupapp.UpdateIndustryTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, req.Changes())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, it)
}

// Delete handles DELETE /industry_types/:id
func (h *IndustryTypeHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
