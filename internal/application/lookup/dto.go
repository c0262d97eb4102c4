package lookup

// CreateDescriptionRequest creates a description-only lookup row.
type CreateDescriptionRequest struct {
	Description string `json:"description" binding:"required,min=1,max=128"`
}

// UpdateDescriptionRequest updates a description-only lookup row.
type UpdateDescriptionRequest struct {
	Description *string `json:"description" binding:"omitempty,min=1,max=128"`
}

// Changes returns the column updates implied by the request.
func (r UpdateDescriptionRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}

// CreateCountryRequest creates a country row.
type CreateCountryRequest struct {
	ISOCode string  `json:"iso_code" binding:"required,min=2,max=3"`
	NameEN  string  `json:"name_en" binding:"required,min=1,max=128"`
	NameTH  *string `json:"name_th" binding:"omitempty,max=128"`
}

// UpdateCountryRequest updates a country row.
type UpdateCountryRequest struct {
	ISOCode *string `json:"iso_code" binding:"omitempty,min=2,max=3"`
	NameEN  *string `json:"name_en" binding:"omitempty,min=1,max=128"`
	NameTH  *string `json:"name_th" binding:"omitempty,max=128"`
}

func (r UpdateCountryRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.ISOCode != nil {
		changes["iso_code"] = *r.ISOCode
	}
	if r.NameEN != nil {
		changes["name_en"] = *r.NameEN
	}
	if r.NameTH != nil {
		changes["name_th"] = *r.NameTH
	}
	return changes
}

// CreateIndustryTypeRequest creates an industry type row. The NAICS
// classification code is stored in the legacy "naisc" column.
type CreateIndustryTypeRequest struct {
	NAICS       string `json:"naisc" binding:"required,min=1,max=32"`
	Description string `json:"description" binding:"required,min=1,max=128"`
}

// UpdateIndustryTypeRequest updates an industry type row.
type UpdateIndustryTypeRequest struct {
	NAICS       *string `json:"naisc" binding:"omitempty,min=1,max=32"`
	Description *string `json:"description" binding:"omitempty,min=1,max=128"`
}

func (r UpdateIndustryTypeRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.NAICS != nil {
		changes["naisc"] = *r.NAICS
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}
