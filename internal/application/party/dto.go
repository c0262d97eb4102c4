package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/shared"
)

// CreatePersonRequest creates a person.
type CreatePersonRequest struct {
	Username            string     `json:"username" binding:"required,min=3,max=100"`
	Password            string     `json:"password" binding:"required,min=8,max=72"`
	PersonalIDNumber    string     `json:"personal_id_number" binding:"required,max=50"`
	FirstName           string     `json:"first_name" binding:"required,min=1,max=100"`
	MiddleName          *string    `json:"middle_name" binding:"omitempty,max=100"`
	LastName            string     `json:"last_name" binding:"required,min=1,max=100"`
	NickName            *string    `json:"nick_name" binding:"omitempty,max=100"`
	BirthDate           *time.Time `json:"birth_date"`
	GenderTypeID        *int64     `json:"gender_type_id" binding:"omitempty,gt=0"`
	MaritalStatusTypeID *int64     `json:"marital_status_type_id" binding:"omitempty,gt=0"`
	CountryID           *int64     `json:"country_id" binding:"omitempty,gt=0"`
	Height              *float64   `json:"height" binding:"omitempty,gt=0"`
	Weight              *float64   `json:"weight" binding:"omitempty,gt=0"`
	EthnicityTypeID     *int64     `json:"ethnicity_type_id" binding:"omitempty,gt=0"`
	IncomeRangeID       *int64     `json:"income_range_id" binding:"omitempty,gt=0"`
	Comment             *string    `json:"comment"`
}

// UpdatePersonRequest updates a person. Only supplied fields change.
type UpdatePersonRequest struct {
	Username            *string    `json:"username" binding:"omitempty,min=3,max=100"`
	Password            *string    `json:"password" binding:"omitempty,min=8,max=72"`
	PersonalIDNumber    *string    `json:"personal_id_number" binding:"omitempty,max=50"`
	FirstName           *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	MiddleName          *string    `json:"middle_name" binding:"omitempty,max=100"`
	LastName            *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	NickName            *string    `json:"nick_name" binding:"omitempty,max=100"`
	BirthDate           *time.Time `json:"birth_date"`
	GenderTypeID        *int64     `json:"gender_type_id" binding:"omitempty,gt=0"`
	MaritalStatusTypeID *int64     `json:"marital_status_type_id" binding:"omitempty,gt=0"`
	CountryID           *int64     `json:"country_id" binding:"omitempty,gt=0"`
	Height              *float64   `json:"height" binding:"omitempty,gt=0"`
	Weight              *float64   `json:"weight" binding:"omitempty,gt=0"`
	EthnicityTypeID     *int64     `json:"ethnicity_type_id" binding:"omitempty,gt=0"`
	IncomeRangeID       *int64     `json:"income_range_id" binding:"omitempty,gt=0"`
	Comment             *string    `json:"comment"`
}

// Changes returns the column updates implied by the request. A password
// change is hashed here so plaintext never reaches the store.
func (r UpdatePersonRequest) Changes() (map[string]any, *shared.DomainError) {
	changes := make(map[string]any)
	if r.Username != nil {
		changes["username"] = *r.Username
	}
	if r.Password != nil {
		hash, err := shared.HashPassword(*r.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hash
	}
	if r.PersonalIDNumber != nil {
		changes["personal_id_number"] = *r.PersonalIDNumber
	}
	if r.FirstName != nil {
		changes["first_name"] = *r.FirstName
	}
	if r.MiddleName != nil {
		changes["middle_name"] = *r.MiddleName
	}
	if r.LastName != nil {
		changes["last_name"] = *r.LastName
	}
	if r.NickName != nil {
		changes["nick_name"] = *r.NickName
	}
	if r.BirthDate != nil {
		changes["birth_date"] = *r.BirthDate
	}
	if r.GenderTypeID != nil {
		changes["gender_type_id"] = *r.GenderTypeID
	}
	if r.MaritalStatusTypeID != nil {
		changes["marital_status_type_id"] = *r.MaritalStatusTypeID
	}
	if r.CountryID != nil {
		changes["country_id"] = *r.CountryID
	}
	if r.Height != nil {
		changes["height"] = *r.Height
	}
	if r.Weight != nil {
		changes["weight"] = *r.Weight
	}
	if r.EthnicityTypeID != nil {
		changes["ethnicity_type_id"] = *r.EthnicityTypeID
	}
	if r.IncomeRangeID != nil {
		changes["income_range_id"] = *r.IncomeRangeID
	}
	if r.Comment != nil {
		changes["comment"] = *r.Comment
	}
	return changes, nil
}

// CreateOrganizationRequest creates an organization.
type CreateOrganizationRequest struct {
	FederalTaxID         string  `json:"federal_tax_id" binding:"required,max=50"`
	NameEN               string  `json:"name_en" binding:"required,min=1,max=200"`
	NameTH               *string `json:"name_th" binding:"omitempty,max=200"`
	OrganizationTypeID   *int64  `json:"organization_type_id" binding:"omitempty,gt=0"`
	IndustryTypeID       *int64  `json:"industry_type_id" binding:"omitempty,gt=0"`
	EmployeeCountRangeID *int64  `json:"employee_count_range_id" binding:"omitempty,gt=0"`
	Username             string  `json:"username" binding:"required,min=3,max=100"`
	Password             string  `json:"password" binding:"required,min=8,max=72"`
	Comment              *string `json:"comment"`
}

// UpdateOrganizationRequest updates an organization.
type UpdateOrganizationRequest struct {
	FederalTaxID         *string `json:"federal_tax_id" binding:"omitempty,max=50"`
	NameEN               *string `json:"name_en" binding:"omitempty,min=1,max=200"`
	NameTH               *string `json:"name_th" binding:"omitempty,max=200"`
	OrganizationTypeID   *int64  `json:"organization_type_id" binding:"omitempty,gt=0"`
	IndustryTypeID       *int64  `json:"industry_type_id" binding:"omitempty,gt=0"`
	EmployeeCountRangeID *int64  `json:"employee_count_range_id" binding:"omitempty,gt=0"`
	Username             *string `json:"username" binding:"omitempty,min=3,max=100"`
	Password             *string `json:"password" binding:"omitempty,min=8,max=72"`
	Comment              *string `json:"comment"`
}

func (r UpdateOrganizationRequest) Changes() (map[string]any, *shared.DomainError) {
	changes := make(map[string]any)
	if r.FederalTaxID != nil {
		changes["federal_tax_id"] = *r.FederalTaxID
	}
	if r.NameEN != nil {
		changes["name_en"] = *r.NameEN
	}
	if r.NameTH != nil {
		changes["name_th"] = *r.NameTH
	}
	if r.OrganizationTypeID != nil {
		changes["organization_type_id"] = *r.OrganizationTypeID
	}
	if r.IndustryTypeID != nil {
		changes["industry_type_id"] = *r.IndustryTypeID
	}
	if r.EmployeeCountRangeID != nil {
		changes["employee_count_range_id"] = *r.EmployeeCountRangeID
	}
	if r.Username != nil {
		changes["username"] = *r.Username
	}
	if r.Password != nil {
		hash, err := shared.HashPassword(*r.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hash
	}
	if r.Comment != nil {
		changes["comment"] = *r.Comment
	}
	return changes, nil
}

// CreatePassportRequest creates a passport for a person.
type CreatePassportRequest struct {
	PassportIDNumber string    `json:"passport_id_number" binding:"required,max=50"`
	IssueDate        time.Time `json:"issue_date" binding:"required"`
	ExpireDate       time.Time `json:"expire_date" binding:"required"`
	PersonID         int64     `json:"person_id" binding:"required,gt=0"`
}

// UpdatePassportRequest updates a passport.
type UpdatePassportRequest struct {
	PassportIDNumber *string    `json:"passport_id_number" binding:"omitempty,max=50"`
	IssueDate        *time.Time `json:"issue_date"`
	ExpireDate       *time.Time `json:"expire_date"`
	PersonID         *int64     `json:"person_id" binding:"omitempty,gt=0"`
}

func (r UpdatePassportRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.PassportIDNumber != nil {
		changes["passport_id_number"] = *r.PassportIDNumber
	}
	if r.IssueDate != nil {
		changes["issue_date"] = *r.IssueDate
	}
	if r.ExpireDate != nil {
		changes["expire_date"] = *r.ExpireDate
	}
	if r.PersonID != nil {
		changes["person_id"] = *r.PersonID
	}
	return changes
}

// CreatePartyRoleRequest creates a party role for the caller's party.
// The party id comes from the token, never from the body.
type CreatePartyRoleRequest struct {
	Note       *string `json:"note"`
	RoleTypeID *int64  `json:"role_type_id" binding:"omitempty,gt=0"`
}

// UpdatePartyRoleRequest updates a party role.
type UpdatePartyRoleRequest struct {
	Note       *string `json:"note"`
	RoleTypeID *int64  `json:"role_type_id" binding:"omitempty,gt=0"`
}

func (r UpdatePartyRoleRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Note != nil {
		changes["note"] = *r.Note
	}
	if r.RoleTypeID != nil {
		changes["role_type_id"] = *r.RoleTypeID
	}
	return changes
}

// CreateRoleRelationshipRequest creates a relationship from the
// caller's party role to the given target role.
type CreateRoleRelationshipRequest struct {
	ToPartyRoleID                int64   `json:"to_party_role_id" binding:"required,gt=0"`
	Comment                      *string `json:"comment"`
	RelationshipTypeID           int64   `json:"relationship_type_id" binding:"required,gt=0"`
	PriorityTypeID               *int64  `json:"priority_type_id" binding:"omitempty,gt=0"`
	RoleRelationshipStatusTypeID *int64  `json:"role_relationship_status_type_id" binding:"omitempty,gt=0"`
}

// UpdateRoleRelationshipRequest updates a relationship. The target role
// may be repointed; the originating role is immutable once created.
type UpdateRoleRelationshipRequest struct {
	ToPartyRoleID                *int64  `json:"to_party_role_id" binding:"omitempty,gt=0"`
	Comment                      *string `json:"comment"`
	RelationshipTypeID           *int64  `json:"relationship_type_id" binding:"omitempty,gt=0"`
	PriorityTypeID               *int64  `json:"priority_type_id" binding:"omitempty,gt=0"`
	RoleRelationshipStatusTypeID *int64  `json:"role_relationship_status_type_id" binding:"omitempty,gt=0"`
}

func (r UpdateRoleRelationshipRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.ToPartyRoleID != nil {
		changes["to_party_role_id"] = *r.ToPartyRoleID
	}
	if r.Comment != nil {
		changes["comment"] = *r.Comment
	}
	if r.RelationshipTypeID != nil {
		changes["relationship_type_id"] = *r.RelationshipTypeID
	}
	if r.PriorityTypeID != nil {
		changes["priority_type_id"] = *r.PriorityTypeID
	}
	if r.RoleRelationshipStatusTypeID != nil {
		changes["role_relationship_status_type_id"] = *r.RoleRelationshipStatusTypeID
	}
	return changes
}

// CreateCommunicationEventRequest records a contact over one of the
// caller's role relationships. The relationship is the event's
// ownership anchor and is therefore mandatory.
type CreateCommunicationEventRequest struct {
	Note                           *string `json:"note"`
	RoleRelationshipID             *int64  `json:"role_relationship_id" binding:"required,gt=0"`
	ContactMechanismTypeID         *int64  `json:"contact_mechanism_type_id" binding:"omitempty,gt=0"`
	CommunicationEventStatusTypeID *int64  `json:"communication_event_status_type_id" binding:"omitempty,gt=0"`
}

// UpdateCommunicationEventRequest updates a communication event.
type UpdateCommunicationEventRequest struct {
	Note                           *string `json:"note"`
	RoleRelationshipID             *int64  `json:"role_relationship_id" binding:"omitempty,gt=0"`
	ContactMechanismTypeID         *int64  `json:"contact_mechanism_type_id" binding:"omitempty,gt=0"`
	CommunicationEventStatusTypeID *int64  `json:"communication_event_status_type_id" binding:"omitempty,gt=0"`
}

func (r UpdateCommunicationEventRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Note != nil {
		changes["note"] = *r.Note
	}
	if r.RoleRelationshipID != nil {
		changes["role_relationship_id"] = *r.RoleRelationshipID
	}
	if r.ContactMechanismTypeID != nil {
		changes["contact_mechanism_type_id"] = *r.ContactMechanismTypeID
	}
	if r.CommunicationEventStatusTypeID != nil {
		changes["communication_event_status_type_id"] = *r.CommunicationEventStatusTypeID
	}
	return changes
}

// CreateCommunicationEventPurposeRequest tags one of the caller's
// communication events with a purpose. The event is the purpose's
// ownership anchor and is therefore mandatory.
type CreateCommunicationEventPurposeRequest struct {
	Note                            *string `json:"note"`
	CommunicationEventID            *int64  `json:"communication_event_id" binding:"required,gt=0"`
	CommunicationEventPurposeTypeID *int64  `json:"communication_event_purpose_type_id" binding:"omitempty,gt=0"`
}

// UpdateCommunicationEventPurposeRequest updates a purpose.
type UpdateCommunicationEventPurposeRequest struct {
	Note                            *string `json:"note"`
	CommunicationEventID            *int64  `json:"communication_event_id" binding:"omitempty,gt=0"`
	CommunicationEventPurposeTypeID *int64  `json:"communication_event_purpose_type_id" binding:"omitempty,gt=0"`
}

func (r UpdateCommunicationEventPurposeRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Note != nil {
		changes["note"] = *r.Note
	}
	if r.CommunicationEventID != nil {
		changes["communication_event_id"] = *r.CommunicationEventID
	}
	if r.CommunicationEventPurposeTypeID != nil {
		changes["communication_event_purpose_type_id"] = *r.CommunicationEventPurposeTypeID
	}
	return changes
}
