package lookup

import "github.com/partyhub/backend/internal/domain/shared"

// Description is the shape shared by the plain description-only lookup
// tables. Each concrete type only contributes its table name.
type Description struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"type:text;not null" json:"description"`
}

// GenderType classifies a person's gender.
type GenderType struct{ Description }

func (GenderType) TableName() string { return "gender_type" }

// MaritalStatusType classifies a person's marital status.
type MaritalStatusType struct{ Description }

func (MaritalStatusType) TableName() string { return "marital_status_type" }

// EthnicityType classifies a person's ethnicity.
type EthnicityType struct{ Description }

func (EthnicityType) TableName() string { return "ethnicity_type" }

// IncomeRange classifies a person's income bracket.
type IncomeRange struct{ Description }

func (IncomeRange) TableName() string { return "income_range" }

// OrganizationType classifies an organization's legal form.
type OrganizationType struct{ Description }

func (OrganizationType) TableName() string { return "organization_type" }

// EmployeeCountRange classifies an organization's headcount bracket.
type EmployeeCountRange struct{ Description }

func (EmployeeCountRange) TableName() string { return "employee_count_range" }

// RoleType classifies a party role.
type RoleType struct{ Description }

func (RoleType) TableName() string { return "role_type" }

// RelationshipType classifies a role relationship.
type RelationshipType struct{ Description }

func (RelationshipType) TableName() string { return "relationship_type" }

// PriorityType ranks a role relationship.
type PriorityType struct{ Description }

func (PriorityType) TableName() string { return "priority_type" }

// RoleRelationshipStatusType classifies a relationship's status.
type RoleRelationshipStatusType struct{ Description }

func (RoleRelationshipStatusType) TableName() string { return "role_relationship_status_type" }

// ContactMechanismType classifies how a communication event took place.
type ContactMechanismType struct{ Description }

func (ContactMechanismType) TableName() string { return "contact_mechanism_type" }

// CommunicationEventStatusType classifies a communication event's status.
type CommunicationEventStatusType struct{ Description }

func (CommunicationEventStatusType) TableName() string { return "communication_event_status_type" }

// CommunicationEventPurposeType classifies a communication event purpose.
type CommunicationEventPurposeType struct{ Description }

func (CommunicationEventPurposeType) TableName() string { return "communication_event_purpose_type" }

// Country is an ISO country entry with English and Thai names.
type Country struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ISOCode string  `gorm:"column:iso_code;type:varchar(3);not null" json:"iso_code"`
	NameEN  string  `gorm:"column:name_en;type:varchar(100);not null" json:"name_en"`
	NameTH  *string `gorm:"column:name_th;type:varchar(100)" json:"name_th"`
}

// TableName returns the table name for GORM
func (Country) TableName() string { return "country" }

// IndustryType is a NAICS-coded industry classification.
type IndustryType struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	NAICS       string `gorm:"column:naisc;type:varchar(20);not null" json:"naisc"`
	Description string `gorm:"type:text;not null" json:"description"`
}

// TableName returns the table name for GORM
func (IndustryType) TableName() string { return "industry_type" }

// NewDescription validates a description value for the plain lookup types.
func NewDescription(description string) (Description, *shared.DomainError) {
	if description == "" {
		return Description{}, shared.NewDomainError("INVALID_INPUT", "description is required")
	}
	return Description{Description: description}, nil
}
