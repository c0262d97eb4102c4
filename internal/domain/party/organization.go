package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

// Organization is a legal party. Like a person, its ID doubles as its
// party ID for ownership checks.
type Organization struct {
	shared.BaseEntity
	FederalTaxID         string  `gorm:"type:varchar(50);not null" json:"federal_tax_id"`
	NameEN               string  `gorm:"column:name_en;type:varchar(200);not null" json:"name_en"`
	NameTH               *string `gorm:"column:name_th;type:varchar(200)" json:"name_th"`
	OrganizationTypeID   *int64  `json:"organization_type_id"`
	IndustryTypeID       *int64  `json:"industry_type_id"`
	EmployeeCountRangeID *int64  `json:"employee_count_range_id"`
	Username             string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash         string  `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Comment              *string `gorm:"type:text" json:"comment"`
}

// TableName returns the table name for GORM
func (Organization) TableName() string {
	return "organizations"
}

// NewOrganization creates an organization with a freshly hashed password.
func NewOrganization(federalTaxID, nameEN, username, password string) (*Organization, *shared.DomainError) {
	if federalTaxID == "" || nameEN == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "federal tax ID and English name are required")
	}
	if !usernameRegex.MatchString(username) {
		return nil, shared.NewDomainError("INVALID_INPUT", "username must be 3-100 characters (letters, digits, '_', '.', '-')")
	}

	o := &Organization{
		FederalTaxID: federalTaxID,
		NameEN:       nameEN,
		Username:     username,
	}
	if err := o.SetPassword(password); err != nil {
		return nil, err
	}
	return o, nil
}

// SetPassword hashes and stores a new password.
func (o *Organization) SetPassword(plain string) *shared.DomainError {
	hash, err := shared.HashPassword(plain)
	if err != nil {
		return err
	}
	o.PasswordHash = hash
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (o *Organization) VerifyPassword(plain string) bool {
	return shared.VerifyPassword(o.PasswordHash, plain)
}

// HistoryRecord snapshots the organization's current field values.
func (o *Organization) HistoryRecord(action audit.Action, at time.Time) *OrganizationHistory {
	return &OrganizationHistory{
		Record:               audit.NewRecord(action, at),
		OrganizationID:       o.ID,
		FederalTaxID:         o.FederalTaxID,
		NameEN:               o.NameEN,
		NameTH:               o.NameTH,
		OrganizationTypeID:   o.OrganizationTypeID,
		IndustryTypeID:       o.IndustryTypeID,
		EmployeeCountRangeID: o.EmployeeCountRangeID,
		Username:             o.Username,
		PasswordHash:         o.PasswordHash,
		Comment:              o.Comment,
	}
}

// OrganizationHistory is an append-only snapshot of an organization mutation.
type OrganizationHistory struct {
	audit.Record
	OrganizationID       int64   `gorm:"not null;index" json:"organization_id"`
	FederalTaxID         string  `gorm:"type:varchar(50)" json:"federal_tax_id"`
	NameEN               string  `gorm:"column:name_en;type:varchar(200)" json:"name_en"`
	NameTH               *string `gorm:"column:name_th;type:varchar(200)" json:"name_th"`
	OrganizationTypeID   *int64  `json:"organization_type_id"`
	IndustryTypeID       *int64  `json:"industry_type_id"`
	EmployeeCountRangeID *int64  `json:"employee_count_range_id"`
	Username             string  `gorm:"type:varchar(100)" json:"username"`
	PasswordHash         string  `gorm:"column:password;type:varchar(255)" json:"-"`
	Comment              *string `gorm:"type:text" json:"comment"`
}

// TableName returns the table name for GORM
func (OrganizationHistory) TableName() string {
	return "organization_history"
}
