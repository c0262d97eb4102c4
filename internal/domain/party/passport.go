package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

// Passport is a travel document held by a person.
type Passport struct {
	shared.BaseEntity
	PassportIDNumber string    `gorm:"type:varchar(50);not null" json:"passport_id_number"`
	IssueDate        time.Time `gorm:"type:date;not null" json:"issue_date"`
	ExpireDate       time.Time `gorm:"type:date;not null" json:"expire_date"`
	PersonID         int64     `gorm:"not null;index" json:"person_id"`
}

// TableName returns the table name for GORM
func (Passport) TableName() string {
	return "passports"
}

// NewPassport validates and creates a passport.
func NewPassport(passportIDNumber string, issueDate, expireDate time.Time, personID int64) (*Passport, *shared.DomainError) {
	if passportIDNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "passport ID number is required")
	}
	if personID <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "person ID is required")
	}
	if !expireDate.After(issueDate) {
		return nil, shared.NewDomainError("INVALID_INPUT", "expire date must be after issue date")
	}
	return &Passport{
		PassportIDNumber: passportIDNumber,
		IssueDate:        issueDate,
		ExpireDate:       expireDate,
		PersonID:         personID,
	}, nil
}

// HistoryRecord snapshots the passport's current field values.
func (p *Passport) HistoryRecord(action audit.Action, at time.Time) *PassportHistory {
	return &PassportHistory{
		Record:           audit.NewRecord(action, at),
		PassportID:       p.ID,
		PassportIDNumber: p.PassportIDNumber,
		IssueDate:        p.IssueDate,
		ExpireDate:       p.ExpireDate,
		PersonID:         p.PersonID,
	}
}

// PassportHistory is an append-only snapshot of a passport mutation.
type PassportHistory struct {
	audit.Record
	PassportID       int64     `gorm:"not null;index" json:"passport_id"`
	PassportIDNumber string    `gorm:"type:varchar(50)" json:"passport_id_number"`
	IssueDate        time.Time `gorm:"type:date" json:"issue_date"`
	ExpireDate       time.Time `gorm:"type:date" json:"expire_date"`
	PersonID         int64     `json:"person_id"`
}

// TableName returns the table name for GORM
func (PassportHistory) TableName() string {
	return "passport_history"
}
