package party

import (
	"regexp"
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,100}$`)

// Person is a natural party. A person's ID doubles as its party ID for
// ownership checks on party roles and everything reachable from them.
type Person struct {
	shared.BaseEntity
	Username            string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash        string     `gorm:"column:password;type:varchar(255);not null" json:"-"`
	PersonalIDNumber    string     `gorm:"type:varchar(50)" json:"personal_id_number"`
	FirstName           string     `gorm:"type:varchar(100);not null" json:"first_name"`
	MiddleName          *string    `gorm:"type:varchar(100)" json:"middle_name"`
	LastName            string     `gorm:"type:varchar(100);not null" json:"last_name"`
	NickName            *string    `gorm:"type:varchar(100)" json:"nick_name"`
	BirthDate           *time.Time `gorm:"type:date" json:"birth_date"`
	GenderTypeID        *int64     `json:"gender_type_id"`
	MaritalStatusTypeID *int64     `json:"marital_status_type_id"`
	CountryID           *int64     `json:"country_id"`
	Height              *float64   `json:"height"`
	Weight              *float64   `json:"weight"`
	EthnicityTypeID     *int64     `json:"ethnicity_type_id"`
	IncomeRangeID       *int64     `json:"income_range_id"`
	Comment             *string    `gorm:"type:text" json:"comment"`
}

// TableName returns the table name for GORM
func (Person) TableName() string {
	return "persons"
}

// NewPerson creates a person with a freshly hashed password.
func NewPerson(username, password, personalIDNumber, firstName, lastName string) (*Person, *shared.DomainError) {
	if !usernameRegex.MatchString(username) {
		return nil, shared.NewDomainError("INVALID_INPUT", "username must be 3-100 characters (letters, digits, '_', '.', '-')")
	}
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "first name and last name are required")
	}

	p := &Person{
		Username:         username,
		PersonalIDNumber: personalIDNumber,
		FirstName:        firstName,
		LastName:         lastName,
	}
	if err := p.SetPassword(password); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPassword hashes and stores a new password. Each call produces a
// fresh salt.
func (p *Person) SetPassword(plain string) *shared.DomainError {
	hash, err := shared.HashPassword(plain)
	if err != nil {
		return err
	}
	p.PasswordHash = hash
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (p *Person) VerifyPassword(plain string) bool {
	return shared.VerifyPassword(p.PasswordHash, plain)
}

// HistoryRecord snapshots the person's current field values.
func (p *Person) HistoryRecord(action audit.Action, at time.Time) *PersonHistory {
	return &PersonHistory{
		Record:              audit.NewRecord(action, at),
		PersonID:            p.ID,
		Username:            p.Username,
		PasswordHash:        p.PasswordHash,
		PersonalIDNumber:    p.PersonalIDNumber,
		FirstName:           p.FirstName,
		MiddleName:          p.MiddleName,
		LastName:            p.LastName,
		NickName:            p.NickName,
		BirthDate:           p.BirthDate,
		GenderTypeID:        p.GenderTypeID,
		MaritalStatusTypeID: p.MaritalStatusTypeID,
		CountryID:           p.CountryID,
		Height:              p.Height,
		Weight:              p.Weight,
		EthnicityTypeID:     p.EthnicityTypeID,
		IncomeRangeID:       p.IncomeRangeID,
		Comment:             p.Comment,
	}
}

// PersonHistory is an append-only snapshot of a person mutation.
// Rows outlive the person they describe.
type PersonHistory struct {
	audit.Record
	PersonID            int64      `gorm:"not null;index" json:"person_id"`
	Username            string     `gorm:"type:varchar(100)" json:"username"`
	PasswordHash        string     `gorm:"column:password;type:varchar(255)" json:"-"`
	PersonalIDNumber    string     `gorm:"type:varchar(50)" json:"personal_id_number"`
	FirstName           string     `gorm:"type:varchar(100)" json:"first_name"`
	MiddleName          *string    `gorm:"type:varchar(100)" json:"middle_name"`
	LastName            string     `gorm:"type:varchar(100)" json:"last_name"`
	NickName            *string    `gorm:"type:varchar(100)" json:"nick_name"`
	BirthDate           *time.Time `gorm:"type:date" json:"birth_date"`
	GenderTypeID        *int64     `json:"gender_type_id"`
	MaritalStatusTypeID *int64     `json:"marital_status_type_id"`
	CountryID           *int64     `json:"country_id"`
	Height              *float64   `json:"height"`
	Weight              *float64   `json:"weight"`
	EthnicityTypeID     *int64     `json:"ethnicity_type_id"`
	IncomeRangeID       *int64     `json:"income_range_id"`
	Comment             *string    `gorm:"type:text" json:"comment"`
}

// TableName returns the table name for GORM
func (PersonHistory) TableName() string {
	return "person_history"
}

