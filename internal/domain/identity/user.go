package identity

import (
	"regexp"

	"github.com/partyhub/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a platform account. Users carry an assigned role and are
// managed only by admins.
type User struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(50);not null" json:"role"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a freshly hashed password. An empty role
// defaults to admin.
func NewUser(name, email, password, role string) (*User, *shared.DomainError) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "name is required")
	}
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_INPUT", "invalid email address")
	}
	if role == "" {
		role = RoleAdmin
	}
	if !IsValidRole(role) {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown role: "+role)
	}

	u := &User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores a new password.
func (u *User) SetPassword(plain string) *shared.DomainError {
	hash, err := shared.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return shared.VerifyPassword(u.PasswordHash, plain)
}
