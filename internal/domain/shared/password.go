package shared

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword hashes a plaintext password. Every call produces a
// fresh salt, so equal passwords never share a hash.
func HashPassword(plain string) (string, *DomainError) {
	if len(plain) < 8 {
		return "", NewDomainError("INVALID_INPUT", "password must be at least 8 characters")
	}
	if len(plain) > 72 {
		return "", NewDomainError("INVALID_INPUT", "password must be at most 72 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", NewDomainError("INTERNAL_ERROR", "failed to hash password")
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a bcrypt hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
