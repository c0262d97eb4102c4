package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/partyhub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forgeToken signs a token with arbitrary claims using the service secret.
func forgeToken(t *testing.T, svc *JWTService, subject, role string) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(svc.secret)
	require.NoError(t, err)
	return signed
}

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-chars",
		TokenExpiration: 24 * time.Hour,
		Issuer:          "test-issuer",
	}
	return NewJWTService(cfg)
}

func TestNewJWTService(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:          "test-secret",
		TokenExpiration: 24 * time.Hour,
		Issuer:          "test-issuer",
	}

	svc := NewJWTService(cfg)

	assert.NotNil(t, svc)
	assert.Equal(t, []byte(cfg.Secret), svc.secret)
	assert.Equal(t, cfg.TokenExpiration, svc.expiration)
	assert.Equal(t, cfg.Issuer, svc.issuer)
}

func TestGenerateToken(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken(42, "person_user")

	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))
}

func TestGenerateToken_MissingRole(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.GenerateToken(42, "")

	assert.ErrorIs(t, err, ErrMissingRole)
}

func TestValidateToken_Success(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken(42, "hr_admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.Value)

	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.PrincipalID())
	assert.Equal(t, "hr_admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-chars",
		TokenExpiration: -1 * time.Hour, // Already expired
		Issuer:          "test-issuer",
	}
	svc := NewJWTService(cfg)

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.Value)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("invalid-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:          "a-different-secret-key-32-chars!",
		TokenExpiration: 24 * time.Hour,
		Issuer:          "test-issuer",
	})

	token, err := other.GenerateToken(42, "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.Value)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_NonNumericSubject(t *testing.T) {
	svc := newTestJWTService()

	// Forge a token whose subject is not a numeric ID.
	forged := forgeToken(t, svc, "not-a-number", "admin")

	_, err := svc.ValidateToken(forged)

	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestValidateToken_MissingRole(t *testing.T) {
	svc := newTestJWTService()

	forged := forgeToken(t, svc, "42", "")

	_, err := svc.ValidateToken(forged)

	assert.ErrorIs(t, err, ErrMissingRole)
}

func TestGetTokenExpiration(t *testing.T) {
	svc := newTestJWTService()
	assert.Equal(t, 24*time.Hour, svc.GetTokenExpiration())
}
