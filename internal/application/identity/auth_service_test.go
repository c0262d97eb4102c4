package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partyhub/backend/internal/domain/identity"
	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/auth"
	"github.com/partyhub/backend/internal/infrastructure/config"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// mockStore is a testify mock over the persistence store surface.
type mockStore[E any] struct {
	mock.Mock
}

func (m *mockStore[E]) Create(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockStore[E]) Get(ctx context.Context, id int64, scopes ...persistence.Scope) (*E, error) {
	args := m.Called(ctx, id, scopes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *mockStore[E]) List(ctx context.Context, scopes ...persistence.Scope) ([]E, error) {
	args := m.Called(ctx, scopes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *mockStore[E]) FindOne(ctx context.Context, query string, queryArgs ...any) (*E, error) {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *mockStore[E]) Update(ctx context.Context, id int64, changes map[string]any, scopes ...persistence.Scope) (*E, error) {
	args := m.Called(ctx, id, changes, scopes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *mockStore[E]) Delete(ctx context.Context, id int64, scopes ...persistence.Scope) error {
	args := m.Called(ctx, id, scopes)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-with-enough-bytes",
		TokenExpiration: 15 * time.Minute,
		Issuer:          "test-issuer",
	})
}

func newAuthFixture() (*AuthService, *mockStore[identity.User], *mockStore[party.Person], *mockStore[party.Organization], *auth.JWTService) {
	users := new(mockStore[identity.User])
	persons := new(mockStore[party.Person])
	orgs := new(mockStore[party.Organization])
	jwtService := newTestJWTService()
	return NewAuthService(users, persons, orgs, jwtService), users, persons, orgs, jwtService
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates a user and returns its view", func(t *testing.T) {
		svc, users, _, _, _ := newAuthFixture()
		users.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret-pass",
			Role:     identity.RoleHRAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice", resp.Name)
		assert.Equal(t, identity.RoleHRAdmin, resp.Role)
		users.AssertExpectations(t)
	})

	t.Run("rejects an unknown role before touching the store", func(t *testing.T) {
		svc, users, _, _, _ := newAuthFixture()

		_, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret-pass",
			Role:     "superuser",
		})

		require.Error(t, err)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("surfaces duplicate emails", func(t *testing.T) {
		svc, users, _, _, _ := newAuthFixture()
		users.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret-pass",
		})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	makeUser := func(t *testing.T) *identity.User {
		u, derr := identity.NewUser("Alice", "alice@example.com", "secret-pass", identity.RoleAdmin)
		require.Nil(t, derr)
		u.ID = 42
		return u
	}

	t.Run("issues a bearer token carrying the stored role", func(t *testing.T) {
		svc, users, _, _, jwtService := newAuthFixture()
		users.On("FindOne", mock.Anything, "email = ?", []any{"alice@example.com"}).
			Return(makeUser(t), nil)

		resp, err := svc.Login(context.Background(), LoginRequest{
			Email:    "alice@example.com",
			Password: "secret-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), resp.ExpiresAt, 5*time.Second)

		claims, err := jwtService.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.PrincipalID())
		assert.Equal(t, identity.RoleAdmin, claims.Role)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		svc, users, _, _, _ := newAuthFixture()
		users.On("FindOne", mock.Anything, "email = ?", mock.Anything).
			Return(nil, shared.ErrNotFound)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email:    "who@example.com",
			Password: "secret-pass",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("wrong password reads as invalid credentials", func(t *testing.T) {
		svc, users, _, _, _ := newAuthFixture()
		users.On("FindOne", mock.Anything, "email = ?", mock.Anything).
			Return(makeUser(t), nil)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-pass",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("database failures are not masked", func(t *testing.T) {
		svc, users, _, _, _ := newAuthFixture()
		users.On("FindOne", mock.Anything, "email = ?", mock.Anything).
			Return(nil, assert.AnError)

		_, err := svc.Login(context.Background(), LoginRequest{
			Email:    "alice@example.com",
			Password: "secret-pass",
		})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuthService_PersonLogin(t *testing.T) {
	t.Run("issues a person_user token with the person's party id", func(t *testing.T) {
		svc, _, persons, _, jwtService := newAuthFixture()
		p, derr := party.NewPerson("jdoe", "secret-pass", "", "John", "Doe")
		require.Nil(t, derr)
		p.ID = 7
		persons.On("FindOne", mock.Anything, "username = ?", []any{"jdoe"}).Return(p, nil)

		resp, err := svc.PersonLogin(context.Background(), CredentialsRequest{
			Username: "jdoe",
			Password: "secret-pass",
		})

		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.PrincipalID())
		assert.Equal(t, identity.RolePersonUser, claims.Role)
	})

	t.Run("unknown username reads as invalid credentials", func(t *testing.T) {
		svc, _, persons, _, _ := newAuthFixture()
		persons.On("FindOne", mock.Anything, "username = ?", mock.Anything).
			Return(nil, shared.ErrNotFound)

		_, err := svc.PersonLogin(context.Background(), CredentialsRequest{
			Username: "ghost",
			Password: "secret-pass",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}

func TestAuthService_OrganizationLogin(t *testing.T) {
	t.Run("issues an organization_user token", func(t *testing.T) {
		svc, _, _, orgs, jwtService := newAuthFixture()
		o, derr := party.NewOrganization("99-1234567", "Acme Ltd", "acme", "secret-pass")
		require.Nil(t, derr)
		o.ID = 11
		orgs.On("FindOne", mock.Anything, "username = ?", []any{"acme"}).Return(o, nil)

		resp, err := svc.OrganizationLogin(context.Background(), CredentialsRequest{
			Username: "acme",
			Password: "secret-pass",
		})

		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(11), claims.PrincipalID())
		assert.Equal(t, identity.RoleOrganizationUser, claims.Role)
	})

	t.Run("wrong password reads as invalid credentials", func(t *testing.T) {
		svc, _, _, orgs, _ := newAuthFixture()
		o, derr := party.NewOrganization("99-1234567", "Acme Ltd", "acme", "secret-pass")
		require.Nil(t, derr)
		orgs.On("FindOne", mock.Anything, "username = ?", mock.Anything).Return(o, nil)

		_, err := svc.OrganizationLogin(context.Background(), CredentialsRequest{
			Username: "acme",
			Password: "wrong-pass",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}
