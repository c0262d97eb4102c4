package identity

import (
	"context"
	"errors"

	"github.com/partyhub/backend/internal/domain/identity"
	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/auth"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// AuthService handles registration and the three login flows.
type AuthService struct {
	users      persistence.Store[identity.User]
	persons    persistence.Store[party.Person]
	orgs       persistence.Store[party.Organization]
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users persistence.Store[identity.User],
	persons persistence.Store[party.Person],
	orgs persistence.Store[party.Organization],
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		users:      users,
		persons:    persons,
		orgs:       orgs,
		jwtService: jwtService,
	}
}

// Register creates a platform user. An omitted role defaults to admin.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	user, derr := identity.NewUser(req.Name, req.Email, req.Password, req.Role)
	if derr != nil {
		return nil, derr
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login authenticates a platform user by email. A missing account and a
// wrong password produce the same response.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindOne(ctx, "email = ?", req.Email)
	if err != nil {
		return nil, invalidCredentials(err)
	}
	if !user.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}
	return s.issueToken(user.ID, user.Role)
}

// PersonLogin authenticates a person by username and issues a
// person_user token whose subject is the person's party id.
func (s *AuthService) PersonLogin(ctx context.Context, req CredentialsRequest) (*LoginResponse, error) {
	person, err := s.persons.FindOne(ctx, "username = ?", req.Username)
	if err != nil {
		return nil, invalidCredentials(err)
	}
	if !person.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}
	return s.issueToken(person.ID, identity.RolePersonUser)
}

// OrganizationLogin authenticates an organization by username and
// issues an organization_user token.
func (s *AuthService) OrganizationLogin(ctx context.Context, req CredentialsRequest) (*LoginResponse, error) {
	org, err := s.orgs.FindOne(ctx, "username = ?", req.Username)
	if err != nil {
		return nil, invalidCredentials(err)
	}
	if !org.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}
	return s.issueToken(org.ID, identity.RoleOrganizationUser)
}

func (s *AuthService) issueToken(principalID int64, role string) (*LoginResponse, error) {
	token, err := s.jwtService.GenerateToken(principalID, role)
	if err != nil {
		return nil, shared.ErrInternal
	}
	return &LoginResponse{
		AccessToken: token.Value,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// invalidCredentials hides lookup misses behind the uniform 401 while
// letting real database failures surface as such.
func invalidCredentials(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.ErrInvalidCredentials
	}
	return err
}
