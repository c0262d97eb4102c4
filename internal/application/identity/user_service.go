package identity

import (
	"context"

	"github.com/partyhub/backend/internal/domain/identity"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// UserService handles platform user administration.
type UserService struct {
	users persistence.Store[identity.User]
}

// NewUserService creates a new UserService.
func NewUserService(users persistence.Store[identity.User]) *UserService {
	return &UserService{users: users}
}

// Create adds a platform user with an explicit role.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, derr := identity.NewUser(req.Name, req.Email, req.Password, req.Role)
	if derr != nil {
		return nil, derr
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Get retrieves a platform user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*UserResponse, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List returns all platform users ordered by ascending id.
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *ToUserResponse(&users[i]))
	}
	return out, nil
}

// Update applies a partial update to a platform user. A password change
// is hashed before it reaches the database.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*UserResponse, error) {
	changes := make(map[string]any)
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Password != nil {
		hash, derr := shared.HashPassword(*req.Password)
		if derr != nil {
			return nil, derr
		}
		changes["password"] = hash
	}
	if req.Role != nil {
		if !identity.IsValidRole(*req.Role) {
			return nil, shared.NewDomainError("INVALID_INPUT", "unknown role")
		}
		changes["role"] = *req.Role
	}
	user, err := s.users.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete removes a platform user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
