package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partyhub/backend/internal/domain/identity"
	"github.com/partyhub/backend/internal/domain/shared"
)

func TestUserService_Create(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		users := new(mockStore[identity.User])
		svc := NewUserService(users)
		users.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateUserRequest{
			Name:     "Bob",
			Email:    "bob@example.com",
			Password: "secret-pass",
			Role:     identity.RoleBasetypeAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, identity.RoleBasetypeAdmin, resp.Role)
		users.AssertExpectations(t)
	})

	t.Run("rejects invalid input before touching the store", func(t *testing.T) {
		users := new(mockStore[identity.User])
		svc := NewUserService(users)

		_, err := svc.Create(context.Background(), CreateUserRequest{
			Name:     "Bob",
			Email:    "not-an-email",
			Password: "secret-pass",
		})

		require.Error(t, err)
		users.AssertNotCalled(t, "Create")
	})
}

func TestUserService_Update(t *testing.T) {
	stored := func(t *testing.T) *identity.User {
		u, derr := identity.NewUser("Bob", "bob@example.com", "secret-pass", identity.RoleAdmin)
		require.Nil(t, derr)
		u.ID = 5
		return u
	}

	t.Run("passes only the supplied fields as changes", func(t *testing.T) {
		users := new(mockStore[identity.User])
		svc := NewUserService(users)
		name := "Robert"
		users.On("Update", mock.Anything, int64(5), map[string]any{"name": "Robert"}, mock.Anything).
			Return(stored(t), nil)

		_, err := svc.Update(context.Background(), 5, UpdateUserRequest{Name: &name})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("hashes a password change before it reaches the store", func(t *testing.T) {
		users := new(mockStore[identity.User])
		svc := NewUserService(users)
		password := "fresh-secret"
		users.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(changes map[string]any) bool {
			hash, ok := changes["password"].(string)
			return ok && hash != password && shared.VerifyPassword(hash, password)
		}), mock.Anything).Return(stored(t), nil)

		_, err := svc.Update(context.Background(), 5, UpdateUserRequest{Password: &password})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		users := new(mockStore[identity.User])
		svc := NewUserService(users)
		role := "superuser"

		_, err := svc.Update(context.Background(), 5, UpdateUserRequest{Role: &role})

		require.Error(t, err)
		users.AssertNotCalled(t, "Update")
	})

	t.Run("an empty request surfaces the store's no-fields error", func(t *testing.T) {
		users := new(mockStore[identity.User])
		svc := NewUserService(users)
		users.On("Update", mock.Anything, int64(5), map[string]any{}, mock.Anything).
			Return(nil, shared.ErrNoFieldsProvided)

		_, err := svc.Update(context.Background(), 5, UpdateUserRequest{})

		assert.ErrorIs(t, err, shared.ErrNoFieldsProvided)
	})
}

func TestUserService_Delete(t *testing.T) {
	users := new(mockStore[identity.User])
	svc := NewUserService(users)
	users.On("Delete", mock.Anything, int64(5), mock.Anything).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 5))
	users.AssertExpectations(t)
}
