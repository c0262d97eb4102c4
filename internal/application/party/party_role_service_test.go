package party

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
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

// oneScope matches a call carrying exactly one ownership scope.
func oneScope() any {
	return mock.MatchedBy(func(scopes []persistence.Scope) bool {
		return len(scopes) == 1
	})
}

func TestPartyRoleService_Create(t *testing.T) {
	t.Run("binds the new role to the calling party", func(t *testing.T) {
		roles := new(mockStore[party.PartyRole])
		svc := NewPartyRoleService(roles)
		note := "primary"
		roles.On("Create", mock.Anything, mock.MatchedBy(func(r *party.PartyRole) bool {
			return r.PartyID == 42 && r.Note != nil && *r.Note == "primary"
		})).Return(nil)

		role, err := svc.Create(context.Background(), 42, CreatePartyRoleRequest{Note: &note})

		require.NoError(t, err)
		assert.Equal(t, int64(42), role.PartyID)
		roles.AssertExpectations(t)
	})
}

func TestPartyRoleService_Get(t *testing.T) {
	t.Run("reads under an ownership scope", func(t *testing.T) {
		roles := new(mockStore[party.PartyRole])
		svc := NewPartyRoleService(roles)
		stored := &party.PartyRole{PartyID: 42}
		stored.ID = 9
		roles.On("Get", mock.Anything, int64(9), oneScope()).Return(stored, nil)

		role, err := svc.Get(context.Background(), 42, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), role.ID)
		roles.AssertExpectations(t)
	})

	t.Run("an out-of-scope row reads as not found", func(t *testing.T) {
		roles := new(mockStore[party.PartyRole])
		svc := NewPartyRoleService(roles)
		roles.On("Get", mock.Anything, int64(9), oneScope()).Return(nil, shared.ErrNotFound)

		_, err := svc.Get(context.Background(), 1, 9)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPartyRoleService_Update(t *testing.T) {
	roles := new(mockStore[party.PartyRole])
	svc := NewPartyRoleService(roles)
	note := "updated"
	stored := &party.PartyRole{PartyID: 42}
	roles.On("Update", mock.Anything, int64(9), map[string]any{"note": "updated"}, oneScope()).
		Return(stored, nil)

	_, err := svc.Update(context.Background(), 42, 9, UpdatePartyRoleRequest{Note: &note})

	require.NoError(t, err)
	roles.AssertExpectations(t)
}

func TestPartyRoleService_Delete(t *testing.T) {
	roles := new(mockStore[party.PartyRole])
	svc := NewPartyRoleService(roles)
	roles.On("Delete", mock.Anything, int64(9), oneScope()).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 42, 9))
	roles.AssertExpectations(t)
}
