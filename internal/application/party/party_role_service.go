package party

import (
	"context"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// PartyRoleService handles party roles owned by the calling party.
// Every operation is scoped to the caller; rows belonging to someone
// else look exactly like missing rows.
type PartyRoleService struct {
	roles persistence.Store[party.PartyRole]
}

// NewPartyRoleService creates a new PartyRoleService.
func NewPartyRoleService(roles persistence.Store[party.PartyRole]) *PartyRoleService {
	return &PartyRoleService{roles: roles}
}

// Create adds a party role for the caller's party.
func (s *PartyRoleService) Create(ctx context.Context, partyID int64, req CreatePartyRoleRequest) (*party.PartyRole, error) {
	role := &party.PartyRole{
		Note:       req.Note,
		PartyID:    partyID,
		RoleTypeID: req.RoleTypeID,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Get retrieves one of the caller's party roles.
func (s *PartyRoleService) Get(ctx context.Context, partyID, id int64) (*party.PartyRole, error) {
	return s.roles.Get(ctx, id, persistence.OwnedPartyRole(partyID))
}

// List returns the caller's party roles ordered by ascending id.
func (s *PartyRoleService) List(ctx context.Context, partyID int64) ([]party.PartyRole, error) {
	return s.roles.List(ctx, persistence.OwnedPartyRole(partyID))
}

// Update applies a partial update to one of the caller's party roles.
func (s *PartyRoleService) Update(ctx context.Context, partyID, id int64, req UpdatePartyRoleRequest) (*party.PartyRole, error) {
	return s.roles.Update(ctx, id, req.Changes(), persistence.OwnedPartyRole(partyID))
}

// Delete removes one of the caller's party roles.
func (s *PartyRoleService) Delete(ctx context.Context, partyID, id int64) error {
	return s.roles.Delete(ctx, id, persistence.OwnedPartyRole(partyID))
}
