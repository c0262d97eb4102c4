package party

import (
	"context"
	"errors"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// RoleRelationshipService handles relationships between party roles.
// The from endpoint is always resolved from the caller's party, and
// reads cover any relationship the caller's party participates in.
type RoleRelationshipService struct {
	relationships persistence.Store[party.RoleRelationship]
	roles         persistence.Store[party.PartyRole]
}

// NewRoleRelationshipService creates a new RoleRelationshipService.
func NewRoleRelationshipService(
	relationships persistence.Store[party.RoleRelationship],
	roles persistence.Store[party.PartyRole],
) *RoleRelationshipService {
	return &RoleRelationshipService{relationships: relationships, roles: roles}
}

// Create links the caller's first party role to the target role. A
// caller without any party role cannot create relationships.
func (s *RoleRelationshipService) Create(ctx context.Context, partyID int64, req CreateRoleRelationshipRequest) (*party.RoleRelationship, error) {
	fromRole, err := s.roles.FindOne(ctx, "party_id = ?", partyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "no party role found for the current party")
		}
		return nil, err
	}

	rel, derr := party.NewRoleRelationship(fromRole.ID, req.ToPartyRoleID, req.RelationshipTypeID)
	if derr != nil {
		return nil, derr
	}
	rel.Comment = req.Comment
	rel.PriorityTypeID = req.PriorityTypeID
	rel.RoleRelationshipStatusTypeID = req.RoleRelationshipStatusTypeID

	if err := s.relationships.Create(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// Get retrieves a relationship the caller's party participates in.
func (s *RoleRelationshipService) Get(ctx context.Context, partyID, id int64) (*party.RoleRelationship, error) {
	return s.relationships.Get(ctx, id, persistence.OwnedRoleRelationship(partyID))
}

// List returns the caller's relationships ordered by ascending id.
func (s *RoleRelationshipService) List(ctx context.Context, partyID int64) ([]party.RoleRelationship, error) {
	return s.relationships.List(ctx, persistence.OwnedRoleRelationship(partyID))
}

// Update applies a partial update to one of the caller's relationships.
func (s *RoleRelationshipService) Update(ctx context.Context, partyID, id int64, req UpdateRoleRelationshipRequest) (*party.RoleRelationship, error) {
	return s.relationships.Update(ctx, id, req.Changes(), persistence.OwnedRoleRelationship(partyID))
}

// Delete removes one of the caller's relationships.
func (s *RoleRelationshipService) Delete(ctx context.Context, partyID, id int64) error {
	return s.relationships.Delete(ctx, id, persistence.OwnedRoleRelationship(partyID))
}
