package party

import (
	"context"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// CommunicationEventService handles contacts recorded over the
// caller's role relationships. Ownership flows through the referenced
// relationship, so pointing an event at a foreign relationship is
// indistinguishable from pointing it at a missing one.
type CommunicationEventService struct {
	events        persistence.Store[party.CommunicationEvent]
	relationships persistence.Store[party.RoleRelationship]
}

// NewCommunicationEventService creates a new CommunicationEventService.
func NewCommunicationEventService(
	events persistence.Store[party.CommunicationEvent],
	relationships persistence.Store[party.RoleRelationship],
) *CommunicationEventService {
	return &CommunicationEventService{events: events, relationships: relationships}
}

// Create records a communication event. The target relationship is
// required and must belong to the caller's party; without it the event
// would fall outside every ownership scope and become unreachable.
func (s *CommunicationEventService) Create(ctx context.Context, partyID int64, req CreateCommunicationEventRequest) (*party.CommunicationEvent, error) {
	if req.RoleRelationshipID == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "role_relationship_id is required")
	}
	if _, err := s.relationships.Get(ctx, *req.RoleRelationshipID, persistence.OwnedRoleRelationship(partyID)); err != nil {
		return nil, err
	}

	event := &party.CommunicationEvent{
		Note:                           req.Note,
		RoleRelationshipID:             req.RoleRelationshipID,
		ContactMechanismTypeID:         req.ContactMechanismTypeID,
		CommunicationEventStatusTypeID: req.CommunicationEventStatusTypeID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get retrieves one of the caller's communication events.
func (s *CommunicationEventService) Get(ctx context.Context, partyID, id int64) (*party.CommunicationEvent, error) {
	return s.events.Get(ctx, id, persistence.OwnedCommunicationEvent(partyID))
}

// List returns the caller's communication events ordered by ascending id.
func (s *CommunicationEventService) List(ctx context.Context, partyID int64) ([]party.CommunicationEvent, error) {
	return s.events.List(ctx, persistence.OwnedCommunicationEvent(partyID))
}

// Update applies a partial update to one of the caller's events.
// Repointing the event at another relationship requires that target
// to be owned as well; the store's post-write ownership check rolls
// back anything that slips through.
func (s *CommunicationEventService) Update(ctx context.Context, partyID, id int64, req UpdateCommunicationEventRequest) (*party.CommunicationEvent, error) {
	if req.RoleRelationshipID != nil {
		if _, err := s.relationships.Get(ctx, *req.RoleRelationshipID, persistence.OwnedRoleRelationship(partyID)); err != nil {
			return nil, err
		}
	}
	return s.events.Update(ctx, id, req.Changes(), persistence.OwnedCommunicationEvent(partyID))
}

// Delete removes one of the caller's communication events.
func (s *CommunicationEventService) Delete(ctx context.Context, partyID, id int64) error {
	return s.events.Delete(ctx, id, persistence.OwnedCommunicationEvent(partyID))
}
