package party

import (
	"context"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// CommunicationEventPurposeService handles purpose tags on the
// caller's communication events.
type CommunicationEventPurposeService struct {
	purposes persistence.Store[party.CommunicationEventPurpose]
	events   persistence.Store[party.CommunicationEvent]
}

// NewCommunicationEventPurposeService creates a new CommunicationEventPurposeService.
func NewCommunicationEventPurposeService(
	purposes persistence.Store[party.CommunicationEventPurpose],
	events persistence.Store[party.CommunicationEvent],
) *CommunicationEventPurposeService {
	return &CommunicationEventPurposeService{purposes: purposes, events: events}
}

// Create tags a communication event with a purpose. The target event is
// required and must belong to the caller's party; without it the purpose
// would fall outside every ownership scope and become unreachable.
func (s *CommunicationEventPurposeService) Create(ctx context.Context, partyID int64, req CreateCommunicationEventPurposeRequest) (*party.CommunicationEventPurpose, error) {
	if req.CommunicationEventID == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "communication_event_id is required")
	}
	if _, err := s.events.Get(ctx, *req.CommunicationEventID, persistence.OwnedCommunicationEvent(partyID)); err != nil {
		return nil, err
	}

	purpose := &party.CommunicationEventPurpose{
		Note:                            req.Note,
		CommunicationEventID:            req.CommunicationEventID,
		CommunicationEventPurposeTypeID: req.CommunicationEventPurposeTypeID,
	}
	if err := s.purposes.Create(ctx, purpose); err != nil {
		return nil, err
	}
	return purpose, nil
}

// Get retrieves one of the caller's purposes.
func (s *CommunicationEventPurposeService) Get(ctx context.Context, partyID, id int64) (*party.CommunicationEventPurpose, error) {
	return s.purposes.Get(ctx, id, persistence.OwnedCommunicationEventPurpose(partyID))
}

// List returns the caller's purposes ordered by ascending id.
func (s *CommunicationEventPurposeService) List(ctx context.Context, partyID int64) ([]party.CommunicationEventPurpose, error) {
	return s.purposes.List(ctx, persistence.OwnedCommunicationEventPurpose(partyID))
}

// Update applies a partial update to one of the caller's purposes.
func (s *CommunicationEventPurposeService) Update(ctx context.Context, partyID, id int64, req UpdateCommunicationEventPurposeRequest) (*party.CommunicationEventPurpose, error) {
	if req.CommunicationEventID != nil {
		if _, err := s.events.Get(ctx, *req.CommunicationEventID, persistence.OwnedCommunicationEvent(partyID)); err != nil {
			return nil, err
		}
	}
	return s.purposes.Update(ctx, id, req.Changes(), persistence.OwnedCommunicationEventPurpose(partyID))
}

// Delete removes one of the caller's purposes.
func (s *CommunicationEventPurposeService) Delete(ctx context.Context, partyID, id int64) error {
	return s.purposes.Delete(ctx, id, persistence.OwnedCommunicationEventPurpose(partyID))
}
