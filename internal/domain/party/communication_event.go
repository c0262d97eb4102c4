package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

// CommunicationEvent records a contact made over a role relationship.
type CommunicationEvent struct {
	shared.BaseEntity
	Note                           *string `gorm:"type:text" json:"note"`
	RoleRelationshipID             *int64  `gorm:"index" json:"role_relationship_id"`
	ContactMechanismTypeID         *int64  `json:"contact_mechanism_type_id"`
	CommunicationEventStatusTypeID *int64  `json:"communication_event_status_type_id"`
}

// TableName returns the table name for GORM
func (CommunicationEvent) TableName() string {
	return "communication_event"
}

// HistoryRecord snapshots the event's current field values.
func (e *CommunicationEvent) HistoryRecord(action audit.Action, at time.Time) *CommunicationEventHistory {
	return &CommunicationEventHistory{
		Record:                         audit.NewRecord(action, at),
		CommunicationEventID:           e.ID,
		Note:                           e.Note,
		RoleRelationshipID:             e.RoleRelationshipID,
		ContactMechanismTypeID:         e.ContactMechanismTypeID,
		CommunicationEventStatusTypeID: e.CommunicationEventStatusTypeID,
	}
}

// CommunicationEventHistory is an append-only snapshot of an event mutation.
type CommunicationEventHistory struct {
	audit.Record
	CommunicationEventID           int64   `gorm:"not null;index" json:"communication_event_id"`
	Note                           *string `gorm:"type:text" json:"note"`
	RoleRelationshipID             *int64  `json:"role_relationship_id"`
	ContactMechanismTypeID         *int64  `json:"contact_mechanism_type_id"`
	CommunicationEventStatusTypeID *int64  `json:"communication_event_status_type_id"`
}

// TableName returns the table name for GORM
func (CommunicationEventHistory) TableName() string {
	return "communication_event_history"
}
