package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

// CommunicationEventPurpose tags a communication event with a purpose type.
type CommunicationEventPurpose struct {
	shared.BaseEntity
	Note                            *string `gorm:"type:text" json:"note"`
	CommunicationEventID            *int64  `gorm:"index" json:"communication_event_id"`
	CommunicationEventPurposeTypeID *int64  `json:"communication_event_purpose_type_id"`
}

// TableName returns the table name for GORM
func (CommunicationEventPurpose) TableName() string {
	return "communication_event_purpose"
}

// HistoryRecord snapshots the purpose's current field values.
func (p *CommunicationEventPurpose) HistoryRecord(action audit.Action, at time.Time) *CommunicationEventPurposeHistory {
	return &CommunicationEventPurposeHistory{
		Record:                          audit.NewRecord(action, at),
		CommunicationEventPurposeID:     p.ID,
		Note:                            p.Note,
		CommunicationEventID:            p.CommunicationEventID,
		CommunicationEventPurposeTypeID: p.CommunicationEventPurposeTypeID,
	}
}

// CommunicationEventPurposeHistory is an append-only snapshot of a purpose mutation.
type CommunicationEventPurposeHistory struct {
	audit.Record
	CommunicationEventPurposeID     int64   `gorm:"not null;index" json:"communication_event_purpose_id"`
	Note                            *string `gorm:"type:text" json:"note"`
	CommunicationEventID            *int64  `json:"communication_event_id"`
	CommunicationEventPurposeTypeID *int64  `json:"communication_event_purpose_type_id"`
}

// TableName returns the table name for GORM
func (CommunicationEventPurposeHistory) TableName() string {
	return "communication_event_purpose_history"
}
