package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

// PartyRole attaches a role type to a party. The party ID always comes
// from the authenticated principal, never from client input.
type PartyRole struct {
	shared.BaseEntity
	Note       *string `gorm:"type:text" json:"note"`
	PartyID    int64   `gorm:"not null;index" json:"party_id"`
	RoleTypeID *int64  `json:"role_type_id"`
}

// TableName returns the table name for GORM
func (PartyRole) TableName() string {
	return "party_role"
}

// HistoryRecord snapshots the party role's current field values.
func (r *PartyRole) HistoryRecord(action audit.Action, at time.Time) *PartyRoleHistory {
	return &PartyRoleHistory{
		Record:      audit.NewRecord(action, at),
		PartyRoleID: r.ID,
		Note:        r.Note,
		PartyID:     r.PartyID,
		RoleTypeID:  r.RoleTypeID,
	}
}

// PartyRoleHistory is an append-only snapshot of a party role mutation.
type PartyRoleHistory struct {
	audit.Record
	PartyRoleID int64   `gorm:"not null;index" json:"party_role_id"`
	Note        *string `gorm:"type:text" json:"note"`
	PartyID     int64   `json:"party_id"`
	RoleTypeID  *int64  `json:"role_type_id"`
}

// TableName returns the table name for GORM
func (PartyRoleHistory) TableName() string {
	return "party_role_history"
}
