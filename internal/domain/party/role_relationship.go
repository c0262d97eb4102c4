package party

import (
	"time"

	"github.com/partyhub/backend/internal/domain/audit"
	"github.com/partyhub/backend/internal/domain/shared"
)

// RoleRelationship links two party roles. The from endpoint is always
// resolved from the caller's party at creation time.
type RoleRelationship struct {
	shared.BaseEntity
	FromPartyRoleID              int64   `gorm:"not null;index" json:"from_party_role_id"`
	ToPartyRoleID                int64   `gorm:"not null;index" json:"to_party_role_id"`
	Comment                      *string `gorm:"type:text" json:"comment"`
	RelationshipTypeID           int64   `gorm:"not null" json:"relationship_type_id"`
	PriorityTypeID               *int64  `json:"priority_type_id"`
	RoleRelationshipStatusTypeID *int64  `json:"role_relationship_status_type_id"`
}

// TableName returns the table name for GORM
func (RoleRelationship) TableName() string {
	return "role_relationship"
}

// NewRoleRelationship validates and creates a relationship between two
// party roles.
func NewRoleRelationship(fromPartyRoleID, toPartyRoleID, relationshipTypeID int64) (*RoleRelationship, *shared.DomainError) {
	if fromPartyRoleID <= 0 || toPartyRoleID <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "both party role endpoints are required")
	}
	if relationshipTypeID <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "relationship type is required")
	}
	return &RoleRelationship{
		FromPartyRoleID:    fromPartyRoleID,
		ToPartyRoleID:      toPartyRoleID,
		RelationshipTypeID: relationshipTypeID,
	}, nil
}

// HistoryRecord snapshots the relationship's current field values.
func (r *RoleRelationship) HistoryRecord(action audit.Action, at time.Time) *RoleRelationshipHistory {
	return &RoleRelationshipHistory{
		Record:                       audit.NewRecord(action, at),
		RoleRelationshipID:           r.ID,
		FromPartyRoleID:              r.FromPartyRoleID,
		ToPartyRoleID:                r.ToPartyRoleID,
		Comment:                      r.Comment,
		RelationshipTypeID:           r.RelationshipTypeID,
		PriorityTypeID:               r.PriorityTypeID,
		RoleRelationshipStatusTypeID: r.RoleRelationshipStatusTypeID,
	}
}

// RoleRelationshipHistory is an append-only snapshot of a relationship mutation.
type RoleRelationshipHistory struct {
	audit.Record
	RoleRelationshipID           int64   `gorm:"not null;index" json:"role_relationship_id"`
	FromPartyRoleID              int64   `json:"from_party_role_id"`
	ToPartyRoleID                int64   `json:"to_party_role_id"`
	Comment                      *string `gorm:"type:text" json:"comment"`
	RelationshipTypeID           int64   `json:"relationship_type_id"`
	PriorityTypeID               *int64  `json:"priority_type_id"`
	RoleRelationshipStatusTypeID *int64  `json:"role_relationship_status_type_id"`
}

// TableName returns the table name for GORM
func (RoleRelationshipHistory) TableName() string {
	return "role_relationship_history"
}
