package persistence

import "gorm.io/gorm"

// Ownership scopes narrow owned entities to a caller's party. Denial
// surfaces as a missing record, never as a permission error, so a
// caller cannot probe for the existence of other parties' data.

// OwnedPartyRole scopes party roles to those owned by the party.
func OwnedPartyRole(partyID int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("party_id = ?", partyID)
	}
}

// OwnedRoleRelationship scopes relationships to those with an endpoint
// owned by the party.
func OwnedRoleRelationship(partyID int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM party_role pr WHERE pr.party_id = ? AND pr.id IN (role_relationship.from_party_role_id, role_relationship.to_party_role_id))",
			partyID,
		)
	}
}

// OwnedCommunicationEvent scopes events to those whose relationship has
// an endpoint owned by the party.
func OwnedCommunicationEvent(partyID int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM role_relationship rr JOIN party_role pr ON pr.id IN (rr.from_party_role_id, rr.to_party_role_id) WHERE pr.party_id = ? AND rr.id = communication_event.role_relationship_id)",
			partyID,
		)
	}
}

// OwnedCommunicationEventPurpose scopes purposes to those whose event's
// relationship has an endpoint owned by the party.
func OwnedCommunicationEventPurpose(partyID int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM communication_event ce JOIN role_relationship rr ON rr.id = ce.role_relationship_id JOIN party_role pr ON pr.id IN (rr.from_party_role_id, rr.to_party_role_id) WHERE pr.party_id = ? AND ce.id = communication_event_purpose.communication_event_id)",
			partyID,
		)
	}
}
