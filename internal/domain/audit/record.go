package audit

import "time"

// Action identifies the kind of mutation a history row records.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Record carries the bookkeeping columns shared by every history table.
// History rows are append-only; nothing in the system updates or
// deletes them.
type Record struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action   Action    `gorm:"type:varchar(10);not null" json:"action"`
	ActionAt time.Time `gorm:"not null;index" json:"action_at"`
}

// NewRecord builds the bookkeeping part of a history row.
func NewRecord(action Action, at time.Time) Record {
	return Record{Action: action, ActionAt: at}
}
