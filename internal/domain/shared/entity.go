package shared

import "time"

// BaseEntity provides common fields for all persisted entities.
// IDs are database-assigned bigserial values; a zero ID marks an
// entity that has not been stored yet. UpdatedAt stays nil until
// the first update writes it.
type BaseEntity struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
