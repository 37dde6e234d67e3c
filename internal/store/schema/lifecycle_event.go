package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LifecycleEvent represents the lifecycle_events table - the append-only
// history of a twin. Rows are never updated, removed, or reordered; the id
// sequence preserves insertion order and row 0 per twin is always the mint.
type LifecycleEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TwinID references the twin this event belongs to
	TwinID uint64 `gorm:"column:twin_id;not null;index:idx_lifecycle_events_twin_id"`
	// Description is the free-text event label, e.g. "Minted", "Retired"
	Description string `gorm:"column:description;not null;type:text"`
	// ActorAddress is the address that caused the event
	ActorAddress string `gorm:"column:actor_address;not null;type:text"`
	// Timestamp is when the event occurred
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// Raw carries the full transition payload as JSON for auditing
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Twin Twin `gorm:"foreignKey:TwinID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the LifecycleEvent model
func (LifecycleEvent) TableName() string {
	return "lifecycle_events"
}
