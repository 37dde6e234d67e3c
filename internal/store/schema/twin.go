package schema

import (
	"time"
)

// Twin represents the twins table - one row per physical product tracked by
// the ledger. The primary key doubles as the token id: sequential, unique,
// never reused, never deleted.
type Twin struct {
	// ID is the token id, assigned monotonically by the database
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerAddress is the current owner, kept consistent with the owner index
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;index:idx_twins_owner_address"`
	// MetadataURI points at the off-chain metadata document; stored opaque, never interpreted
	MetadataURI string `gorm:"column:metadata_uri;not null;type:text"`
	// Retired is the one-way lifecycle flag; once true it never flips back
	Retired bool `gorm:"column:retired;not null;default:false"`
	// CreatedAt is the timestamp of the mint
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last lifecycle transition
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	LifecycleEvents []LifecycleEvent `gorm:"foreignKey:TwinID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the Twin model
func (Twin) TableName() string {
	return "twins"
}
