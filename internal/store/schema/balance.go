package schema

import (
	"time"
)

// Balance represents the balances table - the fungible reward balance per
// address. Amounts are non-negative; the transfer path enforces this under a
// row lock and the column carries a CHECK constraint as a backstop.
type Balance struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerAddress is the address holding the rewards
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;uniqueIndex:idx_balances_owner_address"`
	// Amount is the reward balance
	Amount int64 `gorm:"column:amount;not null;default:0"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
