package schema

import (
	"time"
)

// RewardSupply represents the reward_supply table - a single row tracking the
// total amount of rewards ever minted. Kept in step with balances inside the
// same transaction, so sum(balances.amount) == total_supply at all times.
type RewardSupply struct {
	// ID is always 1; the table holds exactly one row
	ID uint64 `gorm:"column:id;primaryKey"`
	// TotalSupply is the cumulative minted reward amount
	TotalSupply int64 `gorm:"column:total_supply;not null;default:0"`
	// UpdatedAt is the timestamp of the last supply change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RewardSupply model
func (RewardSupply) TableName() string {
	return "reward_supply"
}
