package schema

import (
	"time"

	"github.com/recircle/twin-ledger/internal/domain"
)

// RoleGrant represents the role_grants table - the capability map consulted
// before every privileged transition.
type RoleGrant struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Role is the granted capability (minter, brand)
	Role domain.Role `gorm:"column:role;not null;type:text;uniqueIndex:idx_role_grants_role_address,priority:1"`
	// Address is the grantee
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_role_grants_role_address,priority:2"`
	// CreatedAt is the timestamp when the grant was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RoleGrant model
func (RoleGrant) TableName() string {
	return "role_grants"
}
