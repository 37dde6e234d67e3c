package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the null address; it can never own a twin or hold rewards
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Role represents a capability grant checked before privileged transitions
type Role string

const (
	// RoleMinter authorizes minting new twins
	RoleMinter Role = "minter"
	// RoleBrand authorizes sponsoring a fee-covered retirement on behalf of an owner
	RoleBrand Role = "brand"
)

// IsValidRole checks if a role is one of the known capability roles
func IsValidRole(role Role) bool {
	return role == RoleMinter || role == RoleBrand
}

// TwinState represents the lifecycle state of a twin
type TwinState string

const (
	// TwinStateActive is the state of a minted, not yet retired twin
	TwinStateActive TwinState = "active"
	// TwinStateRetired is the terminal state; no transition leaves it
	TwinStateRetired TwinState = "retired"
)

// Event descriptions recorded in a twin's lifecycle history
const (
	EventDescriptionMinted  = "Minted"
	EventDescriptionRetired = "Retired"
)

// LifecycleEvent is one immutable entry in a twin's append-only history.
// Index 0 is always the mint event; ordering is insertion order.
type LifecycleEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
}

// TwinEventType is the kind of lifecycle event published to the broker
type TwinEventType string

const (
	TwinEventTypeMinted            TwinEventType = "twin.minted"
	TwinEventTypeRetired           TwinEventType = "twin.retired"
	TwinEventTypeRewardTransferred TwinEventType = "reward.transferred"
)

// TwinEvent is the normalized lifecycle event published to NATS after a
// successful compound transition
type TwinEvent struct {
	EventType TwinEventType `json:"event_type"`
	TokenID   uint64        `json:"token_id,omitempty"`
	Owner     string        `json:"owner,omitempty"`
	Actor     string        `json:"actor"`
	Sponsor   *string       `json:"sponsor,omitempty"`
	From      string        `json:"from,omitempty"`
	To        string        `json:"to,omitempty"`
	Amount    int64         `json:"amount,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// IsValidAddress checks if an address is a well-formed, non-zero hex address.
// VeChain addresses share the Ethereum 20-byte hex format.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address) && !isZeroAddress(address)
}

// NormalizeAddress converts an address to its EIP-55 checksum form so that
// lookups are case-insensitive
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// SameAddress compares two addresses ignoring checksum casing
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

func isZeroAddress(address string) bool {
	return common.HexToAddress(address) == (common.Address{})
}
