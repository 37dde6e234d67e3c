package store

import (
	"context"
	"time"

	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/store/schema"
)

// CreateTwinInput holds the fields for minting a new twin
type CreateTwinInput struct {
	OwnerAddress string
	MetadataURI  string
	Timestamp    time.Time
}

// AppendEventInput holds the fields for appending a lifecycle event
type AppendEventInput struct {
	TwinID       uint64
	Description  string
	ActorAddress string
	Timestamp    time.Time
}

// RetireTwinInput holds the fields for the atomic retirement transition
type RetireTwinInput struct {
	TwinID       uint64
	ActorAddress string
	// SponsorAddress is set when a brand sponsor submitted the call; recorded
	// in the event audit payload only, never credited
	SponsorAddress *string
	// RewardAmount is credited to the twin's owner of record
	RewardAmount int64
	Timestamp    time.Time
}

// TransferRewardInput holds the fields for a reward transfer
type TransferRewardInput struct {
	FromAddress string
	ToAddress   string
	Amount      int64
	Timestamp   time.Time
}

// Store defines the interface for database operations. All compound methods
// run inside a single transaction; either every sub-step is applied or none
// is observable.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type Store interface {
	// CreateTwin inserts a new twin and seeds its history with the mint event.
	// The returned twin carries the database-assigned token id.
	CreateTwin(ctx context.Context, input CreateTwinInput) (*schema.Twin, error)
	// GetTwinByID retrieves a twin by token id; returns nil when absent
	GetTwinByID(ctx context.Context, id uint64) (*schema.Twin, error)
	// GetTwinsByOwner retrieves all twins owned by an address, ordered by token id
	GetTwinsByOwner(ctx context.Context, owner string) ([]*schema.Twin, error)
	// CountTwinsByOwner counts the twins owned by an address
	CountTwinsByOwner(ctx context.Context, owner string) (int64, error)
	// CountRetiredTwins counts twins in the terminal retired state
	CountRetiredTwins(ctx context.Context) (int64, error)
	// GetLifecycleEvents retrieves a twin's history in insertion order
	GetLifecycleEvents(ctx context.Context, twinID uint64) ([]schema.LifecycleEvent, error)
	// AppendLifecycleEvent appends one event to a twin's history
	AppendLifecycleEvent(ctx context.Context, input AppendEventInput) error
	// RetireTwin atomically flips the retired flag, appends the retirement
	// event, and credits the reward to the twin's owner of record. Returns
	// domain.ErrNotFound or domain.ErrAlreadyRetired without any state change
	// when the twin is absent or already retired; the retired check happens
	// under a row lock, so the reward can never be issued twice.
	RetireTwin(ctx context.Context, input RetireTwinInput) error
	// TransferReward atomically moves rewards between addresses. Returns
	// domain.ErrInsufficientBalance without any state change when the sender
	// holds less than the transfer amount.
	TransferReward(ctx context.Context, input TransferRewardInput) error
	// GetBalance returns the reward balance of an address (0 when unknown)
	GetBalance(ctx context.Context, address string) (int64, error)
	// GetTotalSupply returns the cumulative minted reward amount
	GetTotalSupply(ctx context.Context) (int64, error)
	// GrantRole grants a role to an address; granting twice is a no-op
	GrantRole(ctx context.Context, role domain.Role, address string) error
	// RevokeRole removes a role grant; revoking an absent grant is a no-op
	RevokeRole(ctx context.Context, role domain.Role, address string) error
	// HasRole reports whether an address holds a role
	HasRole(ctx context.Context, role domain.Role, address string) (bool, error)
}
