package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/logger"
	"github.com/recircle/twin-ledger/internal/messaging"
	"github.com/recircle/twin-ledger/internal/store"
	"github.com/recircle/twin-ledger/internal/store/schema"
)

// Coordinator is the only component allowed to mutate the twin registry and
// the reward ledger together. It checks access control, validates inputs, and
// delegates each compound transition to a single store transaction, so every
// accepted call is applied as one indivisible unit.
//
//go:generate mockgen -source=coordinator.go -destination=../mocks/coordinator.go -package=mocks
type Coordinator interface {
	// Mint creates a new twin owned by to. Requires the minter role on caller.
	Mint(ctx context.Context, caller, to, metadataURI string) (uint64, error)
	// Retire marks a twin as recycled and credits the reward to its owner.
	// Only the owner may retire its own twin.
	Retire(ctx context.Context, caller string, tokenID uint64) error
	// RetireAndSponsor is Retire submitted by a brand sponsor covering the
	// transaction cost. The reward still accrues to the twin's owner of
	// record, never to the sponsor.
	RetireAndSponsor(ctx context.Context, caller string, tokenID uint64, sponsor string) error
	// TransferReward moves rewards from the caller's balance to another address
	TransferReward(ctx context.Context, caller, to string, amount int64) error

	// GetTwin returns a twin by token id; domain.ErrNotFound when absent
	GetTwin(ctx context.Context, tokenID uint64) (*schema.Twin, error)
	// GetHistory returns a twin's lifecycle history in insertion order
	GetHistory(ctx context.Context, tokenID uint64) ([]domain.LifecycleEvent, error)
	// TwinsOf returns all twins owned by an address, ordered by token id
	TwinsOf(ctx context.Context, owner string) ([]*schema.Twin, error)
	// CountOf returns the number of twins owned by an address
	CountOf(ctx context.Context, owner string) (int64, error)
	// BalanceOf returns the reward balance of an address
	BalanceOf(ctx context.Context, address string) (int64, error)
	// TotalSupply returns the cumulative minted reward amount
	TotalSupply(ctx context.Context) (int64, error)

	// HasRole reports whether an address holds a role
	HasRole(ctx context.Context, role domain.Role, address string) (bool, error)
	// GrantRole grants a role to an address
	GrantRole(ctx context.Context, role domain.Role, address string) error
	// RevokeRole removes a role grant
	RevokeRole(ctx context.Context, role domain.Role, address string) error

	// Close drains pending event publications
	Close()
}

type coordinator struct {
	store        store.Store
	publisher    messaging.Publisher
	rewardAmount int64
	// pool publishes lifecycle events after commit; broker latency must not
	// hold the ledger's write path
	pool pond.Pool
}

// NewCoordinator creates a lifecycle coordinator. rewardAmount is the fixed
// per-retirement reward from deployment configuration. publisher may be nil
// when event publication is disabled.
func NewCoordinator(s store.Store, publisher messaging.Publisher, rewardAmount int64) Coordinator {
	return &coordinator{
		store:        s,
		publisher:    publisher,
		rewardAmount: rewardAmount,
		pool:         pond.NewPool(4, pond.WithQueueSize(1024), pond.WithNonBlocking(true)),
	}
}

func (c *coordinator) Mint(ctx context.Context, caller, to, metadataURI string) (uint64, error) {
	if !domain.IsValidAddress(caller) || !domain.IsValidAddress(to) {
		return 0, fmt.Errorf("%w: owner must be a valid non-zero address", domain.ErrInvalidInput)
	}
	if metadataURI == "" {
		return 0, fmt.Errorf("%w: metadata URI must not be empty", domain.ErrInvalidInput)
	}

	caller = domain.NormalizeAddress(caller)
	to = domain.NormalizeAddress(to)

	isMinter, err := c.store.HasRole(ctx, domain.RoleMinter, caller)
	if err != nil {
		return 0, err
	}
	if !isMinter {
		return 0, fmt.Errorf("%w: caller lacks the minter role", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	twin, err := c.store.CreateTwin(ctx, store.CreateTwinInput{
		OwnerAddress: to,
		MetadataURI:  metadataURI,
		Timestamp:    now,
	})
	if err != nil {
		return 0, err
	}

	c.publish(&domain.TwinEvent{
		EventType: domain.TwinEventTypeMinted,
		TokenID:   twin.ID,
		Owner:     to,
		Actor:     caller,
		Timestamp: now,
	})

	return twin.ID, nil
}

func (c *coordinator) Retire(ctx context.Context, caller string, tokenID uint64) error {
	return c.retire(ctx, caller, tokenID, nil)
}

func (c *coordinator) RetireAndSponsor(ctx context.Context, caller string, tokenID uint64, sponsor string) error {
	if !domain.IsValidAddress(sponsor) {
		return fmt.Errorf("%w: sponsor must be a valid non-zero address", domain.ErrInvalidInput)
	}
	normalized := domain.NormalizeAddress(sponsor)
	return c.retire(ctx, caller, tokenID, &normalized)
}

// retire applies the full precondition chain of the retirement transition,
// then hands off to one store transaction. Check order is fixed: invalid
// input, unknown twin, already retired, not the owner, sponsor without the
// brand role. The store re-verifies the retired flag under a row lock, so a
// concurrent retirement loses cleanly with no second reward.
func (c *coordinator) retire(ctx context.Context, caller string, tokenID uint64, sponsor *string) error {
	if !domain.IsValidAddress(caller) {
		return fmt.Errorf("%w: caller must be a valid non-zero address", domain.ErrInvalidInput)
	}
	caller = domain.NormalizeAddress(caller)

	twin, err := c.store.GetTwinByID(ctx, tokenID)
	if err != nil {
		return err
	}
	if twin == nil {
		return domain.ErrNotFound
	}
	if twin.Retired {
		return domain.ErrAlreadyRetired
	}
	if !domain.SameAddress(caller, twin.OwnerAddress) {
		return fmt.Errorf("%w: only the owner may retire a twin", domain.ErrUnauthorized)
	}
	if sponsor != nil {
		isBrand, err := c.store.HasRole(ctx, domain.RoleBrand, *sponsor)
		if err != nil {
			return err
		}
		if !isBrand {
			return fmt.Errorf("%w: sponsor lacks the brand role", domain.ErrUnauthorized)
		}
	}

	now := time.Now().UTC()
	err = c.store.RetireTwin(ctx, store.RetireTwinInput{
		TwinID:         tokenID,
		ActorAddress:   caller,
		SponsorAddress: sponsor,
		RewardAmount:   c.rewardAmount,
		Timestamp:      now,
	})
	if err != nil {
		return err
	}

	c.publish(&domain.TwinEvent{
		EventType: domain.TwinEventTypeRetired,
		TokenID:   tokenID,
		Owner:     twin.OwnerAddress,
		Actor:     caller,
		Sponsor:   sponsor,
		Amount:    c.rewardAmount,
		Timestamp: now,
	})

	return nil
}

func (c *coordinator) TransferReward(ctx context.Context, caller, to string, amount int64) error {
	if !domain.IsValidAddress(caller) || !domain.IsValidAddress(to) {
		return fmt.Errorf("%w: transfer requires valid non-zero addresses", domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	caller = domain.NormalizeAddress(caller)
	to = domain.NormalizeAddress(to)

	now := time.Now().UTC()
	err := c.store.TransferReward(ctx, store.TransferRewardInput{
		FromAddress: caller,
		ToAddress:   to,
		Amount:      amount,
		Timestamp:   now,
	})
	if err != nil {
		return err
	}

	c.publish(&domain.TwinEvent{
		EventType: domain.TwinEventTypeRewardTransferred,
		Actor:     caller,
		From:      caller,
		To:        to,
		Amount:    amount,
		Timestamp: now,
	})

	return nil
}

func (c *coordinator) GetTwin(ctx context.Context, tokenID uint64) (*schema.Twin, error) {
	twin, err := c.store.GetTwinByID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if twin == nil {
		return nil, domain.ErrNotFound
	}
	return twin, nil
}

func (c *coordinator) GetHistory(ctx context.Context, tokenID uint64) ([]domain.LifecycleEvent, error) {
	twin, err := c.store.GetTwinByID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if twin == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := c.store.GetLifecycleEvents(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	events := make([]domain.LifecycleEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.LifecycleEvent{
			Timestamp:   row.Timestamp,
			Description: row.Description,
			Actor:       row.ActorAddress,
		}
	}
	return events, nil
}

func (c *coordinator) TwinsOf(ctx context.Context, owner string) ([]*schema.Twin, error) {
	if !domain.IsValidAddress(owner) {
		return nil, fmt.Errorf("%w: owner must be a valid non-zero address", domain.ErrInvalidInput)
	}
	return c.store.GetTwinsByOwner(ctx, domain.NormalizeAddress(owner))
}

func (c *coordinator) CountOf(ctx context.Context, owner string) (int64, error) {
	if !domain.IsValidAddress(owner) {
		return 0, fmt.Errorf("%w: owner must be a valid non-zero address", domain.ErrInvalidInput)
	}
	return c.store.CountTwinsByOwner(ctx, domain.NormalizeAddress(owner))
}

func (c *coordinator) BalanceOf(ctx context.Context, address string) (int64, error) {
	if !domain.IsValidAddress(address) {
		return 0, fmt.Errorf("%w: address must be a valid non-zero address", domain.ErrInvalidInput)
	}
	return c.store.GetBalance(ctx, domain.NormalizeAddress(address))
}

func (c *coordinator) TotalSupply(ctx context.Context) (int64, error) {
	return c.store.GetTotalSupply(ctx)
}

func (c *coordinator) HasRole(ctx context.Context, role domain.Role, address string) (bool, error) {
	if !domain.IsValidRole(role) {
		return false, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if !domain.IsValidAddress(address) {
		return false, fmt.Errorf("%w: address must be a valid non-zero address", domain.ErrInvalidInput)
	}
	return c.store.HasRole(ctx, role, domain.NormalizeAddress(address))
}

func (c *coordinator) GrantRole(ctx context.Context, role domain.Role, address string) error {
	if !domain.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if !domain.IsValidAddress(address) {
		return fmt.Errorf("%w: address must be a valid non-zero address", domain.ErrInvalidInput)
	}
	return c.store.GrantRole(ctx, role, domain.NormalizeAddress(address))
}

func (c *coordinator) RevokeRole(ctx context.Context, role domain.Role, address string) error {
	if !domain.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if !domain.IsValidAddress(address) {
		return fmt.Errorf("%w: address must be a valid non-zero address", domain.ErrInvalidInput)
	}
	return c.store.RevokeRole(ctx, role, domain.NormalizeAddress(address))
}

// publish hands the event to the worker pool; publication happens after the
// transaction committed and never blocks the caller
func (c *coordinator) publish(event *domain.TwinEvent) {
	if c.publisher == nil {
		return
	}
	task := c.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.publisher.Publish(ctx, event); err != nil {
			logger.Error(err,
				zap.String("event_type", string(event.EventType)),
				zap.Uint64("token_id", event.TokenID),
			)
		}
	})

	// A rejected submission (full queue or stopped pool) resolves the task
	// before Submit returns; surface the dropped event
	select {
	case <-task.Done():
		if err := task.Wait(); err != nil {
			logger.Error(fmt.Errorf("lifecycle event publication dropped: %w", err),
				zap.String("event_type", string(event.EventType)),
				zap.Uint64("token_id", event.TokenID),
			)
		}
	default:
	}
}

// Close drains pending event publications
func (c *coordinator) Close() {
	c.pool.StopAndWait()
}
