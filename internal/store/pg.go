package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateTwin inserts a new twin and its mint event in one transaction
func (s *pgStore) CreateTwin(ctx context.Context, input CreateTwinInput) (*schema.Twin, error) {
	twin := schema.Twin{
		OwnerAddress: input.OwnerAddress,
		MetadataURI:  input.MetadataURI,
		Retired:      false,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&twin).Error; err != nil {
			return fmt.Errorf("failed to create twin: %w", err)
		}

		raw, err := json.Marshal(map[string]interface{}{
			"owner":        input.OwnerAddress,
			"metadata_uri": input.MetadataURI,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal mint event payload: %w", err)
		}

		event := schema.LifecycleEvent{
			TwinID:       twin.ID,
			Description:  domain.EventDescriptionMinted,
			ActorAddress: input.OwnerAddress,
			Timestamp:    input.Timestamp,
			Raw:          raw,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create mint event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &twin, nil
}

// GetTwinByID retrieves a twin by token id
func (s *pgStore) GetTwinByID(ctx context.Context, id uint64) (*schema.Twin, error) {
	var twin schema.Twin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&twin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get twin: %w", err)
	}
	return &twin, nil
}

// GetTwinsByOwner retrieves all twins owned by an address, ordered by token id
func (s *pgStore) GetTwinsByOwner(ctx context.Context, owner string) ([]*schema.Twin, error) {
	var twins []*schema.Twin
	err := s.db.WithContext(ctx).
		Where("owner_address = ?", owner).
		Order("id ASC").
		Find(&twins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get twins by owner: %w", err)
	}
	return twins, nil
}

// CountTwinsByOwner counts the twins owned by an address
func (s *pgStore) CountTwinsByOwner(ctx context.Context, owner string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Twin{}).
		Where("owner_address = ?", owner).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count twins by owner: %w", err)
	}
	return count, nil
}

// CountRetiredTwins counts twins in the terminal retired state
func (s *pgStore) CountRetiredTwins(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Twin{}).
		Where("retired = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count retired twins: %w", err)
	}
	return count, nil
}

// GetLifecycleEvents retrieves a twin's history in insertion order
func (s *pgStore) GetLifecycleEvents(ctx context.Context, twinID uint64) ([]schema.LifecycleEvent, error) {
	var events []schema.LifecycleEvent
	err := s.db.WithContext(ctx).
		Where("twin_id = ?", twinID).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lifecycle events: %w", err)
	}
	return events, nil
}

// AppendLifecycleEvent appends one event to a twin's history
func (s *pgStore) AppendLifecycleEvent(ctx context.Context, input AppendEventInput) error {
	event := schema.LifecycleEvent{
		TwinID:       input.TwinID,
		Description:  input.Description,
		ActorAddress: input.ActorAddress,
		Timestamp:    input.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to append lifecycle event: %w", err)
	}
	return nil
}

// RetireTwin applies the retirement transition as one transaction:
// flag flip, retirement event, reward credit, supply bump.
func (s *pgStore) RetireTwin(ctx context.Context, input RetireTwinInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the twin row; the retired check below must not race with a
		// concurrent retirement of the same twin
		var twin schema.Twin
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.TwinID).
			First(&twin).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock twin: %w", err)
		}

		if twin.Retired {
			return domain.ErrAlreadyRetired
		}

		// 2. Flip the one-way flag
		if err := tx.Model(&schema.Twin{}).
			Where("id = ?", twin.ID).
			Updates(map[string]interface{}{
				"retired":    true,
				"updated_at": input.Timestamp,
			}).Error; err != nil {
			return fmt.Errorf("failed to set retired: %w", err)
		}

		// 3. Append the retirement event
		raw, err := json.Marshal(map[string]interface{}{
			"owner":   twin.OwnerAddress,
			"actor":   input.ActorAddress,
			"sponsor": input.SponsorAddress,
			"reward":  input.RewardAmount,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal retirement event payload: %w", err)
		}

		event := schema.LifecycleEvent{
			TwinID:       twin.ID,
			Description:  domain.EventDescriptionRetired,
			ActorAddress: input.ActorAddress,
			Timestamp:    input.Timestamp,
			Raw:          raw,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create retirement event: %w", err)
		}

		// 4. Credit the reward to the owner of record at retirement time
		if err := creditReward(tx, twin.OwnerAddress, input.RewardAmount, input.Timestamp); err != nil {
			return err
		}

		// 5. Bump total supply in step with the credited balance
		supply := schema.RewardSupply{ID: 1, TotalSupply: input.RewardAmount, UpdatedAt: input.Timestamp}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_supply": gorm.Expr("reward_supply.total_supply + ?", input.RewardAmount),
				"updated_at":   input.Timestamp,
			}),
		}).Create(&supply).Error; err != nil {
			return fmt.Errorf("failed to update reward supply: %w", err)
		}

		return nil
	})
}

// creditReward increases an address's balance, creating the row on first credit
func creditReward(tx *gorm.DB, address string, amount int64, now time.Time) error {
	balance := schema.Balance{
		OwnerAddress: address,
		Amount:       amount,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("balances.amount + ?", amount),
			"updated_at": now,
		}),
	}).Create(&balance).Error; err != nil {
		return fmt.Errorf("failed to credit reward: %w", err)
	}
	return nil
}

// TransferReward moves rewards between addresses in one transaction
func (s *pgStore) TransferReward(ctx context.Context, input TransferRewardInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the sender row; the balance check must hold until commit
		var from schema.Balance
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_address = ?", input.FromAddress).
			First(&from).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInsufficientBalance
			}
			return fmt.Errorf("failed to lock sender balance: %w", err)
		}

		if from.Amount < input.Amount {
			return domain.ErrInsufficientBalance
		}

		// Self-transfer is a no-op once the balance check passed
		if from.OwnerAddress == input.ToAddress {
			return nil
		}

		if err := tx.Model(&schema.Balance{}).
			Where("owner_address = ?", input.FromAddress).
			Updates(map[string]interface{}{
				"amount":     gorm.Expr("amount - ?", input.Amount),
				"updated_at": input.Timestamp,
			}).Error; err != nil {
			return fmt.Errorf("failed to debit sender: %w", err)
		}

		if err := creditReward(tx, input.ToAddress, input.Amount, input.Timestamp); err != nil {
			return err
		}

		return nil
	})
}

// GetBalance returns the reward balance of an address
func (s *pgStore) GetBalance(ctx context.Context, address string) (int64, error) {
	var balance schema.Balance
	err := s.db.WithContext(ctx).Where("owner_address = ?", address).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance.Amount, nil
}

// GetTotalSupply returns the cumulative minted reward amount
func (s *pgStore) GetTotalSupply(ctx context.Context) (int64, error) {
	var supply schema.RewardSupply
	err := s.db.WithContext(ctx).Where("id = ?", 1).First(&supply).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get reward supply: %w", err)
	}
	return supply.TotalSupply, nil
}

// GrantRole grants a role to an address; granting twice is a no-op
func (s *pgStore) GrantRole(ctx context.Context, role domain.Role, address string) error {
	grant := schema.RoleGrant{
		Role:    role,
		Address: address,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role"}, {Name: "address"}},
		DoNothing: true,
	}).Create(&grant).Error
	if err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

// RevokeRole removes a role grant; revoking an absent grant is a no-op
func (s *pgStore) RevokeRole(ctx context.Context, role domain.Role, address string) error {
	err := s.db.WithContext(ctx).
		Where("role = ? AND address = ?", role, address).
		Delete(&schema.RoleGrant{}).Error
	if err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}
	return nil
}

// HasRole reports whether an address holds a role
func (s *pgStore) HasRole(ctx context.Context, role domain.Role, address string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.RoleGrant{}).
		Where("role = ? AND address = ?", role, address).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return count > 0, nil
}
