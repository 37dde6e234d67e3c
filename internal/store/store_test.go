package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recircle/twin-ledger/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func testAddress(n int) string {
	return domain.NormalizeAddress(fmt.Sprintf("0x%040x", n))
}

func buildTestTwin(owner string) CreateTwinInput {
	return CreateTwinInput{
		OwnerAddress: owner,
		MetadataURI:  "https://metadata.example.com/twin.json",
		Timestamp:    time.Now().UTC(),
	}
}

func mustCreateTwin(t *testing.T, store Store, owner string) uint64 {
	twin, err := store.CreateTwin(context.Background(), buildTestTwin(owner))
	require.NoError(t, err)
	require.NotNil(t, twin)
	return twin.ID
}

// =============================================================================
// Test: CreateTwin
// =============================================================================

func testCreateTwin(t *testing.T, store Store) {
	ctx := context.Background()
	owner := testAddress(1)

	t.Run("successful mint creates twin and seeds history", func(t *testing.T) {
		twin, err := store.CreateTwin(ctx, buildTestTwin(owner))
		require.NoError(t, err)
		require.NotNil(t, twin)
		assert.NotZero(t, twin.ID)
		assert.Equal(t, owner, twin.OwnerAddress)
		assert.False(t, twin.Retired)

		events, err := store.GetLifecycleEvents(ctx, twin.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, domain.EventDescriptionMinted, events[0].Description)
		assert.Equal(t, owner, events[0].ActorAddress)
	})

	t.Run("token ids are assigned monotonically", func(t *testing.T) {
		first := mustCreateTwin(t, store, owner)
		second := mustCreateTwin(t, store, owner)
		assert.Greater(t, second, first)
	})
}

// =============================================================================
// Test: GetTwinByID
// =============================================================================

func testGetTwinByID(t *testing.T, store Store) {
	ctx := context.Background()
	owner := testAddress(2)

	t.Run("returns the twin when it exists", func(t *testing.T) {
		id := mustCreateTwin(t, store, owner)

		twin, err := store.GetTwinByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, twin)
		assert.Equal(t, id, twin.ID)
		assert.Equal(t, owner, twin.OwnerAddress)
	})

	t.Run("returns nil for an unknown id", func(t *testing.T) {
		twin, err := store.GetTwinByID(ctx, 99999999)
		require.NoError(t, err)
		assert.Nil(t, twin)
	})
}

// =============================================================================
// Test: GetTwinsByOwner
// =============================================================================

func testGetTwinsByOwner(t *testing.T, store Store) {
	ctx := context.Background()
	owner := testAddress(3)
	other := testAddress(4)

	first := mustCreateTwin(t, store, owner)
	second := mustCreateTwin(t, store, owner)
	mustCreateTwin(t, store, other)

	t.Run("returns only the owner's twins ordered by token id", func(t *testing.T) {
		twins, err := store.GetTwinsByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, twins, 2)
		assert.Equal(t, first, twins[0].ID)
		assert.Equal(t, second, twins[1].ID)
	})

	t.Run("count matches the returned set", func(t *testing.T) {
		count, err := store.CountTwinsByOwner(ctx, owner)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("unknown owner has no twins", func(t *testing.T) {
		twins, err := store.GetTwinsByOwner(ctx, testAddress(5))
		require.NoError(t, err)
		assert.Empty(t, twins)

		count, err := store.CountTwinsByOwner(ctx, testAddress(5))
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

// =============================================================================
// Test: RetireTwin
// =============================================================================

func testRetireTwin(t *testing.T, store Store) {
	ctx := context.Background()
	owner := testAddress(6)
	const reward = int64(10)

	t.Run("retirement flips the flag, appends the event, and credits the owner", func(t *testing.T) {
		id := mustCreateTwin(t, store, owner)
		supplyBefore, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)

		err = store.RetireTwin(ctx, RetireTwinInput{
			TwinID:       id,
			ActorAddress: owner,
			RewardAmount: reward,
			Timestamp:    time.Now().UTC(),
		})
		require.NoError(t, err)

		twin, err := store.GetTwinByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, twin)
		assert.True(t, twin.Retired)

		events, err := store.GetLifecycleEvents(ctx, id)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, domain.EventDescriptionMinted, events[0].Description)
		assert.Equal(t, domain.EventDescriptionRetired, events[1].Description)

		balance, err := store.GetBalance(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, reward, balance)

		supplyAfter, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, supplyBefore+reward, supplyAfter)
	})

	t.Run("second retirement fails and issues no second reward", func(t *testing.T) {
		localOwner := testAddress(7)
		id := mustCreateTwin(t, store, localOwner)

		input := RetireTwinInput{
			TwinID:       id,
			ActorAddress: localOwner,
			RewardAmount: reward,
			Timestamp:    time.Now().UTC(),
		}
		require.NoError(t, store.RetireTwin(ctx, input))

		err := store.RetireTwin(ctx, input)
		assert.ErrorIs(t, err, domain.ErrAlreadyRetired)

		balance, err := store.GetBalance(ctx, localOwner)
		require.NoError(t, err)
		assert.Equal(t, reward, balance)

		events, err := store.GetLifecycleEvents(ctx, id)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("unknown twin yields not found and no state change", func(t *testing.T) {
		supplyBefore, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)

		err = store.RetireTwin(ctx, RetireTwinInput{
			TwinID:       99999999,
			ActorAddress: owner,
			RewardAmount: reward,
			Timestamp:    time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		supplyAfter, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, supplyBefore, supplyAfter)
	})

	t.Run("sponsored retirement records the sponsor in the event payload", func(t *testing.T) {
		localOwner := testAddress(8)
		sponsor := testAddress(9)
		id := mustCreateTwin(t, store, localOwner)

		err := store.RetireTwin(ctx, RetireTwinInput{
			TwinID:         id,
			ActorAddress:   localOwner,
			SponsorAddress: &sponsor,
			RewardAmount:   reward,
			Timestamp:      time.Now().UTC(),
		})
		require.NoError(t, err)

		events, err := store.GetLifecycleEvents(ctx, id)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Contains(t, string(events[1].Raw), sponsor)

		// The reward goes to the owner of record, never to the sponsor
		balance, err := store.GetBalance(ctx, sponsor)
		require.NoError(t, err)
		assert.Zero(t, balance)
	})

	t.Run("counts retired twins", func(t *testing.T) {
		before, err := store.CountRetiredTwins(ctx)
		require.NoError(t, err)

		localOwner := testAddress(10)
		id := mustCreateTwin(t, store, localOwner)
		require.NoError(t, store.RetireTwin(ctx, RetireTwinInput{
			TwinID:       id,
			ActorAddress: localOwner,
			RewardAmount: reward,
			Timestamp:    time.Now().UTC(),
		}))

		after, err := store.CountRetiredTwins(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)
	})
}

// =============================================================================
// Test: TransferReward
// =============================================================================

func testTransferReward(t *testing.T, store Store) {
	ctx := context.Background()
	const reward = int64(10)

	// fundAddress retires a fresh twin so the owner holds one reward
	fundAddress := func(t *testing.T, owner string) {
		id := mustCreateTwin(t, store, owner)
		require.NoError(t, store.RetireTwin(ctx, RetireTwinInput{
			TwinID:       id,
			ActorAddress: owner,
			RewardAmount: reward,
			Timestamp:    time.Now().UTC(),
		}))
	}

	t.Run("moves rewards between addresses", func(t *testing.T) {
		from := testAddress(11)
		to := testAddress(12)
		fundAddress(t, from)

		err := store.TransferReward(ctx, TransferRewardInput{
			FromAddress: from,
			ToAddress:   to,
			Amount:      4,
			Timestamp:   time.Now().UTC(),
		})
		require.NoError(t, err)

		fromBalance, err := store.GetBalance(ctx, from)
		require.NoError(t, err)
		assert.Equal(t, reward-4, fromBalance)

		toBalance, err := store.GetBalance(ctx, to)
		require.NoError(t, err)
		assert.EqualValues(t, 4, toBalance)
	})

	t.Run("rejects transfers exceeding the balance", func(t *testing.T) {
		from := testAddress(13)
		to := testAddress(14)
		fundAddress(t, from)

		err := store.TransferReward(ctx, TransferRewardInput{
			FromAddress: from,
			ToAddress:   to,
			Amount:      reward + 1,
			Timestamp:   time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		fromBalance, err := store.GetBalance(ctx, from)
		require.NoError(t, err)
		assert.Equal(t, reward, fromBalance)

		toBalance, err := store.GetBalance(ctx, to)
		require.NoError(t, err)
		assert.Zero(t, toBalance)
	})

	t.Run("rejects transfers from an unknown sender", func(t *testing.T) {
		err := store.TransferReward(ctx, TransferRewardInput{
			FromAddress: testAddress(15),
			ToAddress:   testAddress(16),
			Amount:      1,
			Timestamp:   time.Now().UTC(),
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("self-transfer leaves the balance unchanged", func(t *testing.T) {
		from := testAddress(17)
		fundAddress(t, from)

		err := store.TransferReward(ctx, TransferRewardInput{
			FromAddress: from,
			ToAddress:   from,
			Amount:      reward,
			Timestamp:   time.Now().UTC(),
		})
		require.NoError(t, err)

		balance, err := store.GetBalance(ctx, from)
		require.NoError(t, err)
		assert.Equal(t, reward, balance)
	})
}

// =============================================================================
// Test: LifecycleEvents
// =============================================================================

func testLifecycleEvents(t *testing.T, store Store) {
	ctx := context.Background()
	owner := testAddress(18)
	id := mustCreateTwin(t, store, owner)

	descriptions := []string{"Inspected", "Refurbished", "Listed"}
	for _, description := range descriptions {
		err := store.AppendLifecycleEvent(ctx, AppendEventInput{
			TwinID:       id,
			Description:  description,
			ActorAddress: owner,
			Timestamp:    time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	t.Run("history preserves insertion order with the mint first", func(t *testing.T) {
		events, err := store.GetLifecycleEvents(ctx, id)
		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, domain.EventDescriptionMinted, events[0].Description)
		for i, description := range descriptions {
			assert.Equal(t, description, events[i+1].Description)
		}
	})

	t.Run("unknown twin has empty history", func(t *testing.T) {
		events, err := store.GetLifecycleEvents(ctx, 99999999)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

// =============================================================================
// Test: Roles
// =============================================================================

func testRoles(t *testing.T, store Store) {
	ctx := context.Background()
	address := testAddress(19)

	t.Run("grant and check", func(t *testing.T) {
		hasRole, err := store.HasRole(ctx, domain.RoleMinter, address)
		require.NoError(t, err)
		assert.False(t, hasRole)

		require.NoError(t, store.GrantRole(ctx, domain.RoleMinter, address))

		hasRole, err = store.HasRole(ctx, domain.RoleMinter, address)
		require.NoError(t, err)
		assert.True(t, hasRole)

		// Roles are independent of each other
		hasRole, err = store.HasRole(ctx, domain.RoleBrand, address)
		require.NoError(t, err)
		assert.False(t, hasRole)
	})

	t.Run("granting twice is a no-op", func(t *testing.T) {
		require.NoError(t, store.GrantRole(ctx, domain.RoleBrand, address))
		require.NoError(t, store.GrantRole(ctx, domain.RoleBrand, address))

		hasRole, err := store.HasRole(ctx, domain.RoleBrand, address)
		require.NoError(t, err)
		assert.True(t, hasRole)
	})

	t.Run("revoke removes the grant", func(t *testing.T) {
		require.NoError(t, store.GrantRole(ctx, domain.RoleMinter, address))
		require.NoError(t, store.RevokeRole(ctx, domain.RoleMinter, address))

		hasRole, err := store.HasRole(ctx, domain.RoleMinter, address)
		require.NoError(t, err)
		assert.False(t, hasRole)

		// Revoking an absent grant is a no-op
		require.NoError(t, store.RevokeRole(ctx, domain.RoleMinter, address))
	})
}

// =============================================================================
// Test: Supply accounting
// =============================================================================

func testSupplyAccounting(t *testing.T, store Store) {
	ctx := context.Background()
	const reward = int64(10)

	supplyBefore, err := store.GetTotalSupply(ctx)
	require.NoError(t, err)

	owners := []string{testAddress(20), testAddress(21), testAddress(22)}
	for _, owner := range owners {
		id := mustCreateTwin(t, store, owner)
		require.NoError(t, store.RetireTwin(ctx, RetireTwinInput{
			TwinID:       id,
			ActorAddress: owner,
			RewardAmount: reward,
			Timestamp:    time.Now().UTC(),
		}))
	}

	t.Run("supply grows by exactly one reward per retirement", func(t *testing.T) {
		supplyAfter, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, supplyBefore+reward*int64(len(owners)), supplyAfter)
	})

	t.Run("transfers conserve the supply", func(t *testing.T) {
		require.NoError(t, store.TransferReward(ctx, TransferRewardInput{
			FromAddress: owners[0],
			ToAddress:   owners[1],
			Amount:      reward,
			Timestamp:   time.Now().UTC(),
		}))

		supplyAfter, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, supplyBefore+reward*int64(len(owners)), supplyAfter)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateTwin", testCreateTwin},
		{"GetTwinByID", testGetTwinByID},
		{"GetTwinsByOwner", testGetTwinsByOwner},
		{"RetireTwin", testRetireTwin},
		{"TransferReward", testTransferReward},
		{"LifecycleEvents", testLifecycleEvents},
		{"Roles", testRoles},
		{"SupplyAccounting", testSupplyAccounting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
