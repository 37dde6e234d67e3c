package ledger_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/ledger"
	"github.com/recircle/twin-ledger/internal/logger"
	"github.com/recircle/twin-ledger/internal/mocks"
	"github.com/recircle/twin-ledger/internal/store"
	"github.com/recircle/twin-ledger/internal/store/schema"
)

const (
	ownerAddress   = "0x1111111111111111111111111111111111111111"
	minterAddress  = "0x2222222222222222222222222222222222222222"
	sponsorAddress = "0x3333333333333333333333333333333333333333"
	otherAddress   = "0x4444444444444444444444444444444444444444"
	testRewardAmt  = int64(10)
	testURI        = "https://metadata.example.com/twin.json"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testCoordinatorMocks contains all the mocks needed for testing the coordinator
type testCoordinatorMocks struct {
	ctrl        *gomock.Controller
	store       *mocks.MockStore
	coordinator ledger.Coordinator
}

// setupTestCoordinator creates the mocks and a coordinator without a publisher
func setupTestCoordinator(t *testing.T) *testCoordinatorMocks {
	ctrl := gomock.NewController(t)

	tm := &testCoordinatorMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
	}
	tm.coordinator = ledger.NewCoordinator(tm.store, nil, testRewardAmt)

	t.Cleanup(func() {
		tm.coordinator.Close()
		ctrl.Finish()
	})

	return tm
}

func activeTwin(owner string) *schema.Twin {
	return &schema.Twin{
		ID:           1,
		OwnerAddress: domain.NormalizeAddress(owner),
		MetadataURI:  testURI,
		Retired:      false,
		CreatedAt:    time.Now().UTC(),
	}
}

// =============================================================================
// Mint
// =============================================================================

func TestMint(t *testing.T) {
	ctx := context.Background()

	t.Run("mints when the caller holds the minter role", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().
			HasRole(ctx, domain.RoleMinter, domain.NormalizeAddress(minterAddress)).
			Return(true, nil)
		tm.store.EXPECT().
			CreateTwin(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.CreateTwinInput) (*schema.Twin, error) {
				assert.Equal(t, domain.NormalizeAddress(ownerAddress), input.OwnerAddress)
				assert.Equal(t, testURI, input.MetadataURI)
				return &schema.Twin{ID: 42, OwnerAddress: input.OwnerAddress, MetadataURI: input.MetadataURI}, nil
			})

		tokenID, err := tm.coordinator.Mint(ctx, minterAddress, ownerAddress, testURI)
		require.NoError(t, err)
		assert.EqualValues(t, 42, tokenID)
	})

	t.Run("rejects callers without the minter role", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().
			HasRole(ctx, domain.RoleMinter, gomock.Any()).
			Return(false, nil)

		_, err := tm.coordinator.Mint(ctx, otherAddress, ownerAddress, testURI)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects the zero address as owner", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		_, err := tm.coordinator.Mint(ctx, minterAddress, domain.ZeroAddress, testURI)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects an empty metadata URI", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		_, err := tm.coordinator.Mint(ctx, minterAddress, ownerAddress, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// =============================================================================
// Retire
// =============================================================================

func TestRetire(t *testing.T) {
	ctx := context.Background()

	t.Run("owner retires its own twin", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		tm.store.EXPECT().
			RetireTwin(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.RetireTwinInput) error {
				assert.EqualValues(t, 1, input.TwinID)
				assert.Equal(t, domain.NormalizeAddress(ownerAddress), input.ActorAddress)
				assert.Nil(t, input.SponsorAddress)
				assert.Equal(t, testRewardAmt, input.RewardAmount)
				return nil
			})

		err := tm.coordinator.Retire(ctx, ownerAddress, 1)
		assert.NoError(t, err)
	})

	t.Run("unknown twin yields not found", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(7)).Return(nil, nil)

		err := tm.coordinator.Retire(ctx, ownerAddress, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("retired twin yields already retired before the ownership check", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		twin := activeTwin(ownerAddress)
		twin.Retired = true
		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(twin, nil)

		// Even a non-owner caller observes the retired state, not unauthorized
		err := tm.coordinator.Retire(ctx, otherAddress, 1)
		assert.ErrorIs(t, err, domain.ErrAlreadyRetired)
	})

	t.Run("non-owner may not retire", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)

		err := tm.coordinator.Retire(ctx, otherAddress, 1)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("ownership is compared ignoring address casing", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		tm.store.EXPECT().RetireTwin(ctx, gomock.Any()).Return(nil)

		// Same address, different casing than the stored checksum form
		err := tm.coordinator.Retire(ctx, "0X1111111111111111111111111111111111111111", 1)
		assert.NoError(t, err)
	})

	t.Run("invalid caller fails before any store access", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		err := tm.coordinator.Retire(ctx, "not-an-address", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("store errors pass through unchanged", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		storeErr := errors.New("connection reset")
		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(nil, storeErr)

		err := tm.coordinator.Retire(ctx, ownerAddress, 1)
		assert.ErrorIs(t, err, storeErr)
	})
}

// =============================================================================
// RetireAndSponsor
// =============================================================================

func TestRetireAndSponsor(t *testing.T) {
	ctx := context.Background()

	t.Run("brand sponsor is recorded but never rewarded", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		tm.store.EXPECT().
			HasRole(ctx, domain.RoleBrand, domain.NormalizeAddress(sponsorAddress)).
			Return(true, nil)
		tm.store.EXPECT().
			RetireTwin(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.RetireTwinInput) error {
				require.NotNil(t, input.SponsorAddress)
				assert.Equal(t, domain.NormalizeAddress(sponsorAddress), *input.SponsorAddress)
				// The reward stays with the owner; only the audit payload names the sponsor
				assert.Equal(t, domain.NormalizeAddress(ownerAddress), input.ActorAddress)
				return nil
			})

		err := tm.coordinator.RetireAndSponsor(ctx, ownerAddress, 1, sponsorAddress)
		assert.NoError(t, err)
	})

	t.Run("sponsor without the brand role is rejected", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		tm.store.EXPECT().
			HasRole(ctx, domain.RoleBrand, domain.NormalizeAddress(sponsorAddress)).
			Return(false, nil)

		err := tm.coordinator.RetireAndSponsor(ctx, ownerAddress, 1, sponsorAddress)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("ownership is checked before the sponsor role", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)

		err := tm.coordinator.RetireAndSponsor(ctx, otherAddress, 1, sponsorAddress)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("invalid sponsor address is rejected up front", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		err := tm.coordinator.RetireAndSponsor(ctx, ownerAddress, 1, domain.ZeroAddress)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// =============================================================================
// TransferReward
// =============================================================================

func TestTransferReward(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates a valid transfer to the store", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().
			TransferReward(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.TransferRewardInput) error {
				assert.Equal(t, domain.NormalizeAddress(ownerAddress), input.FromAddress)
				assert.Equal(t, domain.NormalizeAddress(otherAddress), input.ToAddress)
				assert.EqualValues(t, 5, input.Amount)
				return nil
			})

		err := tm.coordinator.TransferReward(ctx, ownerAddress, otherAddress, 5)
		assert.NoError(t, err)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		err := tm.coordinator.TransferReward(ctx, ownerAddress, otherAddress, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		err = tm.coordinator.TransferReward(ctx, ownerAddress, otherAddress, -3)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects the zero address as recipient", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		err := tm.coordinator.TransferReward(ctx, ownerAddress, domain.ZeroAddress, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("insufficient balance passes through", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().
			TransferReward(ctx, gomock.Any()).
			Return(domain.ErrInsufficientBalance)

		err := tm.coordinator.TransferReward(ctx, ownerAddress, otherAddress, 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})
}

// =============================================================================
// Reads
// =============================================================================

func TestReads(t *testing.T) {
	ctx := context.Background()

	t.Run("GetTwin maps a missing twin to not found", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(9)).Return(nil, nil)

		_, err := tm.coordinator.GetTwin(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("GetHistory requires the twin to exist", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		tm.store.EXPECT().GetTwinByID(ctx, uint64(9)).Return(nil, nil)

		_, err := tm.coordinator.GetHistory(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("GetHistory maps stored events in order", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		now := time.Now().UTC()
		tm.store.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		tm.store.EXPECT().GetLifecycleEvents(ctx, uint64(1)).Return([]schema.LifecycleEvent{
			{Description: domain.EventDescriptionMinted, ActorAddress: ownerAddress, Timestamp: now},
			{Description: domain.EventDescriptionRetired, ActorAddress: ownerAddress, Timestamp: now.Add(time.Hour)},
		}, nil)

		events, err := tm.coordinator.GetHistory(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, domain.EventDescriptionMinted, events[0].Description)
		assert.Equal(t, domain.EventDescriptionRetired, events[1].Description)
	})

	t.Run("BalanceOf validates the address", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		_, err := tm.coordinator.BalanceOf(ctx, "bogus")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("role operations validate the role name", func(t *testing.T) {
		tm := setupTestCoordinator(t)

		_, err := tm.coordinator.HasRole(ctx, domain.Role("auditor"), ownerAddress)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		err = tm.coordinator.GrantRole(ctx, domain.Role("auditor"), ownerAddress)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		err = tm.coordinator.RevokeRole(ctx, domain.Role("auditor"), ownerAddress)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// =============================================================================
// Event publication
// =============================================================================

func TestEventPublication(t *testing.T) {
	ctx := context.Background()

	t.Run("retirement publishes a twin.retired event after the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockPublisher := mocks.NewMockPublisher(ctrl)
		coordinator := ledger.NewCoordinator(mockStore, mockPublisher, testRewardAmt)

		mockStore.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		mockStore.EXPECT().RetireTwin(ctx, gomock.Any()).Return(nil)

		var wg sync.WaitGroup
		wg.Add(1)
		mockPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.TwinEvent) error {
				defer wg.Done()
				assert.Equal(t, domain.TwinEventTypeRetired, event.EventType)
				assert.EqualValues(t, 1, event.TokenID)
				assert.Equal(t, testRewardAmt, event.Amount)
				return nil
			})

		err := coordinator.Retire(ctx, ownerAddress, 1)
		require.NoError(t, err)

		wg.Wait()
		coordinator.Close()
	})

	t.Run("a dropped publication never fails the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockPublisher := mocks.NewMockPublisher(ctrl)
		coordinator := ledger.NewCoordinator(mockStore, mockPublisher, testRewardAmt)

		// Stopping the pool rejects every later submission; the event is
		// logged and dropped while the committed retirement stands
		coordinator.Close()

		mockStore.EXPECT().GetTwinByID(ctx, uint64(1)).Return(activeTwin(ownerAddress), nil)
		mockStore.EXPECT().RetireTwin(ctx, gomock.Any()).Return(nil)

		err := coordinator.Retire(ctx, ownerAddress, 1)
		require.NoError(t, err)
	})

	t.Run("nothing is published when a precondition fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockPublisher := mocks.NewMockPublisher(ctrl)
		coordinator := ledger.NewCoordinator(mockStore, mockPublisher, testRewardAmt)

		mockStore.EXPECT().GetTwinByID(ctx, uint64(1)).Return(nil, nil)

		err := coordinator.Retire(ctx, ownerAddress, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		coordinator.Close()
	})
}
