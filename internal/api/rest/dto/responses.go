package dto

import (
	"time"

	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/metadata"
	"github.com/recircle/twin-ledger/internal/store/schema"
)

// TwinResponse represents a twin in API responses. Metadata and History are
// populated only when the matching expansion is requested.
type TwinResponse struct {
	TokenID     uint64                   `json:"token_id"`
	Owner       string                   `json:"owner"`
	MetadataURI string                   `json:"metadata_uri"`
	Retired     bool                     `json:"retired"`
	CreatedAt   time.Time                `json:"created_at"`
	Metadata    *metadata.Document       `json:"metadata,omitempty"`
	History     []LifecycleEventResponse `json:"history,omitempty"`
}

// LifecycleEventResponse represents one entry of a twin's history
type LifecycleEventResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
}

// TwinListResponse represents a list of twins
type TwinListResponse struct {
	Twins []TwinResponse `json:"twins"`
	Total int64          `json:"total"`
}

// MintTwinResponse represents the result of a mint
type MintTwinResponse struct {
	TokenID uint64 `json:"token_id"`
}

// HistoryResponse represents a twin's full lifecycle history
type HistoryResponse struct {
	TokenID uint64                   `json:"token_id"`
	Events  []LifecycleEventResponse `json:"events"`
}

// BalanceResponse represents a reward balance
type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// SupplyResponse represents the cumulative minted reward amount
type SupplyResponse struct {
	TotalSupply int64 `json:"total_supply"`
}

// RoleResponse represents a role membership check
type RoleResponse struct {
	Role    string `json:"role"`
	Address string `json:"address"`
	HasRole bool   `json:"has_role"`
}

// NewTwinResponse maps a stored twin to its API representation
func NewTwinResponse(twin *schema.Twin) TwinResponse {
	return TwinResponse{
		TokenID:     twin.ID,
		Owner:       twin.OwnerAddress,
		MetadataURI: twin.MetadataURI,
		Retired:     twin.Retired,
		CreatedAt:   twin.CreatedAt,
	}
}

// NewLifecycleEventResponses maps lifecycle events to their API representation
func NewLifecycleEventResponses(events []domain.LifecycleEvent) []LifecycleEventResponse {
	out := make([]LifecycleEventResponse, len(events))
	for i, event := range events {
		out[i] = LifecycleEventResponse{
			Timestamp:   event.Timestamp,
			Description: event.Description,
			Actor:       event.Actor,
		}
	}
	return out
}
