package dto

import (
	"errors"
	"fmt"

	"github.com/recircle/twin-ledger/internal/domain"
)

// MintTwinRequest represents the request body for minting a new twin
type MintTwinRequest struct {
	Caller      string `json:"caller"`
	To          string `json:"to"`
	MetadataURI string `json:"metadata_uri"`
}

// Validate validates the request body
func (r *MintTwinRequest) Validate() error {
	if !domain.IsValidAddress(r.Caller) {
		return fmt.Errorf("caller must be a valid non-zero address: %q", r.Caller)
	}
	if !domain.IsValidAddress(r.To) {
		return fmt.Errorf("to must be a valid non-zero address: %q", r.To)
	}
	if r.MetadataURI == "" {
		return errors.New("metadata_uri is required")
	}
	return nil
}

// RetireTwinRequest represents the request body for retiring a twin. Sponsor
// is set when a brand covers the call on the owner's behalf.
type RetireTwinRequest struct {
	Caller  string  `json:"caller"`
	Sponsor *string `json:"sponsor,omitempty"`
}

// Validate validates the request body
func (r *RetireTwinRequest) Validate() error {
	if !domain.IsValidAddress(r.Caller) {
		return fmt.Errorf("caller must be a valid non-zero address: %q", r.Caller)
	}
	if r.Sponsor != nil && !domain.IsValidAddress(*r.Sponsor) {
		return fmt.Errorf("sponsor must be a valid non-zero address: %q", *r.Sponsor)
	}
	return nil
}

// TransferRewardRequest represents the request body for a reward transfer
type TransferRewardRequest struct {
	Caller string `json:"caller"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Validate validates the request body
func (r *TransferRewardRequest) Validate() error {
	if !domain.IsValidAddress(r.Caller) {
		return fmt.Errorf("caller must be a valid non-zero address: %q", r.Caller)
	}
	if !domain.IsValidAddress(r.To) {
		return fmt.Errorf("to must be a valid non-zero address: %q", r.To)
	}
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// GrantRoleRequest represents the request body for granting a role
type GrantRoleRequest struct {
	Role    string `json:"role"`
	Address string `json:"address"`
}

// Validate validates the request body
func (r *GrantRoleRequest) Validate() error {
	if !domain.IsValidRole(domain.Role(r.Role)) {
		return fmt.Errorf("unknown role: %q", r.Role)
	}
	if !domain.IsValidAddress(r.Address) {
		return fmt.Errorf("address must be a valid non-zero address: %q", r.Address)
	}
	return nil
}
