package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid lowercase", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", true},
		{"valid checksummed", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", true},
		{"zero address", ZeroAddress, false},
		{"empty", "", false},
		{"missing prefix", "f39fd6e51aad88f6f4ce6ab8827279cfffb92266", true},
		{"too short", "0x1234", false},
		{"not hex", "0xzz9fd6e51aad88f6f4ce6ab8827279cfffb92266", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.address))
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	// Normalization is idempotent and case-insensitive
	lower := "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	upper := "0xF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266"

	normalized := NormalizeAddress(lower)
	assert.Equal(t, normalized, NormalizeAddress(upper))
	assert.Equal(t, normalized, NormalizeAddress(normalized))

	// Non-hex input is passed through untouched
	assert.Equal(t, "not-an-address", NormalizeAddress("not-an-address"))
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(
		"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		"0xF39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	))
	assert.False(t, SameAddress(
		"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
	))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleMinter))
	assert.True(t, IsValidRole(RoleBrand))
	assert.False(t, IsValidRole(Role("admin")))
	assert.False(t, IsValidRole(Role("")))
}
