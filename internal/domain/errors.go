package domain

import "errors"

var (
	// ErrNotFound is returned when a twin does not exist
	ErrNotFound = errors.New("twin not found")

	// ErrAlreadyRetired is returned when a transition targets a retired twin
	ErrAlreadyRetired = errors.New("twin already retired")

	// ErrUnauthorized is returned when the caller lacks the required role or is not the owner
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned for empty metadata URIs, malformed or zero addresses, and non-positive amounts
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientBalance is returned when a transfer exceeds the sender's reward balance
	ErrInsufficientBalance = errors.New("insufficient balance")
)
