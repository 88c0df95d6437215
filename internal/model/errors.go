package model

import "errors"

// Validation errors for constructing domain values.
var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidType   = errors.New("unknown transaction type")
)
