// Package common defines shared constants and sentinel errors used across
// the calendar layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrAlreadyPersisted = errors.New("record already has an identifier")

	// Input errors reported back to the user.
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidID       = errors.New("invalid event id")
	ErrInvalidOption   = errors.New("invalid option")
	ErrInvalidCopyMode = errors.New("invalid copy type")
)
