package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidReactionType = errors.New("invalid reaction type")
	ErrReactionNotFound    = errors.New("reaction not found")
	// ErrReactionConflict is returned when a reaction row for the same
	// (user, product) pair already exists.
	ErrReactionConflict = errors.New("reaction already exists")
	// ErrReactionStale is returned when a conditional update or delete did not
	// match because the row changed after it was read.
	ErrReactionStale = errors.New("reaction changed concurrently")

	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductData = errors.New("invalid product data")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
