package services

import "errors"

var (
	ErrBadCreds        = errors.New("invalid email or password")
	ErrUnknownUser     = errors.New("user does not exist")
	ErrUnknownCategory = errors.New("category does not exist")
	ErrUnknownProduct  = errors.New("product does not exist")
	ErrUnavailable     = errors.New("product is not available")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidQty      = errors.New("quantity must be between 1 and 50")
	ErrInvalidPrice    = errors.New("price must be a non-negative decimal")
)
