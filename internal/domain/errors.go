package domain

import "errors"

// Booking failures are reported through these sentinels; none of them
// leaves the registry in a broken state.
var (
	ErrFlightNotFound       = errors.New("flight not found")
	ErrPassengerNotFound    = errors.New("passenger not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrSeatUnavailable      = errors.New("seat is not available")
	ErrSeatConflict         = errors.New("seat taken by a concurrent booking")
	ErrSeatLocked           = errors.New("seat is held by another booking in progress")
	ErrPaymentFailed        = errors.New("payment processing failed")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)
