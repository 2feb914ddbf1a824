package model

import "errors"

var (
	// Session related errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Record related errors
	ErrCarNotFound = errors.New("car not found")
	ErrBidNotFound = errors.New("bid not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
