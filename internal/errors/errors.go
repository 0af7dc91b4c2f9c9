// Package errors provides custom error types for the application.
package errors

import "errors"

// Trip errors
var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrNotParticipant = errors.New("you are not a participant of this trip")
	ErrNotTripOwner   = errors.New("only the trip creator can perform this action")
)

// Sub-entity errors
var (
	ErrStepNotFound       = errors.New("itinerary step not found")
	ErrBudgetItemNotFound = errors.New("budget item not found")
	ErrTaskNotFound       = errors.New("task not found")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotOwnTrips  = errors.New("you can only list your own trips")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Infrastructure errors
var (
	ErrStorageUnavailable = errors.New("object storage is not configured")
)
