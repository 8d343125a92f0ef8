package apperror

import "fmt"

var (
	ErrNoDriversAvailable    = New(KindNotFound, "no_drivers_available", "no drivers available")
	ErrAlreadyActiveTrip     = New(KindStateConflict, "already_active_trip", "requester already has an active trip")
	ErrTripNotFound          = New(KindNotFound, "trip_not_found", "trip not found")
	ErrDriverNotFound        = New(KindNotFound, "driver_not_found", "driver not found")
	ErrTripNoLongerAvailable = New(KindConcurrency, "trip_no_longer_available", "trip no longer available")
	ErrDriverAlreadyActive   = New(KindStateConflict, "driver_already_active", "driver already has an active trip")
	ErrStateConflict         = New(KindStateConflict, "state_conflict", "illegal trip transition")
	ErrNotCancellable        = New(KindStateConflict, "not_cancellable", "trip can no longer be cancelled")
	ErrPermissionDenied      = New(KindPermission, "permission_denied", "actor is not allowed to perform this action")
	ErrAlreadyRated          = New(KindStateConflict, "already_rated", "trip already rated by this actor")
	ErrConcurrentUpdate      = New(KindConcurrency, "concurrent_update", "trip was modified concurrently, retry")

	ErrWalletNotFound       = New(KindNotFound, "wallet_not_found", "wallet not found")
	ErrWalletInactive       = New(KindValidation, "wallet_inactive", "wallet is inactive")
	ErrInsufficientFunds    = New(KindInsufficientFunds, "insufficient_funds", "insufficient funds")
	ErrDailyLimitExceeded   = New(KindLimitExceeded, "daily_limit_exceeded", "daily spending limit exceeded")
	ErrMonthlyLimitExceeded = New(KindLimitExceeded, "monthly_limit_exceeded", "monthly spending limit exceeded")
	ErrInvalidAmount        = New(KindValidation, "invalid_amount", "amount must be greater than zero")
	ErrDuplicateReference   = New(KindStateConflict, "duplicate_reference", "a transaction with this reference already exists")

	ErrEventPublish = New(KindExternalService, "event_publish_failed", "failed to publish event")
)

// Validation creates a caller-correctable input error
func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, "validation_error", fmt.Sprintf(format, args...))
}

// StateConflict names the current and the requested trip states
func StateConflict(current, requested string) *Error {
	return ErrStateConflict.WithMessage("cannot move trip from %s to %s", current, requested)
}

// EventPublish wraps a broker failure for the named event type
func EventPublish(eventType string, err error) *Error {
	return Wrap(ErrEventPublish.Kind, ErrEventPublish.Code, fmt.Sprintf("failed to publish %s event", eventType), err)
}

// External wraps a downstream provider failure
func External(message string, err error) *Error {
	return Wrap(KindExternalService, "external_service_error", message, err)
}

// Internal wraps an unexpected failure
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, "internal_error", message, err)
}
