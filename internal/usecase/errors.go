package usecase

import "errors"

// Error kinds returned by services. Handlers map these to HTTP statuses
// with errors.Is; messages wrapped around them are safe to show callers.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrVehicleUnavailable  = errors.New("vehicle is not available for booking")
	ErrInvalidTransition   = errors.New("illegal status transition")
	ErrPaymentNotCompleted = errors.New("payment has not been completed")
	ErrPaymentProcessor    = errors.New("payment processor error")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
