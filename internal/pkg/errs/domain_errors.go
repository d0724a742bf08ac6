package errs

import "errors"

// Cross-layer sentinel errors shared by the usecase and handler layers
var (
	// Lead errors
	ErrValidationRefused = errors.New("validation refused: lead fields missing")
	ErrInvalidEmail      = errors.New("invalid email address")

	// Key errors
	ErrKeyTooShort = errors.New("golden key too short")

	// Upstream errors
	ErrVoucherUnavailable = errors.New("voucher service unavailable")
	ErrMalformedResponse  = errors.New("malformed voucher response")
	ErrWebhookDelivery    = errors.New("webhook delivery failed")

	// Storage errors
	ErrActivationNotFound = errors.New("activation not found")
	ErrStorageWrite       = errors.New("storage write failure")

	// Operation errors
	ErrSuperseded = errors.New("validation superseded by a newer attempt")
)
