package email

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_MISSING_API_KEY        ErrorReason = "MISSING_API_KEY"
	REASON_MISSING_SENDER         ErrorReason = "MISSING_SENDER"
	REASON_INVALID_SENDER_ADDRESS ErrorReason = "INVALID_SENDER_ADDRESS"
	REASON_INVALID_CONFIG         ErrorReason = "INVALID_CONFIG"
	REASON_DELIVERY_FAILED        ErrorReason = "DELIVERY_FAILED"
)

var _ error = &Error{}

type Error struct {
	Message string
	Reason  ErrorReason
	Cause   error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s.", e.Reason, e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(" Cause: %s", e.Cause)
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HasReason reports whether any *Error in err's chain carries reason.
func HasReason(err error, reason ErrorReason) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Reason == reason {
			return true
		}
		err = e.Cause
	}
	return false
}

func newError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Message: message,
		Reason:  reason,
		Cause:   cause,
	}
}

func NewMissingAPIKeyError(message string, cause error) *Error {
	return newError(REASON_MISSING_API_KEY, message, cause)
}

func NewMissingSenderError(message string, cause error) *Error {
	return newError(REASON_MISSING_SENDER, message, cause)
}

func NewInvalidSenderAddressError(message string, cause error) *Error {
	return newError(REASON_INVALID_SENDER_ADDRESS, message, cause)
}

func NewInvalidConfigError(message string, cause error) *Error {
	return newError(REASON_INVALID_CONFIG, message, cause)
}

func NewDeliveryFailedError(message string, cause error) *Error {
	return newError(REASON_DELIVERY_FAILED, message, cause)
}
