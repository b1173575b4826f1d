package booking

import (
	"errors"
	"fmt"
)

// Rejection codes for the checkout flow. Each maps to a distinct validation
// failure surfaced to the client.
const (
	CodeMalformedRequest     = "malformedRequest"
	CodeExperienceNotFound   = "experienceNotFound"
	CodeInvalidSlot          = "invalidSlot"
	CodeInsufficientCapacity = "insufficientCapacity"
	CodeInvalidPromo         = "invalidPromo"
	CodeExpiredPromo         = "expiredPromo"
	CodeBookingNotFound      = "bookingNotFound"
)

// BookingError is a terminal, user-facing rejection. Anything else coming out
// of the service is an unexpected failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}

// AsBookingError unwraps err into a *BookingError if it is one.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
