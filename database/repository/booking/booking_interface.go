package bookingRepo

import (
	"context"
	"errors"

	"github.com/sHubh-blip/hd-booking/models"
)

// ErrSlotUnavailable is returned when the conditional slot decrement matched
// no document: the slot is gone, blocked, or lacks the requested capacity at
// commit time.
var ErrSlotUnavailable = errors.New("slot unavailable or insufficient capacity")

// ErrDuplicateRefID is returned when the unique index on refId rejects the
// booking insert. Callers regenerate the reference and retry.
var ErrDuplicateRefID = errors.New("booking reference already exists")

// BookingRepository persists bookings and applies the paired slot-inventory
// mutation. It owns both the bookings and experiences collections so the two
// writes can share one transaction.
type BookingRepository interface {
	// CreateConfirmed inserts the booking and decrements the matching slot's
	// availability atomically. The decrement re-checks capacity inside the
	// transaction, so a concurrent booking that drained the slot surfaces as
	// ErrSlotUnavailable rather than overselling.
	CreateConfirmed(ctx context.Context, booking *models.Booking) error
	// GetByRefID returns the booking with the given reference code, or
	// (nil, nil) when absent.
	GetByRefID(refID string) (*models.Booking, error)
}
