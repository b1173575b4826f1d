package booking

import (
	bookingRepo "github.com/sHubh-blip/hd-booking/database/repository/booking"
	experienceRepo "github.com/sHubh-blip/hd-booking/database/repository/experience"
	promoRepo "github.com/sHubh-blip/hd-booking/database/repository/promo"
	"github.com/sHubh-blip/hd-booking/models"
)

// BookingService defines the interface for the checkout flow.
type BookingService interface {
	// CreateBooking validates a checkout request, prices it, allocates a
	// unique reference, and commits the booking together with the slot
	// decrement. Rejections are *BookingError values.
	CreateBooking(req models.BookingRequest) (*models.BookingResponse, error)
	// GetBookingByRef returns the booking behind a reference code, for the
	// confirmation page.
	GetBookingByRef(refID string) (*models.Booking, error)
}

// CatalogInvalidator drops cached catalog entries after slot inventory moves.
type CatalogInvalidator interface {
	InvalidateExperience(id string)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Experiences experienceRepo.ExperienceRepository
	Promos      promoRepo.PromoRepository
	Bookings    bookingRepo.BookingRepository
	Catalog     CatalogInvalidator

	// TaxRatePercent is the whole-percent tax rate applied to subtotals.
	TaxRatePercent int
}
