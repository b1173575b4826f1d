package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/sHubh-blip/hd-booking/database/repository/booking"
	"github.com/sHubh-blip/hd-booking/models"
	"github.com/sHubh-blip/hd-booking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking runs the checkout transaction: validate against the catalog
// and promo stores, compute the price breakdown, allocate a unique reference,
// persist the booking, and decrement slot inventory.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	if req.ExperienceID == "" || req.Date == "" || req.Time == "" ||
		req.Quantity <= 0 || req.FullName == "" || req.Email == "" {
		return nil, NewBookingError(CodeMalformedRequest, "Missing required fields")
	}

	experience, err := s.Experiences.GetByID(req.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience: %w", err)
	}
	if experience == nil {
		return nil, NewBookingError(CodeExperienceNotFound, "Experience not found")
	}

	slot := experience.FindSlot(req.Date, req.Time)
	if slot == nil {
		return nil, NewBookingError(CodeInvalidSlot, "Slot not available")
	}
	if slot.SoldOut || slot.Available < req.Quantity {
		return nil, NewBookingError(CodeInsufficientCapacity, "Not enough slots available")
	}

	// A supplied-but-failing promo code aborts the whole booking; there is no
	// silent fallback to full price.
	var promo *models.PromoCode
	if req.PromoCode != "" {
		code := NormalizeCode(req.PromoCode)
		promo, err = s.Promos.GetValidByCode(code)
		if err != nil {
			return nil, fmt.Errorf("failed to look up promo code: %w", err)
		}
		if err := EvaluatePromo(promo, time.Now()); err != nil {
			return nil, err
		}
	}

	quote := ComputeQuote(experience.Price, req.Quantity, s.TaxRatePercent, promo)

	booking := &models.Booking{
		ID:           uuid.New().String(),
		ExperienceID: req.ExperienceID,
		Date:         req.Date,
		Time:         req.Time,
		Quantity:     req.Quantity,
		FullName:     req.FullName,
		Email:        req.Email,
		Discount:     quote.Discount,
		Subtotal:     quote.Subtotal,
		Taxes:        quote.Taxes,
		Total:        quote.Total,
		Status:       models.BookingStatusConfirmed,
	}
	if promo != nil {
		booking.PromoCode = promo.Code
	}

	if err := s.commitWithFreshRef(booking); err != nil {
		return nil, err
	}

	if s.Catalog != nil {
		s.Catalog.InvalidateExperience(req.ExperienceID)
	}

	logger.Info("Booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("refId", booking.RefID),
		zap.String("experienceId", booking.ExperienceID),
		zap.Int("quantity", booking.Quantity),
		zap.Int("total", booking.Total),
	)

	return &models.BookingResponse{
		Success:   true,
		BookingID: booking.ID,
		RefID:     booking.RefID,
		Message:   "Booking confirmed successfully",
	}, nil
}

// commitWithFreshRef allocates a reference and commits the booking, retrying
// with a new reference when the unique index reports a collision. The slot
// capacity re-check inside the transaction turns a lost inventory race into
// an insufficient-capacity rejection.
func (s *DefaultBookingService) commitWithFreshRef(booking *models.Booking) error {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for attempt := 1; attempt <= maxRefIDAttempts; attempt++ {
		refID, err := GenerateRefID()
		if err != nil {
			return err
		}
		booking.RefID = refID

		err = s.Bookings.CreateConfirmed(ctx, booking)
		if err == nil {
			return nil
		}
		if errors.Is(err, bookingRepo.ErrDuplicateRefID) {
			logger.Warn("Booking reference collision, retrying",
				zap.String("refId", refID), zap.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
			return NewBookingError(CodeInsufficientCapacity, "Not enough slots available")
		}
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return fmt.Errorf("failed to allocate a unique booking reference after %d attempts", maxRefIDAttempts)
}

// GetBookingByRef returns the booking behind a reference code.
func (s *DefaultBookingService) GetBookingByRef(refID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByRefID(NormalizeCode(refID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, NewBookingError(CodeBookingNotFound, "Booking not found")
	}
	return booking, nil
}
