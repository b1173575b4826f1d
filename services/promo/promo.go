package promo

import (
	"fmt"
	"time"

	promoRepo "github.com/sHubh-blip/hd-booking/database/repository/promo"
	"github.com/sHubh-blip/hd-booking/models"
	"github.com/sHubh-blip/hd-booking/services/booking"
)

// PromoService previews promo codes for the checkout UI. This is read-only:
// the booking service independently re-validates the code at commit time
// through the same evaluator.
type PromoService interface {
	ValidateCode(code string) (*models.PromoValidationResponse, error)
}

// DefaultPromoService implements PromoService.
type DefaultPromoService struct {
	Repo promoRepo.PromoRepository
}

// ValidateCode looks up a code and reports whether it is currently usable.
// Bad, expired, and missing codes are Valid=false payloads, not errors.
func (s *DefaultPromoService) ValidateCode(code string) (*models.PromoValidationResponse, error) {
	if code == "" {
		return &models.PromoValidationResponse{
			Valid:   false,
			Message: "Promo code is required",
		}, nil
	}

	promoCode, err := s.Repo.GetValidByCode(booking.NormalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to validate promo code: %w", err)
	}

	if err := booking.EvaluatePromo(promoCode, time.Now()); err != nil {
		msg := "Invalid promo code"
		if be, ok := booking.AsBookingError(err); ok {
			msg = be.Message
		}
		return &models.PromoValidationResponse{
			Valid:   false,
			Message: msg,
		}, nil
	}

	return &models.PromoValidationResponse{
		Valid:        true,
		Discount:     promoCode.Discount,
		DiscountType: promoCode.DiscountType,
		Message:      "Promo code applied successfully",
	}, nil
}
