package booking

import (
	"strings"
	"time"

	"github.com/sHubh-blip/hd-booking/models"
)

// NormalizeCode maps user input to the stored uppercase promo code form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EvaluatePromo decides whether a promo code is usable at the given time.
// Both the preview endpoint and the checkout commit path go through this one
// function so previewed and final totals cannot diverge on expiry rules.
func EvaluatePromo(promo *models.PromoCode, now time.Time) error {
	if promo == nil || !promo.Valid {
		return NewBookingError(CodeInvalidPromo, "Invalid promo code")
	}
	if promo.ExpiryDate != nil && promo.ExpiryDate.Before(now) {
		return NewBookingError(CodeExpiredPromo, "Promo code has expired")
	}
	return nil
}
