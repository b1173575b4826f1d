package booking

import (
	"math"

	"github.com/sHubh-blip/hd-booking/models"
)

// roundNearest rounds a fractional currency amount to the nearest integer
// unit, halves away from zero. All inputs here are non-negative, so halves
// round up.
func roundNearest(x float64) int {
	return int(math.Round(x))
}

// ComputeTaxes returns the flat tax on a subtotal at the given whole-percent
// rate, rounded to the nearest unit. Tax is computed on the subtotal alone;
// discounts never reduce the taxable base.
func ComputeTaxes(subtotal, taxRatePercent int) int {
	return roundNearest(float64(subtotal) * float64(taxRatePercent) / 100)
}

// ComputeDiscount returns the discount a promo code yields on a subtotal:
// rounded percentage-of-subtotal, or the fixed amount verbatim. The promo is
// assumed to have passed EvaluatePromo.
func ComputeDiscount(promo *models.PromoCode, subtotal int) int {
	if promo == nil {
		return 0
	}
	if promo.DiscountType == models.DiscountTypePercentage {
		return roundNearest(float64(subtotal) * float64(promo.Discount) / 100)
	}
	return promo.Discount
}

// ComputeQuote builds the full price breakdown for a booking. A fixed-amount
// discount larger than subtotal plus taxes is clamped so the total never goes
// negative.
func ComputeQuote(unitPrice, quantity, taxRatePercent int, promo *models.PromoCode) models.Quote {
	subtotal := unitPrice * quantity
	taxes := ComputeTaxes(subtotal, taxRatePercent)
	discount := ComputeDiscount(promo, subtotal)
	if discount > subtotal+taxes {
		discount = subtotal + taxes
	}

	return models.Quote{
		Subtotal: subtotal,
		Taxes:    taxes,
		Discount: discount,
		Total:    subtotal + taxes - discount,
	}
}
