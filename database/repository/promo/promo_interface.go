package promoRepo

import (
	"time"

	"github.com/sHubh-blip/hd-booking/models"
)

// PromoRepository defines data access for promo codes. The booking flow only
// reads codes; the expiry sweep and the seeder write them.
type PromoRepository interface {
	// GetValidByCode returns the promo code matching the given uppercase code
	// with valid=true, or (nil, nil) when no such code exists. Expiry is the
	// caller's concern so that preview and commit share one evaluator.
	GetValidByCode(code string) (*models.PromoCode, error)
	// Insert stores a new promo code document (seed support).
	Insert(promo *models.PromoCode) error
	// DeleteAll wipes the collection (seed support).
	DeleteAll() error
	// ExpireOutdated flips valid=false on every code whose expiry date has
	// passed, returning how many were updated.
	ExpireOutdated(now time.Time) (int64, error)
}
