package models

import "time"

// Discount kinds supported by promo codes.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCode is an optional discount token applied at checkout. Codes are
// stored uppercase and looked up case-insensitively by normalizing the input.
type PromoCode struct {
	ID           string     `bson:"id" json:"id"`
	Code         string     `bson:"code" json:"code"`
	Discount     int        `bson:"discount" json:"discount"`
	DiscountType string     `bson:"discountType" json:"discountType"`
	Valid        bool       `bson:"valid" json:"valid"`
	ExpiryDate   *time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
