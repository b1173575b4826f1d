package models

import "time"

// Booking statuses. Current checkout logic only ever writes confirmed;
// cancelled is modeled for completeness.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records a confirmed reservation together with its price breakdown.
// The price fields are a point-in-time snapshot computed at checkout; they are
// never recomputed from the referenced Experience.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	ExperienceID string    `bson:"experienceId" json:"experienceId"`
	Date         string    `bson:"date" json:"date"`
	Time         string    `bson:"time" json:"time"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PromoCode    string    `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	Discount     int       `bson:"discount" json:"discount"`
	Subtotal     int       `bson:"subtotal" json:"subtotal"`
	Taxes        int       `bson:"taxes" json:"taxes"`
	Total        int       `bson:"total" json:"total"`
	RefID        string    `bson:"refId" json:"refId"` // 8-char customer-facing reference
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
