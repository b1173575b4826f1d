package models

// BookingRequest is the checkout payload submitted to POST /api/bookings.
// Field presence is validated by the booking service so that every rejection
// carries the taxonomy message, not a binding error.
type BookingRequest struct {
	ExperienceID string `json:"experienceId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Quantity     int    `json:"quantity"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PromoCode    string `json:"promoCode,omitempty"`
}
