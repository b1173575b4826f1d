package models

// Quote is the price breakdown computed for a booking. All amounts are
// integer currency units.
type Quote struct {
	Subtotal int `json:"subtotal"`
	Taxes    int `json:"taxes"`
	Discount int `json:"discount"`
	Total    int `json:"total"`
}

// BookingResponse is returned to the client on a successful checkout.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	RefID     string `json:"refId"`
	Message   string `json:"message"`
}

// PromoValidationResponse is the promo preview payload. A bad or expired code
// is reported with Valid=false and HTTP 200; it is not a protocol error.
type PromoValidationResponse struct {
	Valid        bool   `json:"valid"`
	Discount     int    `json:"discount,omitempty"`
	DiscountType string `json:"discountType,omitempty"`
	Message      string `json:"message"`
}
