package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every HTTP handler the router needs, assembled once in
// main and passed to route registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListExperiencesHandler gin.HandlerFunc
	GetExperienceHandler   gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler   gin.HandlerFunc
	GetBookingByRefHandler gin.HandlerFunc

	// Promo endpoints.
	ValidatePromoHandler gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}
