package handlers

import (
	"net/http"

	"github.com/sHubh-blip/hd-booking/models"
	"github.com/sHubh-blip/hd-booking/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the checkout flow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// statusForRejection maps a booking rejection code to its HTTP status.
func statusForRejection(code string) int {
	switch code {
	case booking.CodeExperienceNotFound, booking.CodeBookingNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	resp, err := h.Service.CreateBooking(req)
	if err != nil {
		if be, ok := booking.AsBookingError(err); ok {
			c.JSON(statusForRejection(be.Code), gin.H{"success": false, "message": be.Message})
			return
		}
		h.Logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBookingByRefHandler handles GET /api/bookings/ref/:refId, used by the
// confirmation page.
func (h *BookingHandler) GetBookingByRefHandler(c *gin.Context) {
	refID := c.Param("refId")

	bk, err := h.Service.GetBookingByRef(refID)
	if err != nil {
		if be, ok := booking.AsBookingError(err); ok {
			c.JSON(statusForRejection(be.Code), gin.H{"message": be.Message})
			return
		}
		h.Logger.Error("Failed to fetch booking", zap.String("refId", refID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, bk)
}
