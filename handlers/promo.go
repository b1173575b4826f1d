package handlers

import (
	"net/http"

	"github.com/sHubh-blip/hd-booking/models"
	"github.com/sHubh-blip/hd-booking/services/promo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PromoHandler exposes the promo preview endpoint.
type PromoHandler struct {
	Service promo.PromoService
	Logger  *zap.Logger
}

// NewPromoHandler creates a PromoHandler.
func NewPromoHandler(svc promo.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{Service: svc, Logger: logger}
}

// ValidatePromoHandler handles POST /api/promo/validate. Bad and expired
// codes come back 200 with valid:false; only a store failure is a 500.
func (h *PromoHandler) ValidatePromoHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.PromoValidationResponse{
			Valid:   false,
			Message: "Promo code is required",
		})
		return
	}

	resp, err := h.Service.ValidateCode(req.Code)
	if err != nil {
		h.Logger.Error("Failed to validate promo code", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.PromoValidationResponse{
			Valid:   false,
			Message: "Failed to validate promo code",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
