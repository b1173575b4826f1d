package handlers

import (
	"net/http"

	"github.com/sHubh-blip/hd-booking/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health with the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "HD Booking API is running",
		"services": utils.GetHealthStatus(),
	})
}
