package routes

import (
	"time"

	"github.com/sHubh-blip/hd-booking/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterExperienceRoutes registers catalog read endpoints.
func RegisterExperienceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experiences")
	{
		api.GET("", hb.ListExperiencesHandler)
		api.GET("/:id", hb.GetExperienceHandler)
	}
}

// RegisterBookingRoutes registers the checkout endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("/ref/:refId", hb.GetBookingByRefHandler)
	}
}

// RegisterPromoRoutes registers the promo preview endpoint.
func RegisterPromoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/promo")
	{
		api.POST("/validate", hb.ValidatePromoHandler)
	}
}

// RegisterHealthRoute registers health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/api/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterExperienceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPromoRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
