package handlers

import (
	"errors"
	"net/http"

	"github.com/sHubh-blip/hd-booking/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExperienceHandler exposes the catalog read path over HTTP.
type ExperienceHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewExperienceHandler creates an ExperienceHandler.
func NewExperienceHandler(svc catalog.CatalogService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{Service: svc, Logger: logger}
}

// ListExperiencesHandler handles GET /api/experiences.
func (h *ExperienceHandler) ListExperiencesHandler(c *gin.Context) {
	experiences, err := h.Service.ListExperiences()
	if err != nil {
		h.Logger.Error("Failed to fetch experiences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch experiences"})
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// GetExperienceHandler handles GET /api/experiences/:id.
func (h *ExperienceHandler) GetExperienceHandler(c *gin.Context) {
	id := c.Param("id")

	exp, err := h.Service.GetExperience(id)
	if err != nil {
		if errors.Is(err, catalog.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Experience not found"})
			return
		}
		h.Logger.Error("Failed to fetch experience", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch experience"})
		return
	}
	c.JSON(http.StatusOK, exp)
}
