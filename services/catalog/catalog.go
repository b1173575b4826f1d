package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	experienceRepo "github.com/sHubh-blip/hd-booking/database/repository/experience"
	"github.com/sHubh-blip/hd-booking/models"
	"github.com/sHubh-blip/hd-booking/utils"

	"go.uber.org/zap"
)

// ErrExperienceNotFound is returned when no experience has the requested id.
var ErrExperienceNotFound = errors.New("experience not found")

// CatalogService exposes the read path over the experience catalog.
type CatalogService interface {
	ListExperiences() ([]models.Experience, error)
	GetExperience(id string) (*models.Experience, error)
	// InvalidateExperience drops cached entries for an experience whose slot
	// inventory just changed.
	InvalidateExperience(id string)
}

// DefaultCatalogService implements CatalogService with a Redis read-through
// cache in front of the experience repository.
type DefaultCatalogService struct {
	Repo  experienceRepo.ExperienceRepository
	Cache Cache
}

// ListExperiences returns the whole catalog, cached.
func (s *DefaultCatalogService) ListExperiences() ([]models.Experience, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, utils.CatalogListCacheKey); err == nil {
			var experiences []models.Experience
			if err := json.Unmarshal([]byte(cached), &experiences); err == nil {
				return experiences, nil
			}
			logger.Warn("Discarding unreadable catalog cache entry", zap.Error(err))
		}
	}

	experiences, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(experiences); err == nil {
			if err := s.Cache.Set(ctx, utils.CatalogListCacheKey, string(data), utils.CatalogCacheTTL); err != nil {
				logger.Warn("Failed to cache catalog list", zap.Error(err))
			}
		}
	}
	return experiences, nil
}

// GetExperience returns one experience by id, cached.
func (s *DefaultCatalogService) GetExperience(id string) (*models.Experience, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := utils.CatalogCachePrefix + id
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key); err == nil {
			var exp models.Experience
			if err := json.Unmarshal([]byte(cached), &exp); err == nil {
				return &exp, nil
			}
			logger.Warn("Discarding unreadable experience cache entry", zap.String("id", id), zap.Error(err))
		}
	}

	exp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	if exp == nil {
		return nil, ErrExperienceNotFound
	}

	if s.Cache != nil {
		if data, err := json.Marshal(exp); err == nil {
			if err := s.Cache.Set(ctx, key, string(data), utils.CatalogCacheTTL); err != nil {
				logger.Warn("Failed to cache experience", zap.String("id", id), zap.Error(err))
			}
		}
	}
	return exp, nil
}

// InvalidateExperience drops the cached list and the per-id entry. Stale slot
// counts must not outlive a committed booking.
func (s *DefaultCatalogService) InvalidateExperience(id string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, utils.CatalogListCacheKey, utils.CatalogCachePrefix+id); err != nil {
		utils.GetLogger().Warn("Failed to invalidate catalog cache", zap.String("id", id), zap.Error(err))
	}
}
