package experienceRepo

import "github.com/sHubh-blip/hd-booking/models"

// ExperienceRepository defines data access for the experience catalog.
// Experiences are seeded out-of-band; the booking flow only reads them here
// (slot inventory is mutated through the booking repository's transaction).
type ExperienceRepository interface {
	// GetAll returns every experience in the catalog.
	GetAll() ([]models.Experience, error)
	// GetByID returns the experience with the given id, or (nil, nil) when it
	// does not exist.
	GetByID(id string) (*models.Experience, error)
	// Insert stores a new experience document (seed support).
	Insert(exp *models.Experience) error
	// DeleteAll wipes the collection (seed support).
	DeleteAll() error
}
