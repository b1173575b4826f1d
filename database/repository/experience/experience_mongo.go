package experienceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/sHubh-blip/hd-booking/database"
	"github.com/sHubh-blip/hd-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo creates a new instance of ExperienceRepository using MongoDB.
func NewMongoExperienceRepo() ExperienceRepository {
	coll := database.DB().Collection("experiences")
	repo := &MongoExperienceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoExperienceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll returns every experience in the catalog.
func (r *MongoExperienceRepo) GetAll() ([]models.Experience, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var experiences []models.Experience
	for cursor.Next(ctx) {
		var exp models.Experience
		if err := cursor.Decode(&exp); err != nil {
			return nil, fmt.Errorf("failed to decode experience: %w", err)
		}
		experiences = append(experiences, exp)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading experiences: %w", err)
	}
	return experiences, nil
}

// GetByID returns the experience with the given id, or (nil, nil) when absent.
func (r *MongoExperienceRepo) GetByID(id string) (*models.Experience, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var exp models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch experience with id %s: %w", id, err)
	}
	return &exp, nil
}

// Insert stores a new experience document.
func (r *MongoExperienceRepo) Insert(exp *models.Experience) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, exp); err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}
	return nil
}

// DeleteAll wipes the experiences collection.
func (r *MongoExperienceRepo) DeleteAll() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear experiences: %w", err)
	}
	return nil
}
