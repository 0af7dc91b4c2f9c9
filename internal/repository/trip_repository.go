// Package repository provides data access for trips and users.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripRepository defines the interface for trip data operations.
//
// Sub-collections are persisted by rewriting the whole embedded array
// into the parent trip document. Two concurrent writers can therefore
// lose an update; the later read wins.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	FindByID(ctx context.Context, id string) (*models.Trip, error)
	FindByParticipant(ctx context.Context, subject string) ([]models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id string) error
	ReplaceItinerary(ctx context.Context, id string, steps []models.ItineraryStep) error
	ReplaceBudget(ctx context.Context, id string, items []models.BudgetItem) error
	ReplaceTasks(ctx context.Context, id string, tasks []models.Task) error
}

// tripRepository implements TripRepository using MongoDB.
type tripRepository struct {
	collection *mongo.Collection
}

// NewTripRepository creates a new TripRepository.
func NewTripRepository(db *mongo.Database) TripRepository {
	return &tripRepository{
		collection: db.Collection("trips"),
	}
}

// Create inserts a new trip. The id is assigned here and the embedded
// collections are initialized empty.
func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = uuid.NewString()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = trip.CreatedAt

	if trip.Itinerary == nil {
		trip.Itinerary = []models.ItineraryStep{}
	}
	if trip.Budget == nil {
		trip.Budget = []models.BudgetItem{}
	}
	if trip.Tasks == nil {
		trip.Tasks = []models.Task{}
	}

	_, err := r.collection.InsertOne(ctx, trip)
	return err
}

// FindByID retrieves a trip by id.
func (r *tripRepository) FindByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// FindByParticipant returns every trip whose participants array contains
// subject, newest first. Documents missing createdAt sort last, which
// treats them as earliest.
func (r *tripRepository) FindByParticipant(ctx context.Context, subject string) ([]models.Trip, error) {
	filter := bson.M{"participants": subject}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}

	if trips == nil {
		trips = []models.Trip{}
	}

	return trips, nil
}

// Update rewrites the trip-level fields of an existing trip and
// refreshes updatedAt. Embedded collections are untouched.
func (r *tripRepository) Update(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":         trip.Name,
			"description":  trip.Description,
			"destination":  trip.Destination,
			"startDate":    trip.StartDate,
			"endDate":      trip.EndDate,
			"participants": trip.Participants,
			"updatedAt":    trip.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trip.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}

// Delete removes a trip document entirely.
func (r *tripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}

// ReplaceItinerary rewrites the whole itinerary array.
func (r *tripRepository) ReplaceItinerary(ctx context.Context, id string, steps []models.ItineraryStep) error {
	if steps == nil {
		steps = []models.ItineraryStep{}
	}
	return r.replaceField(ctx, id, "itinerary", steps)
}

// ReplaceBudget rewrites the whole budget array.
func (r *tripRepository) ReplaceBudget(ctx context.Context, id string, items []models.BudgetItem) error {
	if items == nil {
		items = []models.BudgetItem{}
	}
	return r.replaceField(ctx, id, "budget", items)
}

// ReplaceTasks rewrites the whole tasks array.
func (r *tripRepository) ReplaceTasks(ctx context.Context, id string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return r.replaceField(ctx, id, "tasks", tasks)
}

// replaceField sets one embedded array field and refreshes the parent
// trip's updatedAt in the same write.
func (r *tripRepository) replaceField(ctx context.Context, id, field string, value interface{}) error {
	update := bson.M{
		"$set": bson.M{
			field:       value,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTripNotFound
	}

	return nil
}
