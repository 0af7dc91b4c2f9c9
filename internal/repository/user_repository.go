package repository

import (
	"context"
	"errors"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user profile operations.
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	FindByEmail(ctx context.Context, email string, limit int64) ([]models.User, error)
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Upsert writes a profile document keyed by the subject uid, merging
// over any existing document.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"email":       user.Email,
			"name":        user.Name,
			"picture":     user.Picture,
			"preferences": user.Preferences,
			"updatedAt":   user.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.UID}, update, opts)
	return err
}

// FindByUID retrieves a profile by subject uid.
func (r *userRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail returns profiles matching an email exactly, capped at limit.
func (r *userRepository) FindByEmail(ctx context.Context, email string, limit int64) ([]models.User, error) {
	opts := options.Find().SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}
