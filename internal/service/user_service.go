package service

import (
	"context"
	"log"
	"time"

	"travelmate/internal/cache"
	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"
	"travelmate/internal/repository"
	"travelmate/pkg/identity"
)

// Cache TTL for user profiles.
const profileCacheTTL = 5 * time.Minute

// Result cap for email search.
const searchLimit = 10

// UserService handles profiles and user lookups.
type UserService struct {
	userRepo repository.UserRepository
	tripRepo repository.TripRepository
	cache    cache.Cache
}

// NewUserService creates a new UserService. Cache may be nil.
func NewUserService(userRepo repository.UserRepository, tripRepo repository.TripRepository, c cache.Cache) *UserService {
	return &UserService{
		userRepo: userRepo,
		tripRepo: tripRepo,
		cache:    c,
	}
}

// EnsureProfile upserts the caller's profile from verified token claims
// and returns the stored document. Preferences already saved locally are
// kept.
func (s *UserService) EnsureProfile(ctx context.Context, id identity.Identity) (*models.User, error) {
	user := &models.User{
		UID:     id.Subject,
		Email:   id.Email,
		Name:    id.Name,
		Picture: id.Picture,
	}

	if existing, err := s.userRepo.FindByUID(ctx, id.Subject); err == nil {
		user.Preferences = existing.Preferences
		if id.Name == "" {
			user.Name = existing.Name
		}
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.cacheProfile(ctx, user)

	return user, nil
}

// GetProfile returns the caller's own profile, served from cache when
// possible.
func (s *UserService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	if s.cache != nil {
		var cached models.User
		found, err := s.cache.Get(ctx, cache.ProfileCacheKey(uid), &cached)
		if err != nil {
			log.Printf("Profile cache read failed for %s: %v", uid, err)
		}
		if found {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	s.cacheProfile(ctx, user)

	return user, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *UserService) UpdateProfile(ctx context.Context, uid string, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Preferences != nil {
		user.Preferences = req.Preferences
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.cacheProfile(ctx, user)

	return user, nil
}

// GetUser returns another user's public profile.
func (s *UserService) GetUser(ctx context.Context, uid string) (*models.PublicUser, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &models.PublicUser{
		UID:         user.UID,
		Name:        user.Name,
		Picture:     user.Picture,
		Preferences: user.Preferences,
	}, nil
}

// SearchByEmail finds users by exact email match.
func (s *UserService) SearchByEmail(ctx context.Context, email string) ([]models.SearchedUser, error) {
	users, err := s.userRepo.FindByEmail(ctx, email, searchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchedUser, 0, len(users))
	for _, user := range users {
		results = append(results, models.SearchedUser{
			UID:     user.UID,
			Name:    user.Name,
			Email:   user.Email,
			Picture: user.Picture,
		})
	}

	return results, nil
}

// GetUserTrips returns the trips of the requested user. Callers may only
// list their own trips.
func (s *UserService) GetUserTrips(ctx context.Context, requestedUID, subject string) ([]models.Trip, error) {
	if requestedUID != subject {
		return nil, apperrors.ErrNotOwnTrips
	}

	return s.tripRepo.FindByParticipant(ctx, requestedUID)
}

// cacheProfile stores a profile in cache, best effort.
func (s *UserService) cacheProfile(ctx context.Context, user *models.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cache.ProfileCacheKey(user.UID), user, profileCacheTTL); err != nil {
		log.Printf("Profile cache write failed for %s: %v", user.UID, err)
	}
}
