package service

import (
	"context"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"
	"travelmate/internal/repository"

	"github.com/google/uuid"
)

// ItineraryService handles business logic for itinerary steps.
type ItineraryService struct {
	tripRepo repository.TripRepository
}

// NewItineraryService creates a new ItineraryService.
func NewItineraryService(tripRepo repository.TripRepository) *ItineraryService {
	return &ItineraryService{tripRepo: tripRepo}
}

// ListSteps returns the itinerary of a trip in stored order.
func (s *ItineraryService) ListSteps(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	return trip.Itinerary, nil
}

// AddStep appends a step to the trip's itinerary.
func (s *ItineraryService) AddStep(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	step := models.ItineraryStep{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Location: models.Location{
			Lat:     *req.Location.Lat,
			Lng:     *req.Location.Lng,
			Address: req.Location.Address,
		},
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  req.Category,
		Cost:      req.Cost,
		AddedBy:   subject,
		AddedAt:   time.Now(),
	}

	steps := append(trip.Itinerary, step)
	if err := s.tripRepo.ReplaceItinerary(ctx, tripID, steps); err != nil {
		return nil, err
	}

	return &step, nil
}

// UpdateStep replaces the editable fields of a step. The step's id,
// addedBy and addedAt are preserved.
func (s *ItineraryService) UpdateStep(ctx context.Context, tripID, stepID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range trip.Itinerary {
		if trip.Itinerary[i].ID == stepID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrStepNotFound
	}

	now := time.Now()
	step := &trip.Itinerary[index]
	step.Name = req.Name
	step.Description = req.Description
	step.Location = models.Location{
		Lat:     *req.Location.Lat,
		Lng:     *req.Location.Lng,
		Address: req.Location.Address,
	}
	step.StartDate = req.StartDate
	step.EndDate = req.EndDate
	step.Category = req.Category
	step.Cost = req.Cost
	step.UpdatedAt = &now

	if err := s.tripRepo.ReplaceItinerary(ctx, tripID, trip.Itinerary); err != nil {
		return nil, err
	}

	return step, nil
}

// DeleteStep removes a step from the itinerary. Deletion is idempotent:
// an absent id is not an error, the filtered list is written either way.
func (s *ItineraryService) DeleteStep(ctx context.Context, tripID, stepID, subject string) error {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return err
	}

	steps := make([]models.ItineraryStep, 0, len(trip.Itinerary))
	for _, step := range trip.Itinerary {
		if step.ID == stepID {
			continue
		}
		steps = append(steps, step)
	}

	return s.tripRepo.ReplaceItinerary(ctx, tripID, steps)
}
