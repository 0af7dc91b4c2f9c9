package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"travelmate/internal/authz"
	apperrors "travelmate/internal/errors"
	"travelmate/internal/events"
	"travelmate/internal/models"
	"travelmate/internal/repository"
)

// TripService handles business logic for trip operations.
type TripService struct {
	tripRepo  repository.TripRepository
	publisher events.Publisher
}

// NewTripService creates a new TripService. The publisher may be nil, in
// which case invitation events are not emitted.
func NewTripService(tripRepo repository.TripRepository, publisher events.Publisher) *TripService {
	return &TripService{
		tripRepo:  tripRepo,
		publisher: publisher,
	}
}

// fetchForParticipant loads a trip and checks membership. Existence is
// checked before access so a stranger probing an existing id gets 403,
// not 404.
func fetchForParticipant(ctx context.Context, repo repository.TripRepository, tripID, subject string) (*models.Trip, error) {
	trip, err := repo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !authz.IsParticipant(trip, subject) {
		return nil, apperrors.ErrNotParticipant
	}
	return trip, nil
}

// fetchForOwner loads a trip and checks ownership, with the same
// existence-before-access ordering.
func fetchForOwner(ctx context.Context, repo repository.TripRepository, tripID, subject string) (*models.Trip, error) {
	trip, err := repo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwner(trip, subject) {
		return nil, apperrors.ErrNotTripOwner
	}
	return trip, nil
}

// withCreatorFirst returns the participants list with creator prepended
// and deduplicated. The creator can never be removed from a trip.
func withCreatorFirst(creator string, participants []string) []string {
	result := []string{creator}
	for _, p := range participants {
		if p != creator {
			result = append(result, p)
		}
	}
	return result
}

// CreateTrip creates a new trip owned by subject. The creator always ends
// up in the participants list, first.
func (s *TripService) CreateTrip(ctx context.Context, subject string, req *models.CreateTripRequest) (*models.Trip, error) {
	trip := &models.Trip{
		Name:         req.Name,
		Description:  req.Description,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Participants: withCreatorFirst(subject, req.Participants),
		CreatedBy:    subject,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// ListTrips returns every trip the subject participates in, newest first.
func (s *TripService) ListTrips(ctx context.Context, subject string) ([]models.Trip, error) {
	return s.tripRepo.FindByParticipant(ctx, subject)
}

// GetTrip retrieves a single trip the subject participates in.
func (s *TripService) GetTrip(ctx context.Context, tripID, subject string) (*models.Trip, error) {
	return fetchForParticipant(ctx, s.tripRepo, tripID, subject)
}

// UpdateTrip applies a partial update to trip-level fields. Only the owner
// may update a trip. Dates are not cross-checked here; a partial update
// may move one end of the range independently. A replaced participants
// list always keeps the creator, so the owner cannot lock themselves out.
func (s *TripService) UpdateTrip(ctx context.Context, tripID, subject string, req *models.UpdateTripRequest) (*models.Trip, error) {
	trip, err := fetchForOwner(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.Participants != nil {
		trip.Participants = withCreatorFirst(trip.CreatedBy, req.Participants)
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// DeleteTrip removes a trip and everything embedded in it. Owner only.
func (s *TripService) DeleteTrip(ctx context.Context, tripID, subject string) error {
	if _, err := fetchForOwner(ctx, s.tripRepo, tripID, subject); err != nil {
		return err
	}

	return s.tripRepo.Delete(ctx, tripID)
}

// InviteParticipant acknowledges an invitation for the given email. The
// participants list is not touched; joining happens out of band. When a
// publisher is configured the invitation is also emitted as an event, but
// a broker failure never fails the request.
func (s *TripService) InviteParticipant(ctx context.Context, tripID, subject string, req *models.InviteParticipantRequest) (*models.InvitationAck, error) {
	trip, err := fetchForOwner(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.InvitationEvent{
			TripID:    trip.ID,
			TripName:  trip.Name,
			Email:     req.Email,
			InvitedBy: subject,
			SentAt:    time.Now(),
		}
		if err := s.publisher.PublishInvitation(ctx, event); err != nil {
			log.Printf("Failed to publish invitation event for trip %s: %v", trip.ID, err)
		}
	}

	return &models.InvitationAck{
		Message: fmt.Sprintf("Invitation sent to %s", req.Email),
		Email:   req.Email,
	}, nil
}
