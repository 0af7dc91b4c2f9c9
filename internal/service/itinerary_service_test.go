package service

import (
	"context"
	"testing"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"
	repomocks "travelmate/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func tripWithItinerary(steps []models.ItineraryStep) *models.Trip {
	trip := tripFixture("uid-1")
	trip.Itinerary = steps
	return trip
}

func stepRequest() *models.ItineraryStepRequest {
	lat, lng := 38.7223, -9.1393
	return &models.ItineraryStepRequest{
		Name: "Tram 28 ride",
		Location: &models.LocationRequest{
			Lat:     &lat,
			Lng:     &lng,
			Address: "Praça Martim Moniz, Lisboa",
		},
		StartDate: time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 2, 11, 0, 0, 0, time.UTC),
		Category:  models.StepCategoryActivity,
	}
}

func TestItineraryService_ListSteps(t *testing.T) {
	t.Run("returns stored order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		steps := []models.ItineraryStep{{ID: "s1"}, {ID: "s2"}}

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(steps), nil)

		service := NewItineraryService(mockRepo)
		got, err := service.ListSteps(context.Background(), "trip-1", "uid-2")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "s1", got[0].ID)
	})

	t.Run("non-participant is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripFixture("uid-1"), nil)

		service := NewItineraryService(mockRepo)
		got, err := service.ListSteps(context.Background(), "trip-1", "uid-9")

		assert.Nil(t, got)
		assert.Equal(t, apperrors.ErrNotParticipant, err)
	})
}

func TestItineraryService_AddStep(t *testing.T) {
	t.Run("stamps id, addedBy and addedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(nil), nil)
		mockRepo.EXPECT().
			ReplaceItinerary(gomock.Any(), "trip-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, steps []models.ItineraryStep) error {
				require.Len(t, steps, 1)
				assert.Equal(t, 38.7223, steps[0].Location.Lat)
				return nil
			})

		service := NewItineraryService(mockRepo)
		step, err := service.AddStep(context.Background(), "trip-1", "uid-2", stepRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, step.ID)
		assert.Equal(t, "uid-2", step.AddedBy)
		assert.NotZero(t, step.AddedAt)
		assert.Nil(t, step.UpdatedAt)
	})

	t.Run("zero coordinates are valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		req := stepRequest()
		zero := 0.0
		req.Location.Lat = &zero
		req.Location.Lng = &zero

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(nil), nil)
		mockRepo.EXPECT().
			ReplaceItinerary(gomock.Any(), "trip-1", gomock.Any()).
			Return(nil)

		service := NewItineraryService(mockRepo)
		step, err := service.AddStep(context.Background(), "trip-1", "uid-1", req)

		require.NoError(t, err)
		assert.Equal(t, 0.0, step.Location.Lat)
		assert.Equal(t, 0.0, step.Location.Lng)
	})
}

func TestItineraryService_UpdateStep(t *testing.T) {
	t.Run("merges over the stored step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		addedAt := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		steps := []models.ItineraryStep{{
			ID:       "s1",
			Name:     "Old name",
			Category: models.StepCategoryOther,
			AddedBy:  "uid-1",
			AddedAt:  addedAt,
		}}

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(steps), nil)
		mockRepo.EXPECT().
			ReplaceItinerary(gomock.Any(), "trip-1", gomock.Any()).
			Return(nil)

		service := NewItineraryService(mockRepo)
		step, err := service.UpdateStep(context.Background(), "trip-1", "s1", "uid-2", stepRequest())

		require.NoError(t, err)
		assert.Equal(t, "s1", step.ID)
		assert.Equal(t, "Tram 28 ride", step.Name)
		assert.Equal(t, "uid-1", step.AddedBy)
		assert.Equal(t, addedAt, step.AddedAt)
		assert.NotNil(t, step.UpdatedAt)
	})

	t.Run("returns error for unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(nil), nil)

		service := NewItineraryService(mockRepo)
		step, err := service.UpdateStep(context.Background(), "trip-1", "missing", "uid-1", stepRequest())

		assert.Nil(t, step)
		assert.Equal(t, apperrors.ErrStepNotFound, err)
	})
}

func TestItineraryService_DeleteStep(t *testing.T) {
	t.Run("removes the step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		steps := []models.ItineraryStep{{ID: "s1"}, {ID: "s2"}}

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(steps), nil)
		mockRepo.EXPECT().
			ReplaceItinerary(gomock.Any(), "trip-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, remaining []models.ItineraryStep) error {
				require.Len(t, remaining, 1)
				assert.Equal(t, "s2", remaining[0].ID)
				return nil
			})

		service := NewItineraryService(mockRepo)
		err := service.DeleteStep(context.Background(), "trip-1", "s1", "uid-1")

		assert.NoError(t, err)
	})

	t.Run("is a no-op for an absent id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		steps := []models.ItineraryStep{{ID: "s1"}}

		mockRepo := repomocks.NewMockTripRepository(ctrl)
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "trip-1").
			Return(tripWithItinerary(steps), nil)
		mockRepo.EXPECT().
			ReplaceItinerary(gomock.Any(), "trip-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, remaining []models.ItineraryStep) error {
				require.Len(t, remaining, 1)
				assert.Equal(t, "s1", remaining[0].ID)
				return nil
			})

		service := NewItineraryService(mockRepo)
		err := service.DeleteStep(context.Background(), "trip-1", "absent-id", "uid-1")

		assert.NoError(t, err)
	})
}
