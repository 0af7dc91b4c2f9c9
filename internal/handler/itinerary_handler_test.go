package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"
	"travelmate/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func validStepRequest() models.ItineraryStepRequest {
	lat := 38.7223
	lng := -9.1393
	start := time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)
	return models.ItineraryStepRequest{
		Name: "Tram 28 ride",
		Location: &models.LocationRequest{
			Lat:     &lat,
			Lng:     &lng,
			Address: "Praça do Comércio, Lisboa",
		},
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
		Category:  models.StepCategoryActivity,
	}
}

func TestNewItineraryHandler(t *testing.T) {
	mockService := &mocks.MockItineraryService{}
	handler := NewItineraryHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestItineraryHandler_ListSteps(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockItineraryService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful list steps",
			mockSetup: func(m *mocks.MockItineraryService) {
				m.ListStepsFunc = func(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error) {
					assert.Equal(t, "trip-1", tripID)
					return []models.ItineraryStep{
						{ID: "step-1", Name: "Tram 28 ride", AddedBy: subject, AddedAt: now},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].([]interface{})
				assert.Len(t, data, 1)
			},
		},
		{
			name: "trip not found",
			mockSetup: func(m *mocks.MockItineraryService) {
				m.ListStepsFunc = func(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error) {
					return nil, apperrors.ErrTripNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "caller is not a participant",
			mockSetup: func(m *mocks.MockItineraryService) {
				m.ListStepsFunc = func(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error) {
					return nil, apperrors.ErrNotParticipant
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockItineraryService{}
			tt.mockSetup(mockService)

			handler := NewItineraryHandler(mockService)

			router := gin.New()
			router.GET("/trips/:tripId/itinerary", setIdentity("uid-1"), handler.ListSteps)

			req := httptest.NewRequest(http.MethodGet, "/trips/trip-1/itinerary", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestItineraryHandler_AddStep(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		subject        string
		body           interface{}
		mockSetup      func(*mocks.MockItineraryService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:    "successful add step",
			subject: "uid-1",
			body:    validStepRequest(),
			mockSetup: func(m *mocks.MockItineraryService) {
				m.AddStepFunc = func(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
					return &models.ItineraryStep{
						ID:        "step-1",
						Name:      req.Name,
						StartDate: req.StartDate,
						EndDate:   req.EndDate,
						Category:  req.Category,
						AddedBy:   subject,
						AddedAt:   now,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "step-1", data["id"])
				assert.Equal(t, "uid-1", data["addedBy"])
			},
		},
		{
			name:           "missing identity",
			subject:        "",
			body:           validStepRequest(),
			mockSetup:      func(m *mocks.MockItineraryService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON body",
			subject:        "uid-1",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockItineraryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "missing location",
			subject: "uid-1",
			body: func() models.ItineraryStepRequest {
				r := validStepRequest()
				r.Location = nil
				return r
			}(),
			mockSetup:      func(m *mocks.MockItineraryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "unknown category",
			subject: "uid-1",
			body: func() models.ItineraryStepRequest {
				r := validStepRequest()
				r.Category = "sightseeing"
				return r
			}(),
			mockSetup:      func(m *mocks.MockItineraryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "caller is not a participant",
			subject: "uid-3",
			body:    validStepRequest(),
			mockSetup: func(m *mocks.MockItineraryService) {
				m.AddStepFunc = func(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
					return nil, apperrors.ErrNotParticipant
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "internal server error",
			subject: "uid-1",
			body:    validStepRequest(),
			mockSetup: func(m *mocks.MockItineraryService) {
				m.AddStepFunc = func(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockItineraryService{}
			tt.mockSetup(mockService)

			handler := NewItineraryHandler(mockService)

			router := gin.New()
			if tt.subject != "" {
				router.POST("/trips/:tripId/itinerary", setIdentity(tt.subject), handler.AddStep)
			} else {
				router.POST("/trips/:tripId/itinerary", handler.AddStep)
			}

			req := httptest.NewRequest(http.MethodPost, "/trips/trip-1/itinerary", bytes.NewBuffer(marshalBody(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestItineraryHandler_UpdateStep(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockItineraryService)
		expectedStatus int
	}{
		{
			name: "successful update step",
			body: validStepRequest(),
			mockSetup: func(m *mocks.MockItineraryService) {
				m.UpdateStepFunc = func(ctx context.Context, tripID, stepID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
					assert.Equal(t, "step-1", stepID)
					return &models.ItineraryStep{ID: stepID, Name: req.Name}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockItineraryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "step not found",
			body: validStepRequest(),
			mockSetup: func(m *mocks.MockItineraryService) {
				m.UpdateStepFunc = func(ctx context.Context, tripID, stepID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
					return nil, apperrors.ErrStepNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockItineraryService{}
			tt.mockSetup(mockService)

			handler := NewItineraryHandler(mockService)

			router := gin.New()
			router.PUT("/trips/:tripId/itinerary/:stepId", setIdentity("uid-1"), handler.UpdateStep)

			req := httptest.NewRequest(http.MethodPut, "/trips/trip-1/itinerary/step-1", bytes.NewBuffer(marshalBody(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestItineraryHandler_DeleteStep(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockItineraryService)
		expectedStatus int
	}{
		{
			name: "successful delete step",
			mockSetup: func(m *mocks.MockItineraryService) {
				m.DeleteStepFunc = func(ctx context.Context, tripID, stepID, subject string) error {
					return nil
				}
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "trip not found",
			mockSetup: func(m *mocks.MockItineraryService) {
				m.DeleteStepFunc = func(ctx context.Context, tripID, stepID, subject string) error {
					return apperrors.ErrTripNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "caller is not a participant",
			mockSetup: func(m *mocks.MockItineraryService) {
				m.DeleteStepFunc = func(ctx context.Context, tripID, stepID, subject string) error {
					return apperrors.ErrNotParticipant
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockItineraryService{}
			tt.mockSetup(mockService)

			handler := NewItineraryHandler(mockService)

			router := gin.New()
			router.DELETE("/trips/:tripId/itinerary/:stepId", setIdentity("uid-1"), handler.DeleteStep)

			req := httptest.NewRequest(http.MethodDelete, "/trips/trip-1/itinerary/step-1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
