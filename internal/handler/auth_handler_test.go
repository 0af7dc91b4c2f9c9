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
	"travelmate/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Verify(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		subject        string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:    "successful verify upserts the profile",
			subject: "uid-1",
			mockSetup: func(m *mocks.MockUserService) {
				m.EnsureProfileFunc = func(ctx context.Context, id identity.Identity) (*models.User, error) {
					assert.Equal(t, "uid-1", id.Subject)
					return &models.User{
						UID:       id.Subject,
						Email:     id.Email,
						Name:      id.Name,
						UpdatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "uid-1", data["uid"])
				assert.Equal(t, "uid-1@example.com", data["email"])
			},
		},
		{
			name:           "missing identity",
			subject:        "",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "internal server error",
			subject: "uid-1",
			mockSetup: func(m *mocks.MockUserService) {
				m.EnsureProfileFunc = func(ctx context.Context, id identity.Identity) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)

			router := gin.New()
			if tt.subject != "" {
				router.POST("/auth/verify", setIdentity(tt.subject), handler.Verify)
			} else {
				router.POST("/auth/verify", handler.Verify)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/verify", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_GetProfile(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful get profile",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, uid string) (*models.User, error) {
					assert.Equal(t, "uid-1", uid)
					return &models.User{
						UID:         uid,
						Email:       "uid-1@example.com",
						Name:        "Test User",
						Preferences: map[string]interface{}{"currency": "EUR"},
						UpdatedAt:   now,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				prefs := data["preferences"].(map[string]interface{})
				assert.Equal(t, "EUR", prefs["currency"])
			},
		},
		{
			name: "profile not found",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, uid string) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal server error",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetProfileFunc = func(ctx context.Context, uid string) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)

			router := gin.New()
			router.GET("/auth/profile", setIdentity("uid-1"), handler.GetProfile)

			req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful update profile",
			body: models.UpdateProfileRequest{
				Name:        "Jean Dupont",
				Preferences: map[string]interface{}{"currency": "EUR"},
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateProfileFunc = func(ctx context.Context, uid string, req *models.UpdateProfileRequest) (*models.User, error) {
					return &models.User{
						UID:         uid,
						Name:        req.Name,
						Preferences: req.Preferences,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "Jean Dupont", data["name"])
			},
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "name too short",
			body:           models.UpdateProfileRequest{Name: "J"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "profile not found",
			body: models.UpdateProfileRequest{Name: "Jean Dupont"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateProfileFunc = func(ctx context.Context, uid string, req *models.UpdateProfileRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService)

			router := gin.New()
			router.PUT("/auth/profile", setIdentity("uid-1"), handler.UpdateProfile)

			req := httptest.NewRequest(http.MethodPut, "/auth/profile", bytes.NewBuffer(marshalBody(tt.body)))
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
