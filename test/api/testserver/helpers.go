//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"travelmate/internal/models"
	"travelmate/pkg/identity"
	"travelmate/pkg/response"
	"travelmate/test/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken issues a signed bearer token for the given user. Tokens
// come straight from the test verifier, standing in for the external
// identity provider.
func (ts *TestServer) IssueToken(t *testing.T, uid, email, name string) string {
	t.Helper()

	token, err := ts.Verifier.Issue(identity.Identity{
		Subject: uid,
		Email:   email,
		Name:    name,
	})
	require.NoError(t, err, "failed to issue test token")

	return token
}

// NewAuthenticatedUser generates a fresh uid, issues a token for it and
// syncs the profile through POST /api/auth/verify.
func (ts *TestServer) NewAuthenticatedUser(t *testing.T, name string) (uid, token string) {
	t.Helper()

	uid = uuid.NewString()
	email := fmt.Sprintf("%s@example.com", uid[:8])
	token = ts.IssueToken(t, uid, email, name)

	w := testutil.MakeAuthRequest(t, ts.Router, http.MethodPost, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "verify should return 200, got: %s", w.Body.String())

	return uid, token
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ts *TestServer) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ts.UserRepo.Upsert(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// SeedTrip directly inserts a trip into the database (bypasses API).
// The repository assigns a fresh id; read it back from the returned trip.
func (ts *TestServer) SeedTrip(t *testing.T, trip *models.Trip) *models.Trip {
	t.Helper()
	ctx := context.Background()

	err := ts.TripRepo.Create(ctx, trip)
	require.NoError(t, err, "failed to seed trip")

	return trip
}

// TripHelper provides trip-related helpers for API tests.
type TripHelper struct {
	server *TestServer
}

// NewTripHelper creates a new trip helper.
func NewTripHelper(server *TestServer) *TripHelper {
	return &TripHelper{server: server}
}

// CreateTrip creates a trip via the API and returns the response data.
func (th *TripHelper) CreateTrip(t *testing.T, token string, req models.CreateTripRequest) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/trips", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create trip should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create trip response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// CreateDefaultTrip creates a trip with default fields owned by the
// token's user and returns its id.
func (th *TripHelper) CreateDefaultTrip(t *testing.T, token, ownerUID string) string {
	t.Helper()

	start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	data := th.CreateTrip(t, token, models.CreateTripRequest{
		Name:         "Summer in Portugal",
		Description:  "Two weeks along the coast",
		Destination:  "Lisbon",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 14),
		Participants: []string{ownerUID},
	})

	return GetIDFromResponse(t, data)
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	id, ok := data["id"].(string)
	require.True(t, ok, "id should be a string in response data")
	require.NotEmpty(t, id, "id should not be empty")

	return id
}
