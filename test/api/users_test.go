//go:build api

package api

import (
	"net/http"
	"testing"

	"travelmate/test/api/testserver"
	"travelmate/test/fixtures"
	"travelmate/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchUsers tests the GET /api/users/search endpoint.
func TestSearchUsers(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	_, token := testServer.NewAuthenticatedUser(t, "Searcher")

	t.Run("success - finds user by exact email", func(t *testing.T) {
		seeded := testServer.SeedUser(t, fixtures.NewUser().
			WithEmail("findme@example.com").
			WithName("Find Me").
			BuildPtr())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/search?email=findme@example.com", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		assert.True(t, resp.Success)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, seeded.UID, resp.Data[0]["uid"])
		assert.Equal(t, "Find Me", resp.Data[0]["name"])
		assert.Equal(t, "findme@example.com", resp.Data[0]["email"])
	})

	t.Run("success - empty list for unknown email", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/search?email=nobody@example.com", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Data)
	})

	t.Run("error - missing email parameter", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/search", token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unauthenticated", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/users/search?email=findme@example.com", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestGetUser tests the GET /api/users/:userId endpoint.
func TestGetUser(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	_, token := testServer.NewAuthenticatedUser(t, "Viewer")

	t.Run("success - public profile hides the email", func(t *testing.T) {
		seeded := testServer.SeedUser(t, fixtures.NewUser().
			WithEmail("hidden@example.com").
			WithName("Other User").
			BuildPtr())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/"+seeded.UID, token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, seeded.UID, resp.Data["uid"])
		assert.Equal(t, "Other User", resp.Data["name"])

		_, hasEmail := resp.Data["email"]
		assert.False(t, hasEmail, "public profiles never expose the email")
	})

	t.Run("error - unknown user", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/does-not-exist", token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestGetUserTrips tests the GET /api/users/:userId/trips endpoint.
func TestGetUserTrips(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	tripHelper := testserver.NewTripHelper(testServer)

	t.Run("success - lists own trips", func(t *testing.T) {
		uid, token := testServer.NewAuthenticatedUser(t, "Trip Lister")
		tripID := tripHelper.CreateDefaultTrip(t, token, uid)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/"+uid+"/trips", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, tripID, resp.Data[0]["id"])
	})

	t.Run("error - cannot list another user's trips", func(t *testing.T) {
		_, token := testServer.NewAuthenticatedUser(t, "Nosy User")
		otherUID, _ := testServer.NewAuthenticatedUser(t, "Other User")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/"+otherUID+"/trips", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
