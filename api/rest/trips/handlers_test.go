package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/wayfarer/server/wayfarer/trips"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID   = "user-123"
	tripAID   = "11111111-1111-1111-1111-111111111111"
	tripBID   = "22222222-2222-2222-2222-222222222222"
	unknownID = "99999999-9999-9999-9999-999999999999"
)

// in-memory TripStore keyed by (tripID, userID)
type mockStore struct {
	byID    map[string]*trips.Trip
	ordered []trips.Trip
	deleted []string
}

func (m *mockStore) List(_ context.Context, userID string) ([]trips.Trip, error) {
	out := []trips.Trip{}
	for _, trip := range m.ordered {
		if trip.UserID == userID {
			out = append(out, trip)
		}
	}

	return out, nil
}

func (m *mockStore) Get(_ context.Context, tripID, userID string) (*trips.Trip, error) {
	trip, ok := m.byID[tripID]
	if !ok || trip.UserID != userID {
		return nil, trips.ErrTripNotFound
	}

	return trip, nil
}

func (m *mockStore) Delete(_ context.Context, tripID, userID string) error {
	trip, ok := m.byID[tripID]
	if !ok || trip.UserID != userID {
		return trips.ErrTripNotFound
	}

	m.deleted = append(m.deleted, tripID)
	delete(m.byID, tripID)

	return nil
}

func newStore(tripsList ...trips.Trip) *mockStore {
	store := &mockStore{byID: map[string]*trips.Trip{}, ordered: tripsList}
	for i := range tripsList {
		store.byID[tripsList[i].ID] = &tripsList[i]
	}

	return store
}

func sampleTrip(id, userID string, createdAt time.Time) trips.Trip {
	start, _ := trips.ParseDate("2025-05-01")
	end, _ := trips.ParseDate("2025-05-03")

	return trips.Trip{
		ID:          id,
		UserID:      userID,
		Destination: "Tokyo, Japan",
		Interests:   []string{"Food", "Culture"},
		StartDate:   start,
		EndDate:     end,
		Itinerary: trips.ItineraryDocument(`{
			"days": [
				{"day": 1, "activities": [{"name": "Senso-ji Temple"}]},
				{"day": 2, "activities": [{"name": "Tsukiji Market"}]},
				{"day": 3, "activities": [{"name": "Shibuya Crossing"}]},
				{"day": 4, "activities": [{"name": "Day trip to Hakone"}]}
			]
		}`),
		CreatedAt: createdAt,
	}
}

func setupRouter(store TripStore, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/trips", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	group.GET("", ListTripsHandler(store))
	group.GET("/:id", GetTripHandler(store))
	group.GET("/:id/highlights", GetTripHighlightsHandler(store))
	group.DELETE("/:id", DeleteTripHandler(store))

	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)

	return w
}

func TestListTrips_EmptyState(t *testing.T) {
	router := setupRouter(newStore(), ownerID)

	w := doRequest(router, "GET", "/trips")

	require.Equal(t, http.StatusOK, w.Code)
	// empty list, not null
	assert.JSONEq(t, `{"trips": []}`, w.Body.String())
}

func TestListTrips_OnlyOwnTrips(t *testing.T) {
	now := time.Now()
	store := newStore(
		sampleTrip(tripBID, ownerID, now),
		sampleTrip(tripAID, "someone-else", now.Add(-time.Hour)),
	)
	router := setupRouter(store, ownerID)

	w := doRequest(router, "GET", "/trips")

	require.Equal(t, http.StatusOK, w.Code)

	var resp TripsListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Trips, 1)
	assert.Equal(t, tripBID, resp.Trips[0].ID)
}

func TestListTrips_Unauthenticated(t *testing.T) {
	router := setupRouter(newStore(), "")

	w := doRequest(router, "GET", "/trips")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetTrip(t *testing.T) {
	store := newStore(sampleTrip(tripAID, ownerID, time.Now()))
	router := setupRouter(store, ownerID)

	w := doRequest(router, "GET", "/trips/"+tripAID)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TripResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Trip)
	assert.Equal(t, "Tokyo, Japan", resp.Trip.Destination)
	assert.Equal(t, "2025-05-01", resp.Trip.StartDate.Format("2006-01-02"))
}

func TestGetTrip_NotFound(t *testing.T) {
	router := setupRouter(newStore(), ownerID)

	w := doRequest(router, "GET", "/trips/"+unknownID)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTrip_OtherUsersTripHidden(t *testing.T) {
	store := newStore(sampleTrip(tripAID, "someone-else", time.Now()))
	router := setupRouter(store, ownerID)

	w := doRequest(router, "GET", "/trips/"+tripAID)

	// same 404 as a missing trip, no ownership leak
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTrip_InvalidID(t *testing.T) {
	router := setupRouter(newStore(), ownerID)

	// a malformed id cannot name a trip, same 404 as a missing one
	w := doRequest(router, "GET", "/trips/not-a-uuid")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTripHighlights(t *testing.T) {
	store := newStore(sampleTrip(tripAID, ownerID, time.Now()))
	router := setupRouter(store, ownerID)

	w := doRequest(router, "GET", "/trips/"+tripAID+"/highlights")

	require.Equal(t, http.StatusOK, w.Code)

	var resp HighlightsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Highlights, 3)
	assert.Equal(t, "Senso-ji Temple", resp.Highlights[0].Label)
	assert.Equal(t, 1, resp.RemainingDays)
}

func TestDeleteTrip(t *testing.T) {
	store := newStore(sampleTrip(tripAID, ownerID, time.Now()))
	router := setupRouter(store, ownerID)

	w := doRequest(router, "DELETE", "/trips/"+tripAID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{tripAID}, store.deleted)

	// the row is gone for subsequent reads
	w = doRequest(router, "GET", "/trips/"+tripAID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTrip_OtherUsersTrip(t *testing.T) {
	store := newStore(sampleTrip(tripAID, "someone-else", time.Now()))
	router := setupRouter(store, ownerID)

	w := doRequest(router, "DELETE", "/trips/"+tripAID)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.deleted)
}

func TestDeleteTrip_NotFound(t *testing.T) {
	router := setupRouter(newStore(), ownerID)

	w := doRequest(router, "DELETE", "/trips/"+unknownID)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
