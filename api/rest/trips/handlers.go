package trips

import (
	"errors"
	"net/http"

	"codeberg.org/wayfarer/server/internal/auth"
	apierrors "codeberg.org/wayfarer/server/internal/errors"
	"codeberg.org/wayfarer/server/wayfarer/trips"
	"github.com/gin-gonic/gin"
)

// number of day previews on a dashboard card
const highlightLimit = 3

// ListTripsHandler lists all trips for the authenticated user, newest first.
// The dashboard re-fetches this list in full after every create or delete.
func ListTripsHandler(store TripStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		tripsList, err := store.List(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "failed to list trips", err)
			return
		}

		c.JSON(http.StatusOK, TripsListResponse{Trips: tripsList})
	}
}

// GetTripHandler gets a single trip by ID
func GetTripHandler(store TripStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		tripID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		trip, err := store.Get(c.Request.Context(), tripID, userID)
		if err != nil {
			if errors.Is(err, trips.ErrTripNotFound) {
				apierrors.NotFound(c, "trip")
				return
			}

			apierrors.InternalError(c, "failed to get trip", err)
			return
		}

		c.JSON(http.StatusOK, TripResponse{Trip: trip})
	}
}

// GetTripHighlightsHandler returns per-day preview lines for a trip card
func GetTripHighlightsHandler(store TripStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		tripID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		trip, err := store.Get(c.Request.Context(), tripID, userID)
		if err != nil {
			if errors.Is(err, trips.ErrTripNotFound) {
				apierrors.NotFound(c, "trip")
				return
			}

			apierrors.InternalError(c, "failed to get trip", err)
			return
		}

		totalDays := len(trip.Itinerary.Document().Days)
		remaining := totalDays - highlightLimit
		if remaining < 0 {
			remaining = 0
		}

		c.JSON(http.StatusOK, HighlightsResponse{
			Highlights:    trip.Highlights(highlightLimit),
			RemainingDays: remaining,
		})
	}
}

// DeleteTripHandler removes a trip outright. Deletion is scoped to the
// owning user; on failure the row stays in place and the caller shows an
// error instead of removing anything optimistically.
func DeleteTripHandler(store TripStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		tripID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		err := store.Delete(c.Request.Context(), tripID, userID)
		if err != nil {
			if errors.Is(err, trips.ErrTripNotFound) {
				apierrors.NotFound(c, "trip")
				return
			}

			apierrors.InternalError(c, "failed to delete trip", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "trip deleted"})
	}
}
