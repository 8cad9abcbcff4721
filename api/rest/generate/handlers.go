package generate

import (
	"errors"
	"net/http"

	"codeberg.org/wayfarer/server/internal/auth"
	apierrors "codeberg.org/wayfarer/server/internal/errors"
	"codeberg.org/wayfarer/server/internal/llm"
	"codeberg.org/wayfarer/server/internal/logger"
	"codeberg.org/wayfarer/server/internal/planner"
	"codeberg.org/wayfarer/server/wayfarer/trips"
	"github.com/gin-gonic/gin"
)

// user-facing messages for the two gateway statuses that pass through
const (
	rateLimitMessage = "Rate limits exceeded, please try again later."
	paymentMessage   = "Payment required, please add credits to your AI gateway workspace."
)

// Handler generates an itinerary and persists it as a trip for the
// authenticated user. One gateway call, one insert, no retries: any failure
// along the way is terminal and nothing is written before full success.
func Handler(itineraryPlanner ItineraryPlanner, store TripCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		startDate, err := trips.ParseDate(req.StartDate)
		if err != nil {
			apierrors.BadRequest(c, "invalid startDate", err)
			return
		}

		endDate, err := trips.ParseDate(req.EndDate)
		if err != nil {
			apierrors.BadRequest(c, "invalid endDate", err)
			return
		}

		// endDate >= startDate is a client-side invariant; a reversed range
		// only shortens the advisory day count embedded in the prompt

		result, err := itineraryPlanner.Plan(c.Request.Context(), planner.PlanRequest{
			Destination: req.Destination,
			Interests:   req.Interests,
			StartDate:   startDate.Time,
			EndDate:     endDate.Time,
		})

		if err != nil {
			switch {
			case errors.Is(err, llm.ErrRateLimited):
				apierrors.TooManyRequests(c, rateLimitMessage)
			case errors.Is(err, llm.ErrPaymentRequired):
				apierrors.PaymentRequired(c, paymentMessage)
			default:
				var statusErr *llm.StatusError
				if errors.As(err, &statusErr) {
					logger.Error("gateway error",
						"status", statusErr.Code,
						"user_id", userID,
					)
				}

				apierrors.InternalError(c, "failed to generate itinerary", err)
			}

			return
		}

		trip, err := store.Insert(c.Request.Context(), userID, trips.CreateTripRequest{
			Destination: req.Destination,
			Interests:   req.Interests,
			StartDate:   startDate,
			EndDate:     endDate,
			Itinerary:   trips.ItineraryDocument(result.Raw),
		})

		if err != nil {
			apierrors.InternalError(c, "failed to save trip", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("trip generated",
			"user_id", userID,
			"destination", req.Destination,
			"days", result.Days,
			"model", result.Model,
		)

		c.JSON(http.StatusOK, Response{Trip: trip})
	}
}
