package generate

import (
	"time"

	"codeberg.org/wayfarer/server/internal/auth"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// inbound cap per client IP; the gateway's own 429 still passes through
var generateRate = limiter.Rate{
	Period: 1 * time.Minute,
	Limit:  10,
}

// registers the itinerary generation route
func RegisterRoutes(router *gin.RouterGroup, itineraryPlanner ItineraryPlanner, store TripCreator) {
	rateMiddleware := mgin.NewMiddleware(limiter.New(memory.NewStore(), generateRate))

	router.POST("/generate-itinerary",
		rateMiddleware,
		auth.AuthMiddleware(),
		Handler(itineraryPlanner, store),
	)
}
