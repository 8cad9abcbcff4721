package trips

import (
	"codeberg.org/wayfarer/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers trip routes; every operation requires an authenticated session
func RegisterRoutes(router *gin.RouterGroup, store TripStore) {
	tripsGroup := router.Group("/trips")
	tripsGroup.Use(auth.AuthMiddleware())
	{
		tripsGroup.GET("", ListTripsHandler(store))
		tripsGroup.GET("/:id", GetTripHandler(store))
		tripsGroup.GET("/:id/highlights", GetTripHighlightsHandler(store))
		tripsGroup.DELETE("/:id", DeleteTripHandler(store))
	}
}
