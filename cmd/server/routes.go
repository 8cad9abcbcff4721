package main

import (
	"codeberg.org/wayfarer/server/api/rest/auth"
	"codeberg.org/wayfarer/server/api/rest/generate"
	"codeberg.org/wayfarer/server/api/rest/health"
	"codeberg.org/wayfarer/server/api/rest/trips"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		trips.RegisterRoutes(v1, server.tripRepo)
		generate.RegisterRoutes(v1, server.services.Planner, server.tripRepo)
	}
}
