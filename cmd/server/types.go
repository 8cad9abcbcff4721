package main

import (
	"codeberg.org/wayfarer/server/internal/config"
	"codeberg.org/wayfarer/server/internal/llm"
	"codeberg.org/wayfarer/server/internal/planner"
	"codeberg.org/wayfarer/server/wayfarer/trips"
	"codeberg.org/wayfarer/server/wayfarer/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	userRepo *users.Repository
	tripRepo *trips.Repository
	services *Services
	router   *gin.Engine
}

// holds all external service clients
type Services struct {
	Planner *planner.Planner
	Gateway llm.ChatCompleter
}
