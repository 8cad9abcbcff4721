package auth

import (
	"codeberg.org/wayfarer/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers authentication routes
func RegisterRoutes(router *gin.RouterGroup, userRepo UserStore) {
	router.POST("/auth/register", RegisterHandler(userRepo))
	router.POST("/auth/login", LoginHandler(userRepo))
	router.GET("/auth/me", auth.AuthMiddleware(), GetCurrentUserHandler(userRepo))
}
