package auth

import (
	"errors"
	"net/http"

	"codeberg.org/wayfarer/server/internal/auth"
	apierrors "codeberg.org/wayfarer/server/internal/errors"
	"codeberg.org/wayfarer/server/wayfarer/users"
	"github.com/gin-gonic/gin"
)

// RegisterHandler creates an account and issues a session token
func RegisterHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		hash, err := users.HashPassword(req.Password)
		if err != nil {
			apierrors.InternalError(c, "failed to create account", err)
			return
		}

		user, err := userRepo.Create(c.Request.Context(), req.Email, req.Name, hash)
		if err != nil {
			if errors.Is(err, users.ErrEmailTaken) {
				apierrors.BadRequest(c, "email already registered", nil)
				return
			}

			apierrors.InternalError(c, "failed to create account", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{User: user, Token: token})
	}
}

// LoginHandler validates credentials and issues a session token
func LoginHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				apierrors.Unauthorized(c, "invalid email or password")
				return
			}

			apierrors.InternalError(c, "failed to log in", err)
			return
		}

		if !users.VerifyPassword(user.PasswordHash, req.Password) {
			apierrors.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
	}
}

// GetCurrentUserHandler returns the authenticated user's profile
func GetCurrentUserHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			apierrors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
