package auth

import (
	"context"

	"codeberg.org/wayfarer/server/wayfarer/users"
)

// provides user persistence operations needed by the handlers
type UserStore interface {
	Create(ctx context.Context, email, name, passwordHash string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByID(ctx context.Context, id string) (*users.User, error)
}

// RegisterRequest contains data for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=200"`
}

// LoginRequest contains credentials for an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the user plus a session token
type AuthResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// UserResponse wraps a user
type UserResponse struct {
	User *users.User `json:"user"`
}
