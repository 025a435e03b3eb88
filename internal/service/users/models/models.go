package models

import (
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// RegisterRequest creates a new client account
type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string
	Password string
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registeredAt"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

// FromUser converts a domain user into a response
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         string(u.Role()),
		RegisteredAt: u.RegisteredAt.Format(time.RFC3339),
	}
}
