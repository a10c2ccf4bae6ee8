package dto

import (
	"github.com/yukikurage/todo-api/internal/models"
)

// RegisterRequest is the body of POST /register.
// Name is accepted as an alias for Username.
type RegisterRequest struct {
	Username string `json:"username" binding:"max=80"`
	Name     string `json:"name" binding:"max=80"`
	Email    string `json:"email" binding:"required,max=120"`
	Password string `json:"password" binding:"required"`
}

// DisplayName returns Username, falling back to Name
func (r RegisterRequest) DisplayName() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// UserDTO represents the current user in API responses
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// MessageResponse is a body with only a status message
type MessageResponse struct {
	Message string `json:"message"`
}
