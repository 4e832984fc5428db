package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/internal/domain/identity"
)

// LoginInput carries login credentials
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the issued token pair and user summary
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// UserInfo is the user summary embedded in auth responses
type UserInfo struct {
	ID       uuid.UUID     `json:"id"`
	Username string        `json:"username"`
	FullName string        `json:"full_name"`
	Email    string        `json:"email"`
	Role     identity.Role `json:"role"`
}

// CreateUserRequest carries fields for creating a user account
type CreateUserRequest struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     identity.Role
}

// UpdateUserRequest carries fields for updating a user profile.
// Nil pointers leave the current value untouched.
type UpdateUserRequest struct {
	FullName *string
	Email    *string
	Status   *identity.UserStatus
}

// ChangePasswordRequest carries a self-service password change
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// UserListFilter carries list query options for users
type UserListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Role     string
	Status   string
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID        uuid.UUID           `json:"id"`
	Username  string              `json:"username"`
	FullName  string              `json:"full_name"`
	Email     string              `json:"email"`
	Role      identity.Role       `json:"role"`
	Status    identity.UserStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ToUserResponse converts a domain user to its API representation
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserInfo converts a domain user to the auth response summary
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}
