package user

import (
	userRepo "studyhub/database/repository/user"
	"studyhub/models"
)

type UserService interface {
	// Registration and authentication
	RegisterUser(req RegistrationRequest) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	RevokeUserAuthToken(userID, tokenHash string) error
	RevokeAllSessions(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error

	// Notification settings
	UpdateFCMToken(userID, token string) error
	UpdateNotificationPermission(userID, permission string) error

	// Admin
	GetAllUsers() ([]models.User, error)
	SetUserRole(userID, role string) (*models.User, error)
	CountUsers() (int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the fields a new account is created from.
type RegistrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	College  string `json:"college,omitempty"`
	Course   string `json:"course,omitempty"`
	Semester string `json:"semester,omitempty"`
}

// ProfileUpdateRequest carries the mutable profile fields. Nil pointers
// leave the stored value unchanged.
type ProfileUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	College   *string `json:"college,omitempty"`
	Course    *string `json:"course,omitempty"`
	Semester  *string `json:"semester,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
