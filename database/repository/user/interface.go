package userRepo

import "studyhub/models"

// UserRepository defines methods for profile data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to a user document.
	UpdateSetDocument(id string, fields map[string]interface{}) error
	// ListNotifiableIDs returns the IDs of users whose reported notification
	// permission is granted and who have a registered FCM token.
	ListNotifiableIDs() ([]string, error)
	// Count returns the total number of users.
	Count() (int64, error)
}
