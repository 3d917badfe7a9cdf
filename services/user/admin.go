package user

import (
	"fmt"
	"time"

	"studyhub/models"
)

// GetAllUsers returns every profile. Admin console only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetUserRole grants or revokes the admin role.
func (s *DefaultUserService) SetUserRole(userID, role string) (*models.User, error) {
	if role != models.RoleStudent && role != models.RoleAdmin {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, fmt.Errorf("user not found")
	}
	if err := s.Repo.UpdateSetDocument(userID, map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	userRec.Role = role
	return userRec, nil
}

// CountUsers returns the total number of profiles for the admin dashboard.
func (s *DefaultUserService) CountUsers() (int64, error) {
	return s.Repo.Count()
}
