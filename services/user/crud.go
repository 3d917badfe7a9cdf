package user

import (
	"fmt"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"go.uber.org/zap"
)

// GetUserByID fetches a profile by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return userRec, nil
}

// UpdateProfile applies the non-nil fields of the request to the profile.
func (s *DefaultUserService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	update := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		update["name"] = *req.Name
	}
	if req.College != nil {
		update["college"] = *req.College
	}
	if req.Course != nil {
		update["course"] = *req.Course
	}
	if req.Semester != nil {
		update["semester"] = *req.Semester
	}
	if req.AvatarURL != nil {
		update["avatar_url"] = *req.AvatarURL
	}
	if len(update) == 0 {
		return s.GetUserByID(userID)
	}
	update["updated_at"] = time.Now()

	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes the profile and revokes all of its sessions.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := s.RevokeAllSessions(userID); err != nil {
		utils.GetLogger().Warn("Failed to revoke sessions for deleted user",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
