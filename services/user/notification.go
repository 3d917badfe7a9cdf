package user

import (
	"fmt"
	"time"

	"studyhub/models"
)

// UpdateFCMToken stores the push registration token reported by the user's
// current client. An empty token clears push delivery for the user.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	if err := s.Repo.UpdateSetDocument(userID, map[string]interface{}{
		"fcm_token":  token,
		"updated_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

// UpdateNotificationPermission records the browser permission state the
// client reported after prompting the user.
func (s *DefaultUserService) UpdateNotificationPermission(userID, permission string) error {
	switch permission {
	case models.PermissionDefault, models.PermissionGranted, models.PermissionDenied:
	default:
		return fmt.Errorf("invalid notification permission %q", permission)
	}
	if err := s.Repo.UpdateSetDocument(userID, map[string]interface{}{
		"notification_permission": permission,
		"updated_at":              time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to update notification permission: %w", err)
	}
	return nil
}
