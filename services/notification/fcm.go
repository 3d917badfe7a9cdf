package notification

import (
	"context"
	"fmt"

	userRepo "studyhub/database/repository/user"
	"studyhub/models"
	"studyhub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMCapability is the production Capability backed by Firebase Cloud
// Messaging webpush. The notification tag carries the dedupe key so repeated
// deliveries coalesce in the user's browser exactly like the Notification
// API's tag option.
type FCMCapability struct {
	Users  userRepo.UserRepository
	Client *messaging.Client
}

func NewFCMCapability(users userRepo.UserRepository, client *messaging.Client) *FCMCapability {
	return &FCMCapability{Users: users, Client: client}
}

// Supported reports whether an FCM client is configured.
func (c *FCMCapability) Supported() bool {
	return c.Client != nil
}

// QueryPermission returns the permission state the user's client last reported.
func (c *FCMCapability) QueryPermission(ctx context.Context, userID string) (Permission, error) {
	if !c.Supported() {
		return PermissionUnsupported, nil
	}
	u, err := c.Users.GetByID(userID)
	if err != nil {
		return PermissionDefault, fmt.Errorf("QueryPermission: could not fetch user %s: %w", userID, err)
	}
	if u == nil {
		return PermissionDefault, fmt.Errorf("QueryPermission: user %s not found", userID)
	}
	switch u.NotificationPermission {
	case models.PermissionGranted:
		return PermissionGranted, nil
	case models.PermissionDenied:
		return PermissionDenied, nil
	default:
		return PermissionDefault, nil
	}
}

// RequestPermission sends a data-only push asking the user's client to raise
// the browser permission prompt; the client reports the outcome back through
// the permission endpoint. Returns true only when permission is already granted.
func (c *FCMCapability) RequestPermission(ctx context.Context, userID string) (bool, error) {
	if !c.Supported() {
		return false, nil
	}
	perm, err := c.QueryPermission(ctx, userID)
	if err != nil {
		return false, err
	}
	switch perm {
	case PermissionGranted:
		return true, nil
	case PermissionDenied:
		return false, nil
	}

	u, err := c.Users.GetByID(userID)
	if err != nil {
		return false, fmt.Errorf("RequestPermission: could not fetch user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return false, nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Data:  map[string]string{"type": "permission_request"},
	}
	if _, err := c.Client.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("RequestPermission: failed to nudge client", zap.String("userID", userID), zap.Error(err))
	}
	return false, nil
}

// ListGranted returns the users eligible for delivery.
func (c *FCMCapability) ListGranted(ctx context.Context) ([]string, error) {
	if !c.Supported() {
		return nil, nil
	}
	ids, err := c.Users.ListNotifiableIDs()
	if err != nil {
		return nil, fmt.Errorf("ListGranted: %w", err)
	}
	return ids, nil
}

// Deliver sends a webpush notification. Not-granted permission and missing
// tokens are silent no-ops; the alert is fire-and-forget.
func (c *FCMCapability) Deliver(ctx context.Context, userID, title, body, dedupeKey string) error {
	if !c.Supported() {
		return nil
	}
	u, err := c.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("Deliver: could not fetch user %s: %w", userID, err)
	}
	if u == nil || u.NotificationPermission != models.PermissionGranted || u.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{"dedupeKey": dedupeKey},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: title,
				Body:  body,
				Tag:   dedupeKey,
				Icon:  "/favicon.ico",
			},
		},
	}

	if _, err := c.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("Deliver: failed to send FCM message: %w", err)
	}
	return nil
}
