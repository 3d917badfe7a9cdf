// models/user.go
package models

import "time"

// Roles assignable to a profile.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Notification permission states, mirroring the browser permission model the
// client reports back to the server.
const (
	PermissionDefault = "default"
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// User represents a student or admin profile.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	College      string `bson:"college,omitempty" json:"college,omitempty"`
	Course       string `bson:"course,omitempty" json:"course,omitempty"`
	Semester     string `bson:"semester,omitempty" json:"semester,omitempty"`
	AvatarURL    string `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Role         string `bson:"role" json:"role"`

	// Push delivery state. FCMToken is the registration token of the user's
	// most recent client; NotificationPermission is the browser permission
	// state that client last reported.
	FCMToken               string `bson:"fcm_token,omitempty" json:"-"`
	NotificationPermission string `bson:"notification_permission" json:"notificationPermission"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
