package notification

import "context"

// Permission is the tri-state notification permission a user's client last
// reported, plus Unsupported for deployments without a push transport.
type Permission string

const (
	PermissionDefault     Permission = "default"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnsupported Permission = "unsupported"
)

// Capability wraps the permission-gated alert primitive. Permission state is
// owned by the user's client and mirrored on the profile; the capability
// reads that mirror and delivers through FCM.
type Capability interface {
	// Supported reports whether a push transport is configured at all.
	Supported() bool
	// QueryPermission returns the user's current permission state.
	QueryPermission(ctx context.Context, userID string) (Permission, error)
	// RequestPermission nudges the user's client to prompt for permission
	// and reports whether permission is granted. Always false when the
	// capability is unsupported.
	RequestPermission(ctx context.Context, userID string) (bool, error)
	// ListGranted returns IDs of users that can currently receive alerts.
	ListGranted(ctx context.Context) ([]string, error)
	// Deliver fires a visible alert if and only if the user's permission is
	// granted; otherwise it silently does nothing. A second delivery with
	// the same dedupeKey replaces the first rather than stacking.
	Deliver(ctx context.Context, userID, title, body, dedupeKey string) error
}
