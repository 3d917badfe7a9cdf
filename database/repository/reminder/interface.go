package reminderRepo

import (
	"time"

	"studyhub/models"
)

// ReminderRepository defines the store contract the reminder subsystem
// consumes: point insert, idempotent point delete, filtered due query and a
// conditional flip of the notified flag.
type ReminderRepository interface {
	// Create inserts a new reminder row with is_notified false.
	Create(rem *models.Reminder) error
	// GetByID retrieves a reminder by ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Reminder, error)
	// ListPendingByUser retrieves the user's unnotified reminders ordered by
	// remind time ascending.
	ListPendingByUser(userID string) ([]models.Reminder, error)
	// FindDueForUsers retrieves unnotified reminders whose remind time has
	// passed, restricted to the given owners.
	FindDueForUsers(userIDs []string, now time.Time) ([]models.Reminder, error)
	// MarkNotified flips is_notified to true, conditioned on it still being
	// false. Returns false when another checker instance already won the
	// update.
	MarkNotified(id string) (bool, error)
	// DeleteOwned removes a reminder if the caller owns it. Deleting an
	// absent reminder is success, not an error.
	DeleteOwned(id, userID string) error
	// DeleteByAssignment removes all reminders referencing an assignment.
	DeleteByAssignment(assignmentID string) error
	// DeleteNotifiedBefore purges notified reminders created before the
	// cutoff and returns the number removed.
	DeleteNotifiedBefore(cutoff time.Time) (int64, error)
}
