package reminder

import (
	"time"

	"studyhub/models"
)

// ReminderService defines authoring and cancellation of assignment reminders.
type ReminderService interface {
	// Create computes the fire time for the offset, validates it is strictly
	// in the future and persists the reminder.
	Create(userID, assignmentID string, offset Offset) (*models.Reminder, error)
	// Cancel deletes an owned reminder; cancelling an absent one succeeds.
	Cancel(userID, reminderID string) error
	// Upcoming lists the user's pending reminders joined with their
	// assignments for display.
	Upcoming(userID string) ([]UpcomingReminder, error)
	// Options evaluates all offsets against an owned assignment's due date.
	Options(userID, assignmentID string) ([]OptionStatus, error)
}

// UpcomingReminder is a pending reminder joined with assignment details.
type UpcomingReminder struct {
	models.Reminder
	AssignmentTitle string    `json:"assignmentTitle"`
	Subject         string    `json:"subject"`
	DueDate         time.Time `json:"dueDate"`
}
