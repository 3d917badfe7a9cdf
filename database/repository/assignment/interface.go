package assignmentRepo

import "studyhub/models"

// AssignmentRepository defines methods for assignment data access.
type AssignmentRepository interface {
	// Create inserts a new assignment record.
	Create(a *models.Assignment) error
	// GetByID retrieves an assignment by ID. Returns (nil, nil) when absent
	// so the reminder checker can skip orphaned reminders without treating
	// the miss as a failure.
	GetByID(id string) (*models.Assignment, error)
	// ListByUser retrieves the user's assignments ordered by due date.
	ListByUser(userID string) ([]models.Assignment, error)
	// Update modifies an existing assignment record.
	Update(a *models.Assignment) error
	// SetStatus updates the status of an owned assignment.
	SetStatus(id, userID, status string) error
	// DeleteOwned removes an assignment if the user owns it.
	DeleteOwned(id, userID string) error
	// SearchByUser finds the user's assignments whose title or subject
	// matches the query (case-insensitive).
	SearchByUser(userID, query string) ([]models.Assignment, error)
}
