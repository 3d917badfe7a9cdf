package assignment

import (
	"time"

	assignmentRepo "studyhub/database/repository/assignment"
	reminderRepo "studyhub/database/repository/reminder"
	"studyhub/models"
)

type AssignmentService interface {
	Create(userID string, req CreateRequest) (*models.Assignment, error)
	GetByID(userID, assignmentID string) (*models.Assignment, error)
	ListByUser(userID string) ([]models.Assignment, error)
	Update(userID, assignmentID string, req UpdateRequest) (*models.Assignment, error)
	SetStatus(userID, assignmentID, status string) error
	Delete(userID, assignmentID string) error
}

// DefaultAssignmentService is the production implementation.
type DefaultAssignmentService struct {
	Repo      assignmentRepo.AssignmentRepository
	Reminders reminderRepo.ReminderRepository
}

// CreateRequest carries the fields a new assignment is created from.
type CreateRequest struct {
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
}

// UpdateRequest carries the mutable assignment fields. Nil pointers leave
// the stored value unchanged.
type UpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Subject     *string    `json:"subject,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}
