package assignment

import (
	"errors"
	"fmt"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAssignmentNotFound is returned when the assignment does not exist or
// belongs to another user.
var ErrAssignmentNotFound = errors.New("assignment not found")

// Create stores a new assignment in the pending state.
func (s *DefaultAssignmentService) Create(userID string, req CreateRequest) (*models.Assignment, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if req.Subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}

	now := time.Now()
	a := &models.Assignment{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      models.AssignmentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return a, nil
}

// GetByID fetches an assignment owned by the user.
func (s *DefaultAssignmentService) GetByID(userID, assignmentID string) (*models.Assignment, error) {
	a, err := s.Repo.GetByID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment: %w", err)
	}
	if a == nil || a.UserID != userID {
		return nil, ErrAssignmentNotFound
	}
	return a, nil
}

// ListByUser returns the user's assignments ordered by due date.
func (s *DefaultAssignmentService) ListByUser(userID string) ([]models.Assignment, error) {
	return s.Repo.ListByUser(userID)
}

// Update applies the non-nil fields of the request to an owned assignment.
func (s *DefaultAssignmentService) Update(userID, assignmentID string, req UpdateRequest) (*models.Assignment, error) {
	a, err := s.GetByID(userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		a.Title = *req.Title
	}
	if req.Subject != nil {
		a.Subject = *req.Subject
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.DueDate != nil {
		a.DueDate = *req.DueDate
	}
	a.UpdatedAt = time.Now()

	if err := s.Repo.Update(a); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return a, nil
}

// SetStatus moves an owned assignment between pending and submitted.
func (s *DefaultAssignmentService) SetStatus(userID, assignmentID, status string) error {
	if status != models.AssignmentPending && status != models.AssignmentSubmitted {
		return fmt.Errorf("invalid status %q", status)
	}
	if _, err := s.GetByID(userID, assignmentID); err != nil {
		return err
	}
	return s.Repo.SetStatus(assignmentID, userID, status)
}

// Delete removes an owned assignment along with any reminders attached to it.
func (s *DefaultAssignmentService) Delete(userID, assignmentID string) error {
	if _, err := s.GetByID(userID, assignmentID); err != nil {
		return err
	}
	if err := s.Repo.DeleteOwned(assignmentID, userID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if err := s.Reminders.DeleteByAssignment(assignmentID); err != nil {
		// The assignment itself is gone; orphaned reminders are skipped by
		// the checker and swept by the purge job.
		utils.GetLogger().Warn("Failed to delete reminders for assignment",
			zap.String("assignmentID", assignmentID), zap.Error(err))
	}
	return nil
}
