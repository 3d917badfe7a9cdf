package reminder

import (
	"fmt"
	"time"

	assignmentRepo "studyhub/database/repository/assignment"
	reminderRepo "studyhub/database/repository/reminder"
	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo        reminderRepo.ReminderRepository
	Assignments assignmentRepo.AssignmentRepository

	// Now is the clock used for fire-time validation; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates and persists a new reminder for an owned assignment.
// The fire time must be strictly in the future; otherwise no row is written
// and a PassedOffsetError is returned.
func (s *DefaultReminderService) Create(userID, assignmentID string, offset Offset) (*models.Reminder, error) {
	if !offset.Valid() {
		return nil, fmt.Errorf("unknown reminder offset %q", offset)
	}

	a, err := s.Assignments.GetByID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment %s: %w", assignmentID, err)
	}
	if a == nil || a.UserID != userID {
		return nil, ErrAssignmentNotFound
	}

	remindAt, err := ComputeFireTime(offset, a.DueDate)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !remindAt.After(now) {
		return nil, &PassedOffsetError{Offset: offset, RemindAt: remindAt}
	}

	rem := &models.Reminder{
		ID:           uuid.NewString(),
		AssignmentID: assignmentID,
		UserID:       userID,
		RemindAt:     remindAt,
		IsNotified:   false,
		CreatedAt:    now,
	}
	if err := s.Repo.Create(rem); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return rem, nil
}

// Cancel deletes an owned reminder. The repository treats a missing row as
// success, so cancelling twice is not an error.
func (s *DefaultReminderService) Cancel(userID, reminderID string) error {
	return s.Repo.DeleteOwned(reminderID, userID)
}

// Upcoming lists the user's pending reminders with their assignment details.
// Reminders whose assignment has disappeared are omitted.
func (s *DefaultReminderService) Upcoming(userID string) ([]UpcomingReminder, error) {
	rows, err := s.Repo.ListPendingByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}

	upcoming := make([]UpcomingReminder, 0, len(rows))
	for _, rem := range rows {
		a, err := s.Assignments.GetByID(rem.AssignmentID)
		if err != nil {
			utils.GetLogger().Warn("Upcoming: failed to fetch assignment",
				zap.String("assignmentID", rem.AssignmentID), zap.Error(err))
			continue
		}
		if a == nil {
			continue
		}
		upcoming = append(upcoming, UpcomingReminder{
			Reminder:        rem,
			AssignmentTitle: a.Title,
			Subject:         a.Subject,
			DueDate:         a.DueDate,
		})
	}
	return upcoming, nil
}

// Options evaluates every offset against an owned assignment's due date.
func (s *DefaultReminderService) Options(userID, assignmentID string) ([]OptionStatus, error) {
	a, err := s.Assignments.GetByID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment %s: %w", assignmentID, err)
	}
	if a == nil || a.UserID != userID {
		return nil, ErrAssignmentNotFound
	}
	return OptionStatuses(a.DueDate, s.now()), nil
}
