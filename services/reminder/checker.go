package reminder

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	assignmentRepo "studyhub/database/repository/assignment"
	reminderRepo "studyhub/database/repository/reminder"
	"studyhub/services/notification"
	"studyhub/utils"

	"go.uber.org/zap"
)

// DefaultCheckInterval is how often the checker re-evaluates due reminders.
const DefaultCheckInterval = 60 * time.Second

// Checker periodically queries for due, unnotified reminders and delivers
// them through the notification capability. Delivery is best-effort and
// at-least-once: transient failures leave the reminder unnotified and the
// next cycle reconsiders it.
type Checker struct {
	Reminders   reminderRepo.ReminderRepository
	Assignments assignmentRepo.AssignmentRepository
	Notifier    notification.Capability
	Interval    time.Duration

	// Now is the clock used for the due query; nil means time.Now.
	Now func() time.Time

	inProgress atomic.Bool
	stopped    chan bool
}

func NewChecker(
	reminders reminderRepo.ReminderRepository,
	assignments assignmentRepo.AssignmentRepository,
	notifier notification.Capability,
	interval time.Duration,
) *Checker {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Checker{
		Reminders:   reminders,
		Assignments: assignments,
		Notifier:    notifier,
		Interval:    interval,
		stopped:     make(chan bool, 1),
	}
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Start runs an immediate cycle and then one per interval until Stop is
// called.
func (c *Checker) Start() {
	ticker := time.NewTicker(c.Interval)

	go func() {
		ctx := context.Background()
		c.RunCycle(ctx)
		for {
			select {
			case <-ticker.C:
				c.RunCycle(ctx)
			case <-c.stopped:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop ends the polling loop. An in-flight cycle is allowed to finish.
func (c *Checker) Stop() {
	select {
	case c.stopped <- true:
	default:
	}
}

// RunCycle executes one check cycle. A cycle still running when the next
// tick arrives causes that tick to be dropped rather than overlapping.
func (c *Checker) RunCycle(ctx context.Context) {
	if !c.inProgress.CompareAndSwap(false, true) {
		return
	}
	defer c.inProgress.Store(false)

	logger := utils.GetLogger()

	// Without a supported capability or any granted user there is nothing
	// to deliver, so the store is not queried at all.
	if !c.Notifier.Supported() {
		return
	}
	granted, err := c.Notifier.ListGranted(ctx)
	if err != nil {
		logger.Warn("reminder checker: failed to list granted users", zap.Error(err))
		return
	}
	if len(granted) == 0 {
		return
	}

	due, err := c.Reminders.FindDueForUsers(granted, c.now())
	if err != nil {
		// Transient store failure; the next tick re-issues the query.
		logger.Warn("reminder checker: due query failed", zap.Error(err))
		return
	}

	for _, rem := range due {
		if err := c.process(ctx, rem.ID, rem.UserID, rem.AssignmentID); err != nil {
			logger.Warn("reminder checker: skipping reminder",
				zap.String("reminderID", rem.ID), zap.Error(err))
		}
	}
}

// process delivers a single due reminder and marks it notified. A missing
// assignment leaves the reminder untouched for reconsideration next cycle.
func (c *Checker) process(ctx context.Context, reminderID, userID, assignmentID string) error {
	logger := utils.GetLogger()

	a, err := c.Assignments.GetByID(assignmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch assignment %s: %w", assignmentID, err)
	}
	if a == nil {
		logger.Debug("reminder checker: assignment missing, leaving reminder pending",
			zap.String("reminderID", reminderID), zap.String("assignmentID", assignmentID))
		return nil
	}

	title := "Assignment Reminder: " + a.Title
	body := fmt.Sprintf("%s - Due: %s", a.Subject, a.DueDate.Format("Jan 2, 2006"))

	// The capability is fire-and-forget; the reminder is marked notified
	// after the attempt either way, matching the delivery contract.
	if err := c.Notifier.Deliver(ctx, userID, title, body, reminderID); err != nil {
		logger.Warn("reminder checker: delivery failed",
			zap.String("reminderID", reminderID), zap.Error(err))
	}

	won, err := c.Reminders.MarkNotified(reminderID)
	if err != nil {
		return fmt.Errorf("failed to mark reminder notified: %w", err)
	}
	if !won {
		logger.Debug("reminder checker: reminder already claimed elsewhere",
			zap.String("reminderID", reminderID))
	}
	return nil
}
