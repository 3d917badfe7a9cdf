package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/models"
)

func newTestService(now time.Time) (*DefaultReminderService, *fakeReminderRepo, *fakeAssignmentRepo) {
	reminders := newFakeReminderRepo()
	assignments := newFakeAssignmentRepo()
	svc := &DefaultReminderService{
		Repo:        reminders,
		Assignments: assignments,
		Now:         func() time.Time { return now },
	}
	return svc, reminders, assignments
}

func TestCreateReminder(t *testing.T) {
	now := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, reminders, assignments := newTestService(now)
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", Title: "DSA Lab 4", Subject: "Data Structures", DueDate: due,
	}))

	rem, err := svc.Create("u1", "a1", OffsetOneDay)
	require.NoError(t, err)
	assert.Equal(t, "a1", rem.AssignmentID)
	assert.Equal(t, "u1", rem.UserID)
	assert.Equal(t, due.Add(-24*time.Hour), rem.RemindAt)
	assert.False(t, rem.IsNotified)
	assert.NotEmpty(t, rem.ID)

	stored, err := reminders.GetByID(rem.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, rem.RemindAt, stored.RemindAt)
}

func TestCreateReminderPassedOffset(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, reminders, assignments := newTestService(now)
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", Title: "DSA Lab 4", DueDate: due,
	}))

	_, err := svc.Create("u1", "a1", OffsetOneDay)
	var passed *PassedOffsetError
	require.ErrorAs(t, err, &passed)
	assert.Equal(t, OffsetOneDay, passed.Offset)
	assert.Empty(t, reminders.rows, "a rejected reminder must not be stored")
}

func TestCreateReminderFireTimeEqualsNow(t *testing.T) {
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := due.Add(-time.Hour)
	svc, _, assignments := newTestService(now)
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", DueDate: due,
	}))

	_, err := svc.Create("u1", "a1", OffsetOneHour)
	var passed *PassedOffsetError
	assert.ErrorAs(t, err, &passed)
}

func TestCreateReminderUnknownOffset(t *testing.T) {
	svc, _, assignments := newTestService(time.Now())
	require.NoError(t, assignments.Create(&models.Assignment{ID: "a1", UserID: "u1"}))

	_, err := svc.Create("u1", "a1", Offset("5m"))
	assert.Error(t, err)
}

func TestCreateReminderAssignmentOwnership(t *testing.T) {
	now := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	svc, _, assignments := newTestService(now)
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", DueDate: now.Add(48 * time.Hour),
	}))

	_, err := svc.Create("someone-else", "a1", OffsetOneHour)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	_, err = svc.Create("u1", "missing", OffsetOneHour)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestCancelReminder(t *testing.T) {
	svc, reminders, _ := newTestService(time.Now())
	require.NoError(t, reminders.Create(&models.Reminder{ID: "r1", UserID: "u1", AssignmentID: "a1"}))

	require.NoError(t, svc.Cancel("u1", "r1"))
	stored, _ := reminders.GetByID("r1")
	assert.Nil(t, stored)

	// Cancelling again, or cancelling something that never existed, is not an error.
	assert.NoError(t, svc.Cancel("u1", "r1"))
	assert.NoError(t, svc.Cancel("u1", "never-existed"))
}

func TestCancelReminderScopedToOwner(t *testing.T) {
	svc, reminders, _ := newTestService(time.Now())
	require.NoError(t, reminders.Create(&models.Reminder{ID: "r1", UserID: "u1"}))

	require.NoError(t, svc.Cancel("u2", "r1"))
	stored, _ := reminders.GetByID("r1")
	assert.NotNil(t, stored, "another user's cancel must not remove the reminder")
}

func TestUpcomingJoinsAssignments(t *testing.T) {
	now := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour)
	svc, reminders, assignments := newTestService(now)
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", Title: "OS Worksheet", Subject: "Operating Systems", DueDate: due,
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r1", UserID: "u1", AssignmentID: "a1", RemindAt: due.Add(-time.Hour),
	}))
	// Orphaned reminder whose assignment was deleted out from under it.
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r2", UserID: "u1", AssignmentID: "gone", RemindAt: due.Add(-3 * time.Hour),
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r3", UserID: "u1", AssignmentID: "a1", RemindAt: due.Add(-time.Hour), IsNotified: true,
	}))

	upcoming, err := svc.Upcoming("u1")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "r1", upcoming[0].ID)
	assert.Equal(t, "OS Worksheet", upcoming[0].AssignmentTitle)
	assert.Equal(t, "Operating Systems", upcoming[0].Subject)
	assert.Equal(t, due, upcoming[0].DueDate)
}

func TestOptionsRequiresOwnership(t *testing.T) {
	svc, _, assignments := newTestService(time.Now())
	require.NoError(t, assignments.Create(&models.Assignment{ID: "a1", UserID: "u1", DueDate: time.Now().Add(time.Hour)}))

	_, err := svc.Options("u2", "a1")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	statuses, err := svc.Options("u1", "a1")
	require.NoError(t, err)
	assert.Len(t, statuses, 5)
}
