package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/models"
)

func newTestChecker(now time.Time) (*Checker, *fakeReminderRepo, *fakeAssignmentRepo, *fakeCapability) {
	reminders := newFakeReminderRepo()
	assignments := newFakeAssignmentRepo()
	capability := &fakeCapability{supported: true}
	chk := NewChecker(reminders, assignments, capability, DefaultCheckInterval)
	chk.Now = func() time.Time { return now }
	return chk, reminders, assignments, capability
}

func TestRunCycleDeliversDueReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	chk, reminders, assignments, capability := newTestChecker(now)
	capability.granted = []string{"u1"}

	due := now.Add(24 * time.Hour)
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", Title: "DBMS Report", Subject: "Databases", DueDate: due,
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r1", UserID: "u1", AssignmentID: "a1", RemindAt: now.Add(-time.Minute),
	}))
	// Not yet due.
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r2", UserID: "u1", AssignmentID: "a1", RemindAt: now.Add(time.Hour),
	}))

	chk.RunCycle(context.Background())

	require.Len(t, capability.deliveries, 1)
	d := capability.deliveries[0]
	assert.Equal(t, "u1", d.userID)
	assert.Equal(t, "Assignment Reminder: DBMS Report", d.title)
	assert.Equal(t, "Databases - Due: Mar 11, 2025", d.body)
	assert.Equal(t, "r1", d.dedupeKey)

	stored, _ := reminders.GetByID("r1")
	assert.True(t, stored.IsNotified)
	pending, _ := reminders.GetByID("r2")
	assert.False(t, pending.IsNotified)
}

func TestRunCycleNoGrantedUsersSkipsStore(t *testing.T) {
	now := time.Now()
	chk, reminders, _, capability := newTestChecker(now)
	capability.granted = nil
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r1", UserID: "u1", AssignmentID: "a1", RemindAt: now.Add(-time.Minute),
	}))

	chk.RunCycle(context.Background())

	assert.Zero(t, reminders.findDueCalls, "no granted users means no due query")
	assert.Empty(t, capability.deliveries)
}

func TestRunCycleUnsupportedCapability(t *testing.T) {
	chk, reminders, _, capability := newTestChecker(time.Now())
	capability.supported = false
	capability.granted = []string{"u1"}

	chk.RunCycle(context.Background())

	assert.Zero(t, reminders.findDueCalls)
}

func TestRunCycleOrphanedReminderLeftPending(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	chk, reminders, assignments, capability := newTestChecker(now)
	capability.granted = []string{"u1"}

	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a2", UserID: "u1", Title: "Maths Tutorial", Subject: "Mathematics", DueDate: now.Add(time.Hour),
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r1", UserID: "u1", AssignmentID: "deleted", RemindAt: now.Add(-time.Minute),
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r2", UserID: "u1", AssignmentID: "a2", RemindAt: now.Add(-time.Minute),
	}))

	chk.RunCycle(context.Background())

	// The orphan is skipped without being marked; the valid one goes out.
	require.Len(t, capability.deliveries, 1)
	assert.Equal(t, "r2", capability.deliveries[0].dedupeKey)

	orphan, _ := reminders.GetByID("r1")
	assert.False(t, orphan.IsNotified)
	delivered, _ := reminders.GetByID("r2")
	assert.True(t, delivered.IsNotified)
}

func TestRunCycleMarksNotifiedDespiteDeliveryFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	chk, reminders, assignments, capability := newTestChecker(now)
	capability.granted = []string{"u1"}
	capability.failUserID = "u1"

	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", Title: "Essay", DueDate: now.Add(time.Hour),
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r1", UserID: "u1", AssignmentID: "a1", RemindAt: now.Add(-time.Minute),
	}))

	chk.RunCycle(context.Background())

	stored, _ := reminders.GetByID("r1")
	assert.True(t, stored.IsNotified, "a failed push still consumes the reminder")
}

func TestRunCycleStoreFailureRecovers(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	chk, reminders, assignments, capability := newTestChecker(now)
	capability.granted = []string{"u1"}
	require.NoError(t, assignments.Create(&models.Assignment{
		ID: "a1", UserID: "u1", Title: "Essay", DueDate: now.Add(time.Hour),
	}))
	require.NoError(t, reminders.Create(&models.Reminder{
		ID: "r1", UserID: "u1", AssignmentID: "a1", RemindAt: now.Add(-time.Minute),
	}))

	reminders.failFindDue = true
	chk.RunCycle(context.Background())
	assert.Empty(t, capability.deliveries)

	reminders.failFindDue = false
	chk.RunCycle(context.Background())
	assert.Len(t, capability.deliveries, 1)
}

func TestRunCycleReentrancyGuard(t *testing.T) {
	now := time.Now()
	chk, reminders, _, capability := newTestChecker(now)
	capability.granted = []string{"u1"}

	chk.inProgress.Store(true)
	chk.RunCycle(context.Background())
	assert.Zero(t, reminders.findDueCalls, "an overlapping tick is dropped")

	chk.inProgress.Store(false)
	chk.RunCycle(context.Background())
	assert.Equal(t, 1, reminders.findDueCalls)
}

func TestCheckerStop(t *testing.T) {
	chk, _, _, capability := newTestChecker(time.Now())
	capability.granted = nil
	chk.Interval = 10 * time.Millisecond

	chk.Start()
	time.Sleep(30 * time.Millisecond)
	chk.Stop()

	// Stop is idempotent.
	chk.Stop()
}
