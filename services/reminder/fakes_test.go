package reminder

import (
	"context"
	"errors"
	"sort"
	"time"

	"studyhub/models"
	"studyhub/services/notification"
)

// fakeReminderRepo is an in-memory ReminderRepository.
type fakeReminderRepo struct {
	rows         map[string]*models.Reminder
	findDueCalls int
	failFindDue  bool
	markCalls    []string
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{rows: make(map[string]*models.Reminder)}
}

func (f *fakeReminderRepo) Create(rem *models.Reminder) error {
	cp := *rem
	f.rows[rem.ID] = &cp
	return nil
}

func (f *fakeReminderRepo) GetByID(id string) (*models.Reminder, error) {
	rem, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *rem
	return &cp, nil
}

func (f *fakeReminderRepo) ListPendingByUser(userID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, rem := range f.rows {
		if rem.UserID == userID && !rem.IsNotified {
			out = append(out, *rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindAt.Before(out[j].RemindAt) })
	return out, nil
}

func (f *fakeReminderRepo) FindDueForUsers(userIDs []string, now time.Time) ([]models.Reminder, error) {
	f.findDueCalls++
	if f.failFindDue {
		return nil, errors.New("store unavailable")
	}
	allowed := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		allowed[id] = true
	}
	var out []models.Reminder
	for _, rem := range f.rows {
		if allowed[rem.UserID] && !rem.IsNotified && !rem.RemindAt.After(now) {
			out = append(out, *rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeReminderRepo) MarkNotified(id string) (bool, error) {
	f.markCalls = append(f.markCalls, id)
	rem, ok := f.rows[id]
	if !ok || rem.IsNotified {
		return false, nil
	}
	rem.IsNotified = true
	return true, nil
}

func (f *fakeReminderRepo) DeleteOwned(id, userID string) error {
	rem, ok := f.rows[id]
	if ok && rem.UserID == userID {
		delete(f.rows, id)
	}
	return nil
}

func (f *fakeReminderRepo) DeleteByAssignment(assignmentID string) error {
	for id, rem := range f.rows {
		if rem.AssignmentID == assignmentID {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeReminderRepo) DeleteNotifiedBefore(cutoff time.Time) (int64, error) {
	var n int64
	for id, rem := range f.rows {
		if rem.IsNotified && rem.CreatedAt.Before(cutoff) {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

// fakeAssignmentRepo is an in-memory AssignmentRepository.
type fakeAssignmentRepo struct {
	rows       map[string]*models.Assignment
	getCalls   int
	failGetIDs map[string]bool
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		rows:       make(map[string]*models.Assignment),
		failGetIDs: make(map[string]bool),
	}
}

func (f *fakeAssignmentRepo) Create(a *models.Assignment) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAssignmentRepo) GetByID(id string) (*models.Assignment, error) {
	f.getCalls++
	if f.failGetIDs[id] {
		return nil, errors.New("store unavailable")
	}
	a, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssignmentRepo) ListByUser(userID string) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range f.rows {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Update(a *models.Assignment) error {
	f.rows[a.ID] = a
	return nil
}

func (f *fakeAssignmentRepo) SetStatus(id, userID, status string) error {
	a, ok := f.rows[id]
	if !ok || a.UserID != userID {
		return errors.New("not found")
	}
	a.Status = status
	return nil
}

func (f *fakeAssignmentRepo) DeleteOwned(id, userID string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeAssignmentRepo) SearchByUser(userID, query string) ([]models.Assignment, error) {
	return nil, nil
}

// fakeCapability records deliveries instead of pushing them anywhere.
type fakeCapability struct {
	supported  bool
	granted    []string
	deliveries []fakeDelivery
	failUserID string
}

type fakeDelivery struct {
	userID, title, body, dedupeKey string
}

func (f *fakeCapability) Supported() bool { return f.supported }

func (f *fakeCapability) QueryPermission(ctx context.Context, userID string) (notification.Permission, error) {
	return notification.PermissionDefault, nil
}

func (f *fakeCapability) RequestPermission(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func (f *fakeCapability) ListGranted(ctx context.Context) ([]string, error) {
	return f.granted, nil
}

func (f *fakeCapability) Deliver(ctx context.Context, userID, title, body, dedupeKey string) error {
	if userID == f.failUserID {
		return errors.New("push rejected")
	}
	f.deliveries = append(f.deliveries, fakeDelivery{userID, title, body, dedupeKey})
	return nil
}
