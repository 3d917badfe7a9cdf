package assignment

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/models"
)

type fakeAssignmentRepo struct {
	rows map[string]*models.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{rows: make(map[string]*models.Assignment)}
}

func (f *fakeAssignmentRepo) Create(a *models.Assignment) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAssignmentRepo) GetByID(id string) (*models.Assignment, error) {
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
	cp := *a
	f.rows[a.ID] = &cp
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
	a, ok := f.rows[id]
	if ok && a.UserID == userID {
		delete(f.rows, id)
	}
	return nil
}

func (f *fakeAssignmentRepo) SearchByUser(userID, query string) ([]models.Assignment, error) {
	return nil, nil
}

type fakeReminderCascade struct {
	deletedFor []string
}

func (f *fakeReminderCascade) Create(*models.Reminder) error            { return nil }
func (f *fakeReminderCascade) GetByID(string) (*models.Reminder, error) { return nil, nil }
func (f *fakeReminderCascade) ListPendingByUser(string) ([]models.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderCascade) FindDueForUsers([]string, time.Time) ([]models.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderCascade) MarkNotified(string) (bool, error) { return false, nil }
func (f *fakeReminderCascade) DeleteOwned(string, string) error  { return nil }
func (f *fakeReminderCascade) DeleteByAssignment(assignmentID string) error {
	f.deletedFor = append(f.deletedFor, assignmentID)
	return nil
}
func (f *fakeReminderCascade) DeleteNotifiedBefore(time.Time) (int64, error) { return 0, nil }

func newTestService() (*DefaultAssignmentService, *fakeAssignmentRepo, *fakeReminderCascade) {
	repo := newFakeAssignmentRepo()
	reminders := &fakeReminderCascade{}
	return &DefaultAssignmentService{Repo: repo, Reminders: reminders}, repo, reminders
}

func TestCreateAssignment(t *testing.T) {
	svc, repo, _ := newTestService()
	due := time.Now().Add(48 * time.Hour)

	a, err := svc.Create("u1", CreateRequest{Title: "Lab Report", Subject: "Physics", DueDate: due})
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentPending, a.Status)
	assert.Equal(t, "u1", a.UserID)
	assert.NotEmpty(t, a.ID)
	assert.Len(t, repo.rows, 1)
}

func TestCreateAssignmentValidation(t *testing.T) {
	svc, _, _ := newTestService()
	due := time.Now().Add(time.Hour)

	_, err := svc.Create("u1", CreateRequest{Subject: "Physics", DueDate: due})
	assert.Error(t, err)

	_, err = svc.Create("u1", CreateRequest{Title: "Lab Report", DueDate: due})
	assert.Error(t, err)

	_, err = svc.Create("u1", CreateRequest{Title: "Lab Report", Subject: "Physics"})
	assert.Error(t, err)
}

func TestGetByIDOwnership(t *testing.T) {
	svc, repo, _ := newTestService()
	require.NoError(t, repo.Create(&models.Assignment{ID: "a1", UserID: "u1", Title: "Essay"}))

	_, err := svc.GetByID("u2", "a1")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	a, err := svc.GetByID("u1", "a1")
	require.NoError(t, err)
	assert.Equal(t, "Essay", a.Title)
}

func TestUpdateAssignment(t *testing.T) {
	svc, _, _ := newTestService()
	a, err := svc.Create("u1", CreateRequest{Title: "Essay", Subject: "English", DueDate: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	newTitle := "Final Essay"
	updated, err := svc.Update("u1", a.ID, UpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Final Essay", updated.Title)
	assert.Equal(t, "English", updated.Subject)
}

func TestSetStatus(t *testing.T) {
	svc, repo, _ := newTestService()
	a, err := svc.Create("u1", CreateRequest{Title: "Essay", Subject: "English", DueDate: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus("u1", a.ID, models.AssignmentSubmitted))
	assert.Equal(t, models.AssignmentSubmitted, repo.rows[a.ID].Status)

	assert.Error(t, svc.SetStatus("u1", a.ID, "done"))
}

func TestDeleteCascadesReminders(t *testing.T) {
	svc, repo, reminders := newTestService()
	a, err := svc.Create("u1", CreateRequest{Title: "Essay", Subject: "English", DueDate: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("u1", a.ID))
	assert.Empty(t, repo.rows)
	assert.Equal(t, []string{a.ID}, reminders.deletedFor)
}
