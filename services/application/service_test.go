package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/models"
)

type fakeTemplateRepo struct {
	templates map[string]*models.ApplicationTemplate
	usages    []models.ApplicationUsage
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]*models.ApplicationTemplate)}
}

func (f *fakeTemplateRepo) CreateTemplate(t *models.ApplicationTemplate) error {
	cp := *t
	f.templates[t.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) GetTemplateByID(id string) (*models.ApplicationTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTemplateRepo) ListTemplates(activeOnly bool) ([]models.ApplicationTemplate, error) {
	var out []models.ApplicationTemplate
	for _, t := range f.templates {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) UpdateTemplate(t *models.ApplicationTemplate) error {
	cp := *t
	f.templates[t.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) DeleteTemplate(id string) error {
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) CountTemplates() (int64, error) {
	return int64(len(f.templates)), nil
}

func (f *fakeTemplateRepo) CreateUsage(u *models.ApplicationUsage) error {
	f.usages = append(f.usages, *u)
	return nil
}

func (f *fakeTemplateRepo) ListUsagesByUser(userID string) ([]models.ApplicationUsage, error) {
	var out []models.ApplicationUsage
	for _, u := range f.usages {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeTemplateRepo) CountUsagesSince(userID string, since time.Time) (int64, error) {
	var n int64
	for _, u := range f.usages {
		if u.UserID == userID && u.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

type fakeBillingRepo struct {
	subs  map[string]*models.Subscription
	plans map[string]*models.Plan
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{
		subs:  make(map[string]*models.Subscription),
		plans: make(map[string]*models.Plan),
	}
}

func (f *fakeBillingRepo) ListPlans() ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeBillingRepo) GetPlanByID(id string) (*models.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeBillingRepo) CreateSubscription(s *models.Subscription) error {
	cp := *s
	f.subs[s.ID] = &cp
	return nil
}

func (f *fakeBillingRepo) GetActiveByUser(userID string) (*models.Subscription, error) {
	for _, s := range f.subs {
		if s.UserID == userID && s.Status == models.SubscriptionActive {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBillingRepo) UpdateSubscriptionStatus(id, status string) error {
	if s, ok := f.subs[id]; ok {
		s.Status = status
	}
	return nil
}

func (f *fakeBillingRepo) ExpireDue(now time.Time) (int64, error) {
	var n int64
	for _, s := range f.subs {
		if s.Status == models.SubscriptionActive && s.ExpiryDate != nil && s.ExpiryDate.Before(now) {
			s.Status = models.SubscriptionExpired
			n++
		}
	}
	return n, nil
}

type fakeDrafter struct {
	reply string
}

func (f *fakeDrafter) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.reply, nil
}

func newTestService() (*DefaultApplicationService, *fakeTemplateRepo, *fakeBillingRepo) {
	templates := newFakeTemplateRepo()
	billing := newFakeBillingRepo()
	svc := &DefaultApplicationService{
		Repo:    templates,
		Billing: billing,
		Drafter: &fakeDrafter{reply: "Respected Sir/Madam, ..."},
	}
	return svc, templates, billing
}

func TestCreateTemplate(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateTemplate("admin1", &models.ApplicationTemplate{
		Name:            "Leave Application",
		Category:        "leave",
		TemplateContent: "To the Principal, I request leave...",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "admin1", created.CreatedBy)
	assert.NotEmpty(t, created.ID)
}

func TestRecordUsage(t *testing.T) {
	svc, templates, _ := newTestService()
	created, err := svc.CreateTemplate("admin1", &models.ApplicationTemplate{
		Name: "Leave Application", TemplateContent: "...",
	})
	require.NoError(t, err)

	usage, err := svc.RecordUsage("u1", created.ID, "My leave letter")
	require.NoError(t, err)
	assert.Equal(t, created.ID, usage.TemplateID)
	assert.Len(t, templates.usages, 1)
}

func TestRecordUsageInactiveTemplate(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.CreateTemplate("admin1", &models.ApplicationTemplate{
		Name: "Leave Application", TemplateContent: "...",
	})
	require.NoError(t, err)

	created.IsActive = false
	require.NoError(t, svc.UpdateTemplate(created))

	_, err = svc.RecordUsage("u1", created.ID, "content")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRecordUsageMissingTemplate(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.RecordUsage("u1", "nope", "content")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRecordUsageFreeQuota(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.CreateTemplate("admin1", &models.ApplicationTemplate{
		Name: "Leave Application", TemplateContent: "...",
	})
	require.NoError(t, err)

	for i := 0; i < freeMonthlyApplications; i++ {
		_, err := svc.RecordUsage("u1", created.ID, "content")
		require.NoError(t, err)
	}

	_, err = svc.RecordUsage("u1", created.ID, "content")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestRecordUsageUnlimitedPlan(t *testing.T) {
	svc, _, billing := newTestService()
	created, err := svc.CreateTemplate("admin1", &models.ApplicationTemplate{
		Name: "Leave Application", TemplateContent: "...",
	})
	require.NoError(t, err)

	billing.plans["p1"] = &models.Plan{ID: "p1", Name: "Pro", MonthlyApplications: 0}
	billing.subs["s1"] = &models.Subscription{
		ID: "s1", UserID: "u1", PlanID: "p1", Status: models.SubscriptionActive,
	}

	for i := 0; i < freeMonthlyApplications+2; i++ {
		_, err := svc.RecordUsage("u1", created.ID, "content")
		require.NoError(t, err)
	}
}

func TestDraft(t *testing.T) {
	svc, _, _ := newTestService()

	draft, err := svc.Draft(context.Background(), "u1", "Medical leave", "Two days of fever")
	require.NoError(t, err)
	assert.Equal(t, "Respected Sir/Madam, ...", draft)
}

func TestDraftWithoutDrafter(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Drafter = nil

	_, err := svc.Draft(context.Background(), "u1", "Medical leave", "")
	assert.Error(t, err)
}
