package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/models"
)

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

func TestCheckoutFreePlan(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.plans["free"] = &models.Plan{ID: "free", Name: "Free", Price: 0}
	svc := &DefaultBillingService{Repo: repo}

	result, err := svc.Checkout("u1", "free")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, result.Status)
	assert.Empty(t, result.ClientSecret)

	sub, err := repo.GetActiveByUser("u1")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "free", sub.PlanID)
}

func TestCheckoutUnknownPlan(t *testing.T) {
	svc := &DefaultBillingService{Repo: newFakeBillingRepo()}

	_, err := svc.Checkout("u1", "nope")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCheckoutAlreadySubscribed(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.plans["free"] = &models.Plan{ID: "free", Name: "Free", Price: 0}
	svc := &DefaultBillingService{Repo: repo}

	_, err := svc.Checkout("u1", "free")
	require.NoError(t, err)

	_, err = svc.Checkout("u1", "free")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestMySubscription(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.plans["free"] = &models.Plan{ID: "free", Name: "Free", Price: 0}
	svc := &DefaultBillingService{Repo: repo}

	view, err := svc.MySubscription("u1")
	require.NoError(t, err)
	assert.Nil(t, view)

	_, err = svc.Checkout("u1", "free")
	require.NoError(t, err)

	view, err = svc.MySubscription("u1")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Free", view.Plan.Name)
}

func TestCancelSubscription(t *testing.T) {
	repo := newFakeBillingRepo()
	repo.plans["free"] = &models.Plan{ID: "free", Name: "Free", Price: 0}
	svc := &DefaultBillingService{Repo: repo}

	// Cancelling with no subscription is a no-op.
	require.NoError(t, svc.CancelSubscription("u1"))

	result, err := svc.Checkout("u1", "free")
	require.NoError(t, err)

	require.NoError(t, svc.CancelSubscription("u1"))
	assert.Equal(t, models.SubscriptionCancelled, repo.subs[result.SubscriptionID].Status)
}
