package billingRepo

import (
	"time"

	"studyhub/models"
)

// BillingRepository defines data access for plans and subscriptions.
type BillingRepository interface {
	ListPlans() ([]models.Plan, error)
	// GetPlanByID returns (nil, nil) when absent.
	GetPlanByID(id string) (*models.Plan, error)

	CreateSubscription(s *models.Subscription) error
	// GetActiveByUser returns the user's active subscription or (nil, nil).
	GetActiveByUser(userID string) (*models.Subscription, error)
	UpdateSubscriptionStatus(id, status string) error
	// ExpireDue flips active subscriptions whose expiry has passed and
	// returns the number changed.
	ExpireDue(now time.Time) (int64, error)
}
