package billing

import (
	billingRepo "studyhub/database/repository/billing"
	"studyhub/models"
)

type BillingService interface {
	ListPlans() ([]models.Plan, error)

	// Checkout starts a subscription to the plan. Free plans activate
	// immediately; paid plans return a Stripe client secret the client
	// completes payment with.
	Checkout(userID, planID string) (*CheckoutResult, error)

	// ActivateSubscription marks a pending subscription active once its
	// payment succeeded.
	ActivateSubscription(subscriptionID string) error

	// MySubscription returns the user's active subscription with its plan,
	// or (nil, nil) when the user is on the free tier.
	MySubscription(userID string) (*SubscriptionView, error)

	CancelSubscription(userID string) error
}

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Repo billingRepo.BillingRepository
}

// CheckoutResult reports how a checkout proceeded.
type CheckoutResult struct {
	SubscriptionID string `json:"subscriptionId"`
	Status         string `json:"status"`
	// ClientSecret is set for paid plans only.
	ClientSecret string `json:"clientSecret,omitempty"`
}

// SubscriptionView joins a subscription with its plan for the client.
type SubscriptionView struct {
	Subscription models.Subscription `json:"subscription"`
	Plan         *models.Plan        `json:"plan,omitempty"`
}
