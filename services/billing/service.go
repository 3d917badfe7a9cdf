package billing

import (
	"errors"
	"fmt"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

var (
	// ErrPlanNotFound is returned when the requested plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrAlreadySubscribed is returned when the user already has an active
	// subscription.
	ErrAlreadySubscribed = errors.New("an active subscription already exists")
)

// subscriptionPeriod is how long a paid subscription runs before expiry.
const subscriptionPeriod = 30 * 24 * time.Hour

func (s *DefaultBillingService) ListPlans() ([]models.Plan, error) {
	return s.Repo.ListPlans()
}

// Checkout starts a subscription. Free plans activate immediately; paid
// plans create a Stripe payment intent and stay pending until
// ActivateSubscription is called.
func (s *DefaultBillingService) Checkout(userID, planID string) (*CheckoutResult, error) {
	plan, err := s.Repo.GetPlanByID(planID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	existing, err := s.Repo.GetActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}

	now := time.Now()
	expiry := now.Add(subscriptionPeriod)
	sub := &models.Subscription{
		ID:         uuid.New().String(),
		UserID:     userID,
		PlanID:     plan.ID,
		StartDate:  now,
		ExpiryDate: &expiry,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if plan.Price <= 0 {
		sub.Status = models.SubscriptionActive
		if err := s.Repo.CreateSubscription(sub); err != nil {
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
		return &CheckoutResult{SubscriptionID: sub.ID, Status: sub.Status}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(plan.Price),
		Currency: stripe.String(string(stripe.CurrencyINR)),
	}
	params.AddMetadata("subscription_id", sub.ID)
	params.AddMetadata("user_id", userID)
	params.AddMetadata("plan_id", plan.ID)

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("Failed to create payment intent",
			zap.String("planID", plan.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to start payment: %w", err)
	}

	sub.Status = models.SubscriptionPending
	if err := s.Repo.CreateSubscription(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CheckoutResult{
		SubscriptionID: sub.ID,
		Status:         sub.Status,
		ClientSecret:   intent.ClientSecret,
	}, nil
}

// ActivateSubscription marks a pending subscription active after payment.
func (s *DefaultBillingService) ActivateSubscription(subscriptionID string) error {
	return s.Repo.UpdateSubscriptionStatus(subscriptionID, models.SubscriptionActive)
}

// MySubscription returns the user's active subscription joined with its plan.
func (s *DefaultBillingService) MySubscription(userID string) (*SubscriptionView, error) {
	sub, err := s.Repo.GetActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}
	if sub == nil {
		return nil, nil
	}
	plan, err := s.Repo.GetPlanByID(sub.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	return &SubscriptionView{Subscription: *sub, Plan: plan}, nil
}

// CancelSubscription cancels the user's active subscription, if any.
func (s *DefaultBillingService) CancelSubscription(userID string) error {
	sub, err := s.Repo.GetActiveByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription: %w", err)
	}
	if sub == nil {
		return nil
	}
	return s.Repo.UpdateSubscriptionStatus(sub.ID, models.SubscriptionCancelled)
}
