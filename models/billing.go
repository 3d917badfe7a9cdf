package models

import "time"

// Subscription statuses.
const (
	SubscriptionPending   = "pending"
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

// Plan is a subscription tier.
type Plan struct {
	ID                  string    `bson:"id" json:"id"`
	Name                string    `bson:"name" json:"name"`
	Type                string    `bson:"type" json:"type"`
	Price               int64     `bson:"price" json:"price"` // smallest currency unit
	MaxAssignments      int       `bson:"max_assignments,omitempty" json:"maxAssignments,omitempty"`
	MonthlyApplications int       `bson:"monthly_applications,omitempty" json:"monthlyApplications,omitempty"`
	Features            []string  `bson:"features,omitempty" json:"features,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
}

// Subscription ties a user to a plan.
type Subscription struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"user_id" json:"userId"`
	PlanID     string     `bson:"plan_id" json:"planId"`
	Status     string     `bson:"status" json:"status"`
	StartDate  time.Time  `bson:"start_date" json:"startDate"`
	ExpiryDate *time.Time `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
}
