package billingRepo

import (
	"context"
	"fmt"
	"time"

	"studyhub/database"
	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBillingRepo implements BillingRepository using MongoDB.
type MongoBillingRepo struct {
	plans         *mongo.Collection
	subscriptions *mongo.Collection
}

// NewMongoBillingRepo creates a new instance of BillingRepository using MongoDB.
func NewMongoBillingRepo() BillingRepository {
	db := database.DB()
	repo := &MongoBillingRepo{
		plans:         db.Collection("plans"),
		subscriptions: db.Collection("subscriptions"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBillingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := r.plans.Indexes().CreateOne(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}

	subIndexes := []mongo.IndexModel{
		idIndex,
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := r.subscriptions.Indexes().CreateMany(ctx, subIndexes); err != nil {
		return fmt.Errorf("failed to create subscription indexes: %w", err)
	}
	return nil
}

// ListPlans retrieves all plans ordered by price.
func (r *MongoBillingRepo) ListPlans() ([]models.Plan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.plans.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	for cursor.Next(ctx) {
		var p models.Plan
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// GetPlanByID retrieves a plan by ID. Returns (nil, nil) when absent.
func (r *MongoBillingRepo) GetPlanByID(id string) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Plan
	if err := r.plans.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch plan with id %s: %w", id, err)
	}
	return &p, nil
}

// CreateSubscription inserts a new subscription document.
func (r *MongoBillingRepo) CreateSubscription(s *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.subscriptions.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// GetActiveByUser retrieves the user's active subscription, or (nil, nil).
func (r *MongoBillingRepo) GetActiveByUser(userID string) (*models.Subscription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "status": models.SubscriptionActive}
	var s models.Subscription
	if err := r.subscriptions.FindOne(ctx, filter).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription for user %s: %w", userID, err)
	}
	return &s, nil
}

// UpdateSubscriptionStatus sets the status of a subscription.
func (r *MongoBillingRepo) UpdateSubscriptionStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.subscriptions.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update subscription %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subscription with id %s not found", id)
	}
	return nil
}

// ExpireDue flips active subscriptions whose expiry date has passed.
func (r *MongoBillingRepo) ExpireDue(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":      models.SubscriptionActive,
		"expiry_date": bson.M{"$ne": nil, "$lt": now},
	}
	update := bson.M{"$set": bson.M{"status": models.SubscriptionExpired, "updated_at": now}}

	result, err := r.subscriptions.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}
	return result.ModifiedCount, nil
}
