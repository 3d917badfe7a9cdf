package reminderRepo

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

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo creates a new instance of ReminderRepository using MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	coll := database.DB().Collection("assignment_reminders")
	repo := &MongoReminderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReminderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// The due query filters on is_notified + remind_at and restricts owners.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_notified", Value: 1}, {Key: "remind_at", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "assignment_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new reminder document.
func (r *MongoReminderRepo) Create(rem *models.Reminder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if rem.CreatedAt.IsZero() {
		rem.CreatedAt = time.Now()
	}
	rem.IsNotified = false

	_, err := r.coll.InsertOne(ctx, rem)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// GetByID retrieves a reminder by its unique ID. Returns (nil, nil) when absent.
func (r *MongoReminderRepo) GetByID(id string) (*models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rem models.Reminder
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rem); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reminder with id %s: %w", id, err)
	}
	return &rem, nil
}

// ListPendingByUser retrieves a user's unnotified reminders ordered by remind time.
func (r *MongoReminderRepo) ListPendingByUser(userID string) ([]models.Reminder, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "is_notified": false}
	opts := options.Find().SetSort(bson.D{{Key: "remind_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	return decodeReminders(ctx, cursor)
}

// FindDueForUsers retrieves due, unnotified reminders owned by the given users.
func (r *MongoReminderRepo) FindDueForUsers(userIDs []string, now time.Time) ([]models.Reminder, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"user_id":     bson.M{"$in": userIDs},
		"is_notified": false,
		"remind_at":   bson.M{"$lte": now},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeReminders(ctx, cursor)
}

// MarkNotified conditionally flips is_notified to true. The is_notified
// filter makes the update a compare-and-swap so two concurrent checkers
// cannot both claim the same reminder.
func (r *MongoReminderRepo) MarkNotified(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "is_notified": false}
	update := bson.M{"$set": bson.M{"is_notified": true}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder %s notified: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// DeleteOwned removes an owned reminder. Absent rows are treated as success
// so cancellation is idempotent.
func (r *MongoReminderRepo) DeleteOwned(id, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete reminder with id %s: %w", id, err)
	}
	return nil
}

// DeleteByAssignment removes every reminder referencing the assignment.
func (r *MongoReminderRepo) DeleteByAssignment(assignmentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"assignment_id": assignmentID})
	if err != nil {
		return fmt.Errorf("failed to delete reminders for assignment %s: %w", assignmentID, err)
	}
	return nil
}

// DeleteNotifiedBefore purges notified reminders created before the cutoff.
func (r *MongoReminderRepo) DeleteNotifiedBefore(cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"is_notified": true, "created_at": bson.M{"$lt": cutoff}}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to purge notified reminders: %w", err)
	}
	return result.DeletedCount, nil
}

func decodeReminders(ctx context.Context, cursor *mongo.Cursor) ([]models.Reminder, error) {
	var reminders []models.Reminder
	for cursor.Next(ctx) {
		var rem models.Reminder
		if err := cursor.Decode(&rem); err != nil {
			return nil, fmt.Errorf("failed to decode reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, nil
}
