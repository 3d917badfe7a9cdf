package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"studyhub/database"
	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAssignmentRepo implements AssignmentRepository using MongoDB.
type MongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo creates a new instance of AssignmentRepository using MongoDB.
func NewMongoAssignmentRepo() AssignmentRepository {
	coll := database.DB().Collection("assignments")
	repo := &MongoAssignmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAssignmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "due_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new assignment document.
func (r *MongoAssignmentRepo) Create(a *models.Assignment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// GetByID retrieves an assignment by its unique ID. Returns (nil, nil) when
// no document matches.
func (r *MongoAssignmentRepo) GetByID(id string) (*models.Assignment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Assignment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch assignment with id %s: %w", id, err)
	}
	return &a, nil
}

// ListByUser retrieves a user's assignments ordered by due date ascending.
func (r *MongoAssignmentRepo) ListByUser(userID string) ([]models.Assignment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	for cursor.Next(ctx) {
		var a models.Assignment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// Update modifies an existing assignment document.
func (r *MongoAssignmentRepo) Update(a *models.Assignment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update assignment with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("assignment with id %s not found", a.ID)
	}
	return nil
}

// SetStatus updates the status field of an owned assignment.
func (r *MongoAssignmentRepo) SetStatus(id, userID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "user_id": userID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update assignment status for id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("assignment with id %s not found", id)
	}
	return nil
}

// DeleteOwned removes an assignment document if the user owns it.
func (r *MongoAssignmentRepo) DeleteOwned(id, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete assignment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("assignment with id %s not found", id)
	}
	return nil
}

// SearchByUser finds the user's assignments matching the query on title or subject.
func (r *MongoAssignmentRepo) SearchByUser(userID, query string) ([]models.Assignment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	regex := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{
		"user_id": userID,
		"$or": bson.A{
			bson.M{"title": regex},
			bson.M{"subject": regex},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	for cursor.Next(ctx) {
		var a models.Assignment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
