package templateRepo

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

// MongoTemplateRepo implements TemplateRepository using MongoDB.
type MongoTemplateRepo struct {
	templates *mongo.Collection
	usages    *mongo.Collection
}

// NewMongoTemplateRepo creates a new instance of TemplateRepository using MongoDB.
func NewMongoTemplateRepo() TemplateRepository {
	db := database.DB()
	repo := &MongoTemplateRepo{
		templates: db.Collection("application_templates"),
		usages:    db.Collection("application_usages"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTemplateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := r.templates.Indexes().CreateOne(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create template indexes: %w", err)
	}

	usageIndexes := []mongo.IndexModel{
		idIndex,
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := r.usages.Indexes().CreateMany(ctx, usageIndexes); err != nil {
		return fmt.Errorf("failed to create usage indexes: %w", err)
	}
	return nil
}

// CreateTemplate inserts a new template document.
func (r *MongoTemplateRepo) CreateTemplate(t *models.ApplicationTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.templates.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetTemplateByID retrieves a template by ID. Returns (nil, nil) when absent.
func (r *MongoTemplateRepo) GetTemplateByID(id string) (*models.ApplicationTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.ApplicationTemplate
	if err := r.templates.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch template with id %s: %w", id, err)
	}
	return &t, nil
}

// ListTemplates retrieves templates ordered by name.
func (r *MongoTemplateRepo) ListTemplates(activeOnly bool) ([]models.ApplicationTemplate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.templates.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.ApplicationTemplate
	for cursor.Next(ctx) {
		var t models.ApplicationTemplate
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// UpdateTemplate modifies an existing template document.
func (r *MongoTemplateRepo) UpdateTemplate(t *models.ApplicationTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	result, err := r.templates.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update template with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("template with id %s not found", t.ID)
	}
	return nil
}

// DeleteTemplate removes a template document by ID.
func (r *MongoTemplateRepo) DeleteTemplate(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.templates.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete template with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("template with id %s not found", id)
	}
	return nil
}

// CountTemplates returns the total number of templates.
func (r *MongoTemplateRepo) CountTemplates() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.templates.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count templates: %w", err)
	}
	return n, nil
}

// CreateUsage records a generated application.
func (r *MongoTemplateRepo) CreateUsage(u *models.ApplicationUsage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	u.CreatedAt = time.Now()
	if _, err := r.usages.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to create usage: %w", err)
	}
	return nil
}

// ListUsagesByUser retrieves a user's usages, newest first.
func (r *MongoTemplateRepo) ListUsagesByUser(userID string) ([]models.ApplicationUsage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.usages.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list usages for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var usages []models.ApplicationUsage
	for cursor.Next(ctx) {
		var u models.ApplicationUsage
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode usage: %w", err)
		}
		usages = append(usages, u)
	}
	return usages, nil
}

// CountUsagesSince counts the user's usages created at or after the cutoff.
func (r *MongoTemplateRepo) CountUsagesSince(userID string, since time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "created_at": bson.M{"$gte": since}}
	n, err := r.usages.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count usages: %w", err)
	}
	return n, nil
}
