package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"studyhub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository over the subjects, notes and
// pyqs collections.
type MongoCatalogRepo struct {
	subjects *mongo.Collection
	notes    *mongo.Collection
	pyqs     *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		subjects: db.Collection("subjects"),
		notes:    db.Collection("notes"),
		pyqs:     db.Collection("pyqs"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	subjectIndex := mongo.IndexModel{Keys: bson.D{{Key: "subject_id", Value: 1}}}

	if _, err := r.subjects.Indexes().CreateOne(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create subject indexes: %w", err)
	}
	if _, err := r.notes.Indexes().CreateMany(ctx, []mongo.IndexModel{idIndex, subjectIndex}); err != nil {
		return fmt.Errorf("failed to create note indexes: %w", err)
	}
	if _, err := r.pyqs.Indexes().CreateMany(ctx, []mongo.IndexModel{idIndex, subjectIndex}); err != nil {
		return fmt.Errorf("failed to create pyq indexes: %w", err)
	}
	return nil
}

// CountSubjects returns the total number of subjects.
func (r *MongoCatalogRepo) CountSubjects() (int64, error) {
	return countAll(r.subjects)
}

// CountNotes returns the total number of notes.
func (r *MongoCatalogRepo) CountNotes() (int64, error) {
	return countAll(r.notes)
}

// CountPYQs returns the total number of PYQs.
func (r *MongoCatalogRepo) CountPYQs() (int64, error) {
	return countAll(r.pyqs)
}

func countAll(coll *mongo.Collection) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}
	return n, nil
}
