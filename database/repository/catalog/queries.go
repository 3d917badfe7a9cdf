// File: database/repository/catalog/queries.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListSubjects retrieves all subjects ordered by name.
func (r *MongoCatalogRepo) ListSubjects() ([]models.Subject, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.subjects.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer cursor.Close(ctx)

	var subjects []models.Subject
	for cursor.Next(ctx) {
		var s models.Subject
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// ListNotes retrieves notes, optionally filtered by subject, newest first.
func (r *MongoCatalogRepo) ListNotes(subjectID string) ([]models.Note, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if subjectID != "" {
		filter["subject_id"] = subjectID
	}
	cursor, err := r.notes.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeNotes(ctx, cursor)
}

// ListPYQs retrieves PYQs, optionally filtered by subject, newest first.
func (r *MongoCatalogRepo) ListPYQs(subjectID string) ([]models.PYQ, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if subjectID != "" {
		filter["subject_id"] = subjectID
	}
	cursor, err := r.pyqs.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to list pyqs: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePYQs(ctx, cursor)
}

// SearchNotes finds notes whose title matches the query case-insensitively.
func (r *MongoCatalogRepo) SearchNotes(query string) ([]models.Note, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"title": primitive.Regex{Pattern: query, Options: "i"}}
	cursor, err := r.notes.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeNotes(ctx, cursor)
}

// SearchPYQs finds PYQs whose title matches the query case-insensitively.
func (r *MongoCatalogRepo) SearchPYQs(query string) ([]models.PYQ, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"title": primitive.Regex{Pattern: query, Options: "i"}}
	cursor, err := r.pyqs.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search pyqs: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePYQs(ctx, cursor)
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

func decodeNotes(ctx context.Context, cursor *mongo.Cursor) ([]models.Note, error) {
	var notes []models.Note
	for cursor.Next(ctx) {
		var n models.Note
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func decodePYQs(ctx context.Context, cursor *mongo.Cursor) ([]models.PYQ, error) {
	var pyqs []models.PYQ
	for cursor.Next(ctx) {
		var p models.PYQ
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode pyq: %w", err)
		}
		pyqs = append(pyqs, p)
	}
	return pyqs, nil
}
