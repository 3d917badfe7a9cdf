// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"fmt"
	"time"

	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Subjects ---

func (r *MongoCatalogRepo) CreateSubject(s *models.Subject) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.CreatedAt = time.Now()
	if _, err := r.subjects.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpdateSubject(s *models.Subject) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.subjects.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": s})
	if err != nil {
		return fmt.Errorf("failed to update subject with id %s: %w", s.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subject with id %s not found", s.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteSubject(id string) error {
	return deleteByID(r.subjects, id, "subject")
}

// --- Notes ---

func (r *MongoCatalogRepo) CreateNote(n *models.Note) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := r.notes.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetNoteByID(id string) (*models.Note, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var n models.Note
	if err := r.notes.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch note with id %s: %w", id, err)
	}
	return &n, nil
}

func (r *MongoCatalogRepo) UpdateNote(n *models.Note) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n.UpdatedAt = time.Now()
	result, err := r.notes.UpdateOne(ctx, bson.M{"id": n.ID}, bson.M{"$set": n})
	if err != nil {
		return fmt.Errorf("failed to update note with id %s: %w", n.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("note with id %s not found", n.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteNote(id string) error {
	return deleteByID(r.notes, id, "note")
}

// --- PYQs ---

func (r *MongoCatalogRepo) CreatePYQ(p *models.PYQ) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.pyqs.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create pyq: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetPYQByID(id string) (*models.PYQ, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.PYQ
	if err := r.pyqs.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pyq with id %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoCatalogRepo) UpdatePYQ(p *models.PYQ) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.pyqs.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update pyq with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pyq with id %s not found", p.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) DeletePYQ(id string) error {
	return deleteByID(r.pyqs, id, "pyq")
}

func deleteByID(coll *mongo.Collection, id, kind string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %s: %w", kind, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s with id %s not found", kind, id)
	}
	return nil
}
