package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for lookups of missing catalog entries.
var ErrNotFound = errors.New("catalog entry not found")

// CreateSubject adds a course unit to the catalog.
func (s *DefaultCatalogService) CreateSubject(name, code, semester string) (*models.Subject, error) {
	if name == "" {
		return nil, fmt.Errorf("subject name is required")
	}
	subject := &models.Subject{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      code,
		Semester:  semester,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.CreateSubject(subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return subject, nil
}

func (s *DefaultCatalogService) ListSubjects() ([]models.Subject, error) {
	return s.Repo.ListSubjects()
}

func (s *DefaultCatalogService) UpdateSubject(subject *models.Subject) error {
	if subject.ID == "" || subject.Name == "" {
		return fmt.Errorf("subject id and name are required")
	}
	return s.Repo.UpdateSubject(subject)
}

func (s *DefaultCatalogService) DeleteSubject(subjectID string) error {
	return s.Repo.DeleteSubject(subjectID)
}

// CreateNote stores note metadata after its file has been uploaded.
func (s *DefaultCatalogService) CreateNote(note *models.Note) (*models.Note, error) {
	if note.Title == "" {
		return nil, fmt.Errorf("note title is required")
	}
	if note.FileURL == "" {
		return nil, fmt.Errorf("note file is required")
	}
	now := time.Now()
	note.ID = uuid.New().String()
	note.CreatedAt = now
	note.UpdatedAt = now
	if err := s.Repo.CreateNote(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *DefaultCatalogService) GetNote(noteID string) (*models.Note, error) {
	note, err := s.Repo.GetNoteByID(noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

func (s *DefaultCatalogService) ListNotes(subjectID string) ([]models.Note, error) {
	return s.Repo.ListNotes(subjectID)
}

func (s *DefaultCatalogService) UpdateNote(note *models.Note) error {
	if note.ID == "" {
		return fmt.Errorf("note id is required")
	}
	note.UpdatedAt = time.Now()
	return s.Repo.UpdateNote(note)
}

// DeleteNote removes the note record and best-effort deletes its stored file.
func (s *DefaultCatalogService) DeleteNote(noteID string) error {
	note, err := s.GetNote(noteID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteNote(noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	s.deleteStoredFile(note.FileURL)
	return nil
}

// CreatePYQ stores question paper metadata after its file has been uploaded.
func (s *DefaultCatalogService) CreatePYQ(pyq *models.PYQ) (*models.PYQ, error) {
	if pyq.Title == "" {
		return nil, fmt.Errorf("question paper title is required")
	}
	if pyq.FileURL == "" {
		return nil, fmt.Errorf("question paper file is required")
	}
	now := time.Now()
	pyq.ID = uuid.New().String()
	pyq.CreatedAt = now
	pyq.UpdatedAt = now
	if err := s.Repo.CreatePYQ(pyq); err != nil {
		return nil, fmt.Errorf("failed to create question paper: %w", err)
	}
	return pyq, nil
}

func (s *DefaultCatalogService) GetPYQ(pyqID string) (*models.PYQ, error) {
	pyq, err := s.Repo.GetPYQByID(pyqID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question paper: %w", err)
	}
	if pyq == nil {
		return nil, ErrNotFound
	}
	return pyq, nil
}

func (s *DefaultCatalogService) ListPYQs(subjectID string) ([]models.PYQ, error) {
	return s.Repo.ListPYQs(subjectID)
}

func (s *DefaultCatalogService) UpdatePYQ(pyq *models.PYQ) error {
	if pyq.ID == "" {
		return fmt.Errorf("question paper id is required")
	}
	pyq.UpdatedAt = time.Now()
	return s.Repo.UpdatePYQ(pyq)
}

// DeletePYQ removes the record and best-effort deletes its stored file.
func (s *DefaultCatalogService) DeletePYQ(pyqID string) error {
	pyq, err := s.GetPYQ(pyqID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeletePYQ(pyqID); err != nil {
		return fmt.Errorf("failed to delete question paper: %w", err)
	}
	s.deleteStoredFile(pyq.FileURL)
	return nil
}

// Search aggregates matching notes, PYQs and the caller's assignments.
func (s *DefaultCatalogService) Search(userID, query string) (*models.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &models.SearchResults{}, nil
	}

	notes, err := s.Repo.SearchNotes(query)
	if err != nil {
		return nil, fmt.Errorf("note search failed: %w", err)
	}
	pyqs, err := s.Repo.SearchPYQs(query)
	if err != nil {
		return nil, fmt.Errorf("question paper search failed: %w", err)
	}
	assignments, err := s.Assignments.SearchByUser(userID, query)
	if err != nil {
		return nil, fmt.Errorf("assignment search failed: %w", err)
	}

	return &models.SearchResults{
		Notes:       notes,
		PYQs:        pyqs,
		Assignments: assignments,
	}, nil
}

// deleteStoredFile removes an uploaded file. Failures only log; the catalog
// record is already gone and an orphaned file is harmless.
func (s *DefaultCatalogService) deleteStoredFile(publicID string) {
	if s.Storage == nil || publicID == "" {
		return
	}
	if err := s.Storage.DeleteFile(context.Background(), publicID); err != nil {
		utils.GetLogger().Warn("Failed to delete stored file",
			zap.String("publicID", publicID), zap.Error(err))
	}
}
