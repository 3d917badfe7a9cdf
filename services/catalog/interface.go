package catalog

import (
	assignmentRepo "studyhub/database/repository/assignment"
	catalogRepo "studyhub/database/repository/catalog"
	"studyhub/models"
	"studyhub/services/storage"
)

type CatalogService interface {
	// Subjects.
	CreateSubject(name, code, semester string) (*models.Subject, error)
	ListSubjects() ([]models.Subject, error)
	UpdateSubject(subject *models.Subject) error
	DeleteSubject(subjectID string) error

	// Notes.
	CreateNote(note *models.Note) (*models.Note, error)
	GetNote(noteID string) (*models.Note, error)
	ListNotes(subjectID string) ([]models.Note, error)
	UpdateNote(note *models.Note) error
	DeleteNote(noteID string) error

	// PYQs.
	CreatePYQ(pyq *models.PYQ) (*models.PYQ, error)
	GetPYQ(pyqID string) (*models.PYQ, error)
	ListPYQs(subjectID string) ([]models.PYQ, error)
	UpdatePYQ(pyq *models.PYQ) error
	DeletePYQ(pyqID string) error

	// Search runs a case-insensitive title search across notes, PYQs and
	// the caller's own assignments.
	Search(userID, query string) (*models.SearchResults, error)
}

// DefaultCatalogService is the production implementation. Storage is
// optional; when set, deleting a note or PYQ also removes its stored file.
type DefaultCatalogService struct {
	Repo        catalogRepo.CatalogRepository
	Assignments assignmentRepo.AssignmentRepository
	Storage     storage.StorageService
}
