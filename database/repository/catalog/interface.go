package catalogRepo

import "studyhub/models"

// CatalogRepository defines data access for subjects, notes and PYQs.
type CatalogRepository interface {
	// Subjects.
	CreateSubject(s *models.Subject) error
	ListSubjects() ([]models.Subject, error)
	UpdateSubject(s *models.Subject) error
	DeleteSubject(id string) error

	// Notes. subjectID filters the listing when non-empty.
	CreateNote(n *models.Note) error
	GetNoteByID(id string) (*models.Note, error)
	ListNotes(subjectID string) ([]models.Note, error)
	UpdateNote(n *models.Note) error
	DeleteNote(id string) error

	// PYQs. subjectID filters the listing when non-empty.
	CreatePYQ(p *models.PYQ) error
	GetPYQByID(id string) (*models.PYQ, error)
	ListPYQs(subjectID string) ([]models.PYQ, error)
	UpdatePYQ(p *models.PYQ) error
	DeletePYQ(id string) error

	// SearchNotes and SearchPYQs match titles case-insensitively.
	SearchNotes(query string) ([]models.Note, error)
	SearchPYQs(query string) ([]models.PYQ, error)

	// Counts for the admin dashboard.
	CountSubjects() (int64, error)
	CountNotes() (int64, error)
	CountPYQs() (int64, error)
}
