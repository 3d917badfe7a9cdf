package models

import "time"

// Subject groups notes and question papers for one course unit.
type Subject struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Code      string    `bson:"code,omitempty" json:"code,omitempty"`
	Semester  string    `bson:"semester,omitempty" json:"semester,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Note is an uploaded study note PDF.
type Note struct {
	ID          string    `bson:"id" json:"id"`
	SubjectID   string    `bson:"subject_id,omitempty" json:"subjectId,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Chapter     string    `bson:"chapter,omitempty" json:"chapter,omitempty"`
	FileURL     string    `bson:"file_url" json:"fileUrl"`
	FileName    string    `bson:"file_name,omitempty" json:"fileName,omitempty"`
	IsPremium   bool      `bson:"is_premium" json:"isPremium"`
	CreatedBy   string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// PYQ is a past-year question paper PDF.
type PYQ struct {
	ID                   string    `bson:"id" json:"id"`
	SubjectID            string    `bson:"subject_id,omitempty" json:"subjectId,omitempty"`
	Title                string    `bson:"title" json:"title"`
	Year                 int       `bson:"year" json:"year"`
	FileURL              string    `bson:"file_url" json:"fileUrl"`
	FileName             string    `bson:"file_name,omitempty" json:"fileName,omitempty"`
	IsImportant          bool      `bson:"is_important" json:"isImportant"`
	IsFrequentlyRepeated bool      `bson:"is_frequently_repeated" json:"isFrequentlyRepeated"`
	IsPremium            bool      `bson:"is_premium" json:"isPremium"`
	CreatedBy            string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt            time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updatedAt"`
}

// SearchResults aggregates a global search across the catalog and the
// caller's own assignments.
type SearchResults struct {
	Notes       []Note       `json:"notes"`
	PYQs        []PYQ        `json:"pyqs"`
	Assignments []Assignment `json:"assignments"`
}
