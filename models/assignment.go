package models

import "time"

// Assignment statuses.
const (
	AssignmentPending   = "pending"
	AssignmentSubmitted = "submitted"
)

// Assignment represents coursework owned by one student.
type Assignment struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Subject     string    `bson:"subject" json:"subject"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	DueDate     time.Time `bson:"due_date" json:"dueDate"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
