package models

import "time"

// Reminder is a user's request to be notified before an assignment's due
// date. RemindAt must be strictly in the future at creation time and
// IsNotified only ever transitions false to true.
type Reminder struct {
	ID           string    `bson:"id" json:"id"`
	AssignmentID string    `bson:"assignment_id" json:"assignmentId"`
	UserID       string    `bson:"user_id" json:"userId"`
	RemindAt     time.Time `bson:"remind_at" json:"remindAt"`
	IsNotified   bool      `bson:"is_notified" json:"isNotified"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
