package models

import "time"

// ApplicationTemplate is an admin-managed letter template. Placeholder
// substitution happens on the client; the server only stores the template
// text and the placeholder names it advertises.
type ApplicationTemplate struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	TemplateContent string    `bson:"template_content" json:"templateContent"`
	Placeholders    []string  `bson:"placeholders,omitempty" json:"placeholders,omitempty"`
	IsActive        bool      `bson:"is_active" json:"isActive"`
	CreatedBy       string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// ApplicationUsage records one generated application letter.
type ApplicationUsage struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"user_id" json:"userId"`
	TemplateID       string    `bson:"template_id" json:"templateId"`
	GeneratedContent string    `bson:"generated_content,omitempty" json:"generatedContent,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}
