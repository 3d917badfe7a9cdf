package templateRepo

import (
	"time"

	"studyhub/models"
)

// TemplateRepository defines data access for application templates and usages.
type TemplateRepository interface {
	CreateTemplate(t *models.ApplicationTemplate) error
	// GetTemplateByID returns (nil, nil) when absent.
	GetTemplateByID(id string) (*models.ApplicationTemplate, error)
	// ListTemplates returns templates, restricted to active ones when
	// activeOnly is set.
	ListTemplates(activeOnly bool) ([]models.ApplicationTemplate, error)
	UpdateTemplate(t *models.ApplicationTemplate) error
	DeleteTemplate(id string) error
	CountTemplates() (int64, error)

	CreateUsage(u *models.ApplicationUsage) error
	ListUsagesByUser(userID string) ([]models.ApplicationUsage, error)
	CountUsagesSince(userID string, since time.Time) (int64, error)
}
