package application

import (
	"context"

	billingRepo "studyhub/database/repository/billing"
	templateRepo "studyhub/database/repository/template"
	"studyhub/models"
)

type ApplicationService interface {
	// Template management. Admin console only.
	CreateTemplate(adminID string, t *models.ApplicationTemplate) (*models.ApplicationTemplate, error)
	UpdateTemplate(t *models.ApplicationTemplate) error
	DeleteTemplate(templateID string) error
	ListTemplates(includeInactive bool) ([]models.ApplicationTemplate, error)
	GetTemplate(templateID string) (*models.ApplicationTemplate, error)

	// Usage tracking.
	RecordUsage(userID, templateID, generatedContent string) (*models.ApplicationUsage, error)
	ListUsages(userID string) ([]models.ApplicationUsage, error)

	// Draft produces an AI-written application letter from the user's prompt.
	Draft(ctx context.Context, userID, subject, details string) (string, error)
}

// DefaultApplicationService is the production implementation.
type DefaultApplicationService struct {
	Repo    templateRepo.TemplateRepository
	Billing billingRepo.BillingRepository
	Drafter Drafter
}
