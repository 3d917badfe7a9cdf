package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrTemplateNotFound is returned for missing or inactive templates.
	ErrTemplateNotFound = errors.New("application template not found")
	// ErrQuotaExceeded is returned when the user's monthly application
	// allowance is used up.
	ErrQuotaExceeded = errors.New("monthly application quota exceeded")
)

// freeMonthlyApplications is the allowance for users without an active
// subscription.
const freeMonthlyApplications = 3

// CreateTemplate registers a new application template.
func (s *DefaultApplicationService) CreateTemplate(adminID string, t *models.ApplicationTemplate) (*models.ApplicationTemplate, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if t.TemplateContent == "" {
		return nil, fmt.Errorf("template content is required")
	}
	now := time.Now()
	t.ID = uuid.New().String()
	t.IsActive = true
	t.CreatedBy = adminID
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := s.Repo.CreateTemplate(t); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return t, nil
}

func (s *DefaultApplicationService) UpdateTemplate(t *models.ApplicationTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("template id is required")
	}
	t.UpdatedAt = time.Now()
	return s.Repo.UpdateTemplate(t)
}

func (s *DefaultApplicationService) DeleteTemplate(templateID string) error {
	return s.Repo.DeleteTemplate(templateID)
}

// ListTemplates returns active templates, or all of them for the admin view.
func (s *DefaultApplicationService) ListTemplates(includeInactive bool) ([]models.ApplicationTemplate, error) {
	return s.Repo.ListTemplates(!includeInactive)
}

func (s *DefaultApplicationService) GetTemplate(templateID string) (*models.ApplicationTemplate, error) {
	t, err := s.Repo.GetTemplateByID(templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	if t == nil {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

// RecordUsage stores the content a user generated from a template, subject
// to the monthly allowance of their plan.
func (s *DefaultApplicationService) RecordUsage(userID, templateID, generatedContent string) (*models.ApplicationUsage, error) {
	if generatedContent == "" {
		return nil, fmt.Errorf("generated content is required")
	}
	t, err := s.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, ErrTemplateNotFound
	}
	if err := s.checkQuota(userID); err != nil {
		return nil, err
	}

	usage := &models.ApplicationUsage{
		ID:               uuid.New().String(),
		UserID:           userID,
		TemplateID:       templateID,
		GeneratedContent: generatedContent,
		CreatedAt:        time.Now(),
	}
	if err := s.Repo.CreateUsage(usage); err != nil {
		return nil, fmt.Errorf("failed to record usage: %w", err)
	}
	return usage, nil
}

func (s *DefaultApplicationService) ListUsages(userID string) ([]models.ApplicationUsage, error) {
	return s.Repo.ListUsagesByUser(userID)
}

// checkQuota enforces the monthly allowance. Subscribed users get their
// plan's limit; a limit of zero or below means unlimited.
func (s *DefaultApplicationService) checkQuota(userID string) error {
	limit := int64(freeMonthlyApplications)

	sub, err := s.Billing.GetActiveByUser(userID)
	if err != nil {
		utils.GetLogger().Warn("Failed to fetch subscription for quota check",
			zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to check application quota: %w", err)
	}
	if sub != nil {
		plan, err := s.Billing.GetPlanByID(sub.PlanID)
		if err != nil {
			return fmt.Errorf("failed to fetch plan: %w", err)
		}
		if plan != nil {
			if plan.MonthlyApplications <= 0 {
				return nil
			}
			limit = int64(plan.MonthlyApplications)
		}
	}

	// Rolling window rather than calendar month.
	since := time.Now().AddDate(0, -1, 0)
	used, err := s.Repo.CountUsagesSince(userID, since)
	if err != nil {
		return fmt.Errorf("failed to count usages: %w", err)
	}
	if used >= limit {
		return ErrQuotaExceeded
	}
	return nil
}

// Draft asks the model for an application letter draft. The Drafter is
// optional; without one the feature is reported unavailable.
func (s *DefaultApplicationService) Draft(ctx context.Context, userID, subject, details string) (string, error) {
	if s.Drafter == nil {
		return "", fmt.Errorf("drafting is not available")
	}
	if subject == "" {
		return "", fmt.Errorf("subject is required")
	}
	if err := s.checkQuota(userID); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Write a formal application letter from a college student to their institution.\nSubject: %s\nDetails: %s\nKeep it concise and respectful.",
		subject, details,
	)
	draft, err := s.Drafter.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to draft application: %w", err)
	}
	return draft, nil
}
