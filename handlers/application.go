package handlers

import (
	"errors"
	"net/http"

	"studyhub/models"
	applicationService "studyhub/services/application"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler serves application templates and usage recording.
type ApplicationHandler struct {
	ApplicationService applicationService.ApplicationService
}

// ListTemplatesHandler handles GET /api/applications/templates.
func (h *ApplicationHandler) ListTemplatesHandler(c *gin.Context) {
	includeInactive := c.GetBool("isAdmin") && c.Query("all") == "true"

	templates, err := h.ApplicationService.ListTemplates(includeInactive)
	if err != nil {
		utils.GetLogger().Error("Failed to list templates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplateHandler handles GET /api/applications/templates/:id.
func (h *ApplicationHandler) GetTemplateHandler(c *gin.Context) {
	t, err := h.ApplicationService.GetTemplate(c.Param("id"))
	if err != nil {
		if errors.Is(err, applicationService.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTemplateHandler handles POST /api/admin/applications/templates.
func (h *ApplicationHandler) CreateTemplateHandler(c *gin.Context) {
	var t models.ApplicationTemplate
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.ApplicationService.CreateTemplate(c.GetString("userID"), &t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTemplateHandler handles PUT /api/admin/applications/templates/:id.
func (h *ApplicationHandler) UpdateTemplateHandler(c *gin.Context) {
	var t models.ApplicationTemplate
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	t.ID = c.Param("id")

	if err := h.ApplicationService.UpdateTemplate(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTemplateHandler handles DELETE /api/admin/applications/templates/:id.
func (h *ApplicationHandler) DeleteTemplateHandler(c *gin.Context) {
	if err := h.ApplicationService.DeleteTemplate(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

// RecordUsageHandler handles POST /api/applications/usages. The client
// submits the content it produced from a template.
func (h *ApplicationHandler) RecordUsageHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		TemplateID       string `json:"templateId" binding:"required"`
		GeneratedContent string `json:"generatedContent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usage, err := h.ApplicationService.RecordUsage(userID, req.TemplateID, req.GeneratedContent)
	if err != nil {
		switch {
		case errors.Is(err, applicationService.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		case errors.Is(err, applicationService.ErrQuotaExceeded):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Monthly application quota exceeded"})
		default:
			utils.GetLogger().Error("Failed to record usage", zap.String("id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record usage"})
		}
		return
	}
	c.JSON(http.StatusCreated, usage)
}

// ListUsagesHandler handles GET /api/applications/usages.
func (h *ApplicationHandler) ListUsagesHandler(c *gin.Context) {
	userID := c.GetString("userID")

	usages, err := h.ApplicationService.ListUsages(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list usages", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list usages"})
		return
	}
	c.JSON(http.StatusOK, usages)
}

// DraftHandler handles POST /api/applications/draft.
func (h *ApplicationHandler) DraftHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Subject string `json:"subject" binding:"required"`
		Details string `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	draft, err := h.ApplicationService.Draft(c.Request.Context(), userID, req.Subject, req.Details)
	if err != nil {
		if errors.Is(err, applicationService.ErrQuotaExceeded) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Monthly application quota exceeded"})
			return
		}
		utils.GetLogger().Error("Failed to draft application", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
