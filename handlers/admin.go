package handlers

import (
	"net/http"

	catalogRepo "studyhub/database/repository/catalog"
	templateRepo "studyhub/database/repository/template"
	userService "studyhub/services/user"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin console: user management and dashboard
// statistics.
type AdminHandler struct {
	UserService userService.UserService
	CatalogRepo catalogRepo.CatalogRepository
	Templates   templateRepo.TemplateRepository
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetRoleHandler handles PUT /api/admin/users/:id/role.
func (h *AdminHandler) SetRoleHandler(c *gin.Context) {
	targetID := c.Param("id")

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.UserService.SetUserRole(targetID, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// StatsHandler handles GET /api/admin/stats. It aggregates the counts shown
// on the dashboard.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	users, err := h.UserService.CountUsers()
	if err != nil {
		logger.Error("Failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	subjects, err := h.CatalogRepo.CountSubjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	notes, err := h.CatalogRepo.CountNotes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	pyqs, err := h.CatalogRepo.CountPYQs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	templates, err := h.Templates.CountTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"subjects":  subjects,
		"notes":     notes,
		"pyqs":      pyqs,
		"templates": templates,
	})
}

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
