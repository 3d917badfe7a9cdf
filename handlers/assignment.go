package handlers

import (
	"errors"
	"net/http"

	assignmentService "studyhub/services/assignment"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssignmentHandler serves the authenticated user's assignments.
type AssignmentHandler struct {
	AssignmentService assignmentService.AssignmentService
}

// CreateAssignmentHandler handles POST /api/assignments.
func (h *AssignmentHandler) CreateAssignmentHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req assignmentService.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	a, err := h.AssignmentService.Create(userID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create assignment", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAssignmentsHandler handles GET /api/assignments.
func (h *AssignmentHandler) ListAssignmentsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	assignments, err := h.AssignmentService.ListByUser(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list assignments", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetAssignmentHandler handles GET /api/assignments/:id.
func (h *AssignmentHandler) GetAssignmentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	assignmentID := c.Param("id")

	a, err := h.AssignmentService.GetByID(userID, assignmentID)
	if err != nil {
		if errors.Is(err, assignmentService.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignment"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateAssignmentHandler handles PUT /api/assignments/:id.
func (h *AssignmentHandler) UpdateAssignmentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	assignmentID := c.Param("id")

	var req assignmentService.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	a, err := h.AssignmentService.Update(userID, assignmentID, req)
	if err != nil {
		if errors.Is(err, assignmentService.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// SetStatusHandler handles PUT /api/assignments/:id/status.
func (h *AssignmentHandler) SetStatusHandler(c *gin.Context) {
	userID := c.GetString("userID")
	assignmentID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.AssignmentService.SetStatus(userID, assignmentID, req.Status); err != nil {
		if errors.Is(err, assignmentService.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteAssignmentHandler handles DELETE /api/assignments/:id. Attached
// reminders are removed with it.
func (h *AssignmentHandler) DeleteAssignmentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	assignmentID := c.Param("id")

	if err := h.AssignmentService.Delete(userID, assignmentID); err != nil {
		if errors.Is(err, assignmentService.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete assignment",
			zap.String("assignmentID", assignmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted"})
}
