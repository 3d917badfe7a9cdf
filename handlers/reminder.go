package handlers

import (
	"errors"
	"net/http"

	"studyhub/services/notification"
	reminderService "studyhub/services/reminder"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler serves assignment reminder authoring.
type ReminderHandler struct {
	ReminderService reminderService.ReminderService
	Capability      notification.Capability
}

// CreateReminderHandler handles POST /api/reminders. Scheduling requires
// the user to have granted notification permission first; without it the
// reminder could never fire.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req struct {
		AssignmentID string `json:"assignmentId" binding:"required"`
		Offset       string `json:"offset" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !h.Capability.Supported() {
		c.JSON(http.StatusConflict, gin.H{"error": "Notifications are not supported"})
		return
	}
	perm, err := h.Capability.QueryPermission(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to query permission", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check notification permission"})
		return
	}
	if perm != notification.PermissionGranted {
		c.JSON(http.StatusConflict, gin.H{"error": "Notification permission has not been granted"})
		return
	}

	rem, err := h.ReminderService.Create(userID, req.AssignmentID, reminderService.Offset(req.Offset))
	if err != nil {
		var passed *reminderService.PassedOffsetError
		switch {
		case errors.Is(err, reminderService.ErrAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		case errors.As(err, &passed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": passed.Error()})
		default:
			logger.Error("Failed to create reminder", zap.String("id", userID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, rem)
}

// ListUpcomingHandler handles GET /api/reminders.
func (h *ReminderHandler) ListUpcomingHandler(c *gin.Context) {
	userID := c.GetString("userID")

	upcoming, err := h.ReminderService.Upcoming(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list reminders", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminders"})
		return
	}
	c.JSON(http.StatusOK, upcoming)
}

// ReminderOptionsHandler handles GET /api/reminders/options?assignmentId=
// and GET /api/assignments/:id/reminder-options. It returns the offset
// choices for the assignment with passed ones flagged, so the client can
// disable them.
func (h *ReminderHandler) ReminderOptionsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	assignmentID := c.Param("id")
	if assignmentID == "" {
		assignmentID = c.Query("assignmentId")
	}
	if assignmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignmentId is required"})
		return
	}

	options, err := h.ReminderService.Options(userID, assignmentID)
	if err != nil {
		if errors.Is(err, reminderService.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		utils.GetLogger().Error("Failed to list reminder options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminder options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// CancelReminderHandler handles DELETE /api/reminders/:id. Cancelling an
// already-removed reminder succeeds.
func (h *ReminderHandler) CancelReminderHandler(c *gin.Context) {
	userID := c.GetString("userID")
	reminderID := c.Param("id")

	if err := h.ReminderService.Cancel(userID, reminderID); err != nil {
		utils.GetLogger().Error("Failed to cancel reminder",
			zap.String("reminderID", reminderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel reminder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder cancelled"})
}
