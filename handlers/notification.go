package handlers

import (
	"net/http"

	"studyhub/services/notification"
	userService "studyhub/services/user"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves push registration and permission state.
type NotificationHandler struct {
	UserService userService.UserService
	Capability  notification.Capability
}

// UpdateFCMTokenHandler handles PUT /api/users/me/fcm-token.
func (h *NotificationHandler) UpdateFCMTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.UpdateFCMToken(userID, req.Token); err != nil {
		utils.GetLogger().Error("Failed to update FCM token", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}

// UpdatePermissionHandler handles PUT /api/users/me/notification-permission.
// The client reports the browser permission state after prompting the user.
func (h *NotificationHandler) UpdatePermissionHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Permission string `json:"permission" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.UpdateNotificationPermission(userID, req.Permission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permission updated"})
}

// QueryPermissionHandler handles GET /api/users/me/notification-permission.
func (h *NotificationHandler) QueryPermissionHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if !h.Capability.Supported() {
		c.JSON(http.StatusOK, gin.H{"permission": notification.PermissionUnsupported, "supported": false})
		return
	}

	perm, err := h.Capability.QueryPermission(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to query permission", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query permission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"permission": perm, "supported": true})
}

// RequestPermissionHandler handles POST /api/users/me/notification-permission/request.
func (h *NotificationHandler) RequestPermissionHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if !h.Capability.Supported() {
		c.JSON(http.StatusConflict, gin.H{"error": "Notifications are not supported"})
		return
	}

	granted, err := h.Capability.RequestPermission(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to request permission", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request permission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"granted": granted})
}
