package handlers

import (
	"errors"
	"net/http"

	billingService "studyhub/services/billing"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler serves plans and subscriptions.
type BillingHandler struct {
	BillingService billingService.BillingService
}

// ListPlansHandler handles GET /api/plans.
func (h *BillingHandler) ListPlansHandler(c *gin.Context) {
	plans, err := h.BillingService.ListPlans()
	if err != nil {
		utils.GetLogger().Error("Failed to list plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// CheckoutHandler handles POST /api/subscriptions/checkout.
func (h *BillingHandler) CheckoutHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		PlanID string `json:"planId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.BillingService.Checkout(userID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, billingService.ErrAlreadySubscribed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Checkout failed", zap.String("id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// ActivateHandler handles POST /api/subscriptions/:id/activate, called after
// the client completes payment.
func (h *BillingHandler) ActivateHandler(c *gin.Context) {
	if err := h.BillingService.ActivateSubscription(c.Param("id")); err != nil {
		utils.GetLogger().Error("Failed to activate subscription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription activated"})
}

// MySubscriptionHandler handles GET /api/subscriptions/me.
func (h *BillingHandler) MySubscriptionHandler(c *gin.Context) {
	userID := c.GetString("userID")

	view, err := h.BillingService.MySubscription(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch subscription", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscription"})
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, gin.H{"subscription": nil})
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelSubscriptionHandler handles POST /api/subscriptions/cancel.
func (h *BillingHandler) CancelSubscriptionHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.BillingService.CancelSubscription(userID); err != nil {
		utils.GetLogger().Error("Failed to cancel subscription", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}
