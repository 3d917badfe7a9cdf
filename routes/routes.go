package routes

import (
	"time"

	"studyhub/handlers"
	"studyhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.POST("/logout-all", hb.Auth.LogoutAllHandler)
	}
}

// RegisterUserRoutes registers profile and notification-settings endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
		api.DELETE("/me", hb.User.DeleteAccountHandler)

		api.PUT("/me/fcm-token", hb.Notification.UpdateFCMTokenHandler)
		api.GET("/me/notification-permission", hb.Notification.QueryPermissionHandler)
		api.PUT("/me/notification-permission", hb.Notification.UpdatePermissionHandler)
		api.POST("/me/notification-permission/request", hb.Notification.RequestPermissionHandler)
	}
}

// RegisterAssignmentRoutes registers assignment and reminder endpoints.
func RegisterAssignmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assignments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Assignment.CreateAssignmentHandler)
		api.GET("", hb.Assignment.ListAssignmentsHandler)
		api.GET("/:id", hb.Assignment.GetAssignmentHandler)
		api.PUT("/:id", hb.Assignment.UpdateAssignmentHandler)
		api.PUT("/:id/status", hb.Assignment.SetStatusHandler)
		api.DELETE("/:id", hb.Assignment.DeleteAssignmentHandler)
		api.GET("/:id/reminder-options", hb.Reminder.ReminderOptionsHandler)
	}

	reminders := r.Group("/api/reminders")
	{
		reminders.Use(middleware.JWTAuthMiddleware())
		reminders.POST("", hb.Reminder.CreateReminderHandler)
		reminders.GET("", hb.Reminder.ListUpcomingHandler)
		reminders.GET("/options", hb.Reminder.ReminderOptionsHandler)
		reminders.DELETE("/:id", hb.Reminder.CancelReminderHandler)
	}
}

// RegisterCatalogRoutes registers subject, note, PYQ and search endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/subjects", hb.Catalog.ListSubjectsHandler)
		api.GET("/notes", hb.Catalog.ListNotesHandler)
		api.GET("/pyqs", hb.Catalog.ListPYQsHandler)
		api.GET("/search", hb.Catalog.SearchHandler)
	}
}

// RegisterApplicationRoutes registers template browsing, usage and drafting.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/templates", hb.Application.ListTemplatesHandler)
		api.GET("/templates/:id", hb.Application.GetTemplateHandler)
		api.POST("/usages", hb.Application.RecordUsageHandler)
		api.GET("/usages", hb.Application.ListUsagesHandler)
		api.POST("/draft", hb.Application.DraftHandler)
	}
}

// RegisterBillingRoutes registers plan and subscription endpoints.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	plans := r.Group("/api/plans")
	{
		plans.GET("", hb.Billing.ListPlansHandler)
	}

	subs := r.Group("/api/subscriptions")
	{
		subs.Use(middleware.JWTAuthMiddleware())
		subs.POST("/checkout", hb.Billing.CheckoutHandler)
		subs.POST("/:id/activate", hb.Billing.ActivateHandler)
		subs.GET("/me", hb.Billing.MySubscriptionHandler)
		subs.POST("/cancel", hb.Billing.CancelSubscriptionHandler)
	}
}

// RegisterStorageRoutes registers upload endpoints. Uploads are admin-only;
// students receive files through catalog URLs.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/secure-url", hb.Storage.GetSecureDownloadURLHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware(hb.UserRepo))
		admin.POST("/:bucket", hb.Storage.UploadFileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminAuthMiddleware(hb.UserRepo))
		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.PUT("/users/:id/role", hb.Admin.SetRoleHandler)
		adminGroup.GET("/stats", hb.Admin.StatsHandler)

		adminGroup.POST("/subjects", hb.Catalog.CreateSubjectHandler)
		adminGroup.DELETE("/subjects/:id", hb.Catalog.DeleteSubjectHandler)
		adminGroup.POST("/notes", hb.Catalog.CreateNoteHandler)
		adminGroup.PUT("/notes/:id", hb.Catalog.UpdateNoteHandler)
		adminGroup.DELETE("/notes/:id", hb.Catalog.DeleteNoteHandler)
		adminGroup.POST("/pyqs", hb.Catalog.CreatePYQHandler)
		adminGroup.PUT("/pyqs/:id", hb.Catalog.UpdatePYQHandler)
		adminGroup.DELETE("/pyqs/:id", hb.Catalog.DeletePYQHandler)

		adminGroup.POST("/applications/templates", hb.Application.CreateTemplateHandler)
		adminGroup.PUT("/applications/templates/:id", hb.Application.UpdateTemplateHandler)
		adminGroup.DELETE("/applications/templates/:id", hb.Application.DeleteTemplateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAssignmentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
