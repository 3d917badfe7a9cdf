package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyhub/config"
	"studyhub/cron"
	"studyhub/database"
	assignmentRepoPkg "studyhub/database/repository/assignment"
	billingRepoPkg "studyhub/database/repository/billing"
	catalogRepoPkg "studyhub/database/repository/catalog"
	reminderRepoPkg "studyhub/database/repository/reminder"
	templateRepoPkg "studyhub/database/repository/template"
	userRepoPkg "studyhub/database/repository/user"
	"studyhub/handlers"
	"studyhub/routes"
	applicationService "studyhub/services/application"
	assignmentService "studyhub/services/assignment"
	billingService "studyhub/services/billing"
	catalogService "studyhub/services/catalog"
	"studyhub/services/notification"
	reminderService "studyhub/services/reminder"
	userService "studyhub/services/user"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	assignmentRepo := assignmentRepoPkg.NewMongoAssignmentRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	templateRepo := templateRepoPkg.NewMongoTemplateRepo()
	billingRepo := billingRepoPkg.NewMongoBillingRepo()

	// services.
	usrService := &userService.DefaultUserService{
		Repo: userRepo,
	}

	capability := notification.NewFCMCapability(userRepo, utils.FCMClient)

	asgService := &assignmentService.DefaultAssignmentService{
		Repo:      assignmentRepo,
		Reminders: reminderRepo,
	}

	remService := &reminderService.DefaultReminderService{
		Repo:        reminderRepo,
		Assignments: assignmentRepo,
	}

	catService := &catalogService.DefaultCatalogService{
		Repo:        catalogRepo,
		Assignments: assignmentRepo,
		Storage:     cloudinaryStorageService,
	}

	var drafter applicationService.Drafter
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := applicationService.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: drafting disabled: %v", err)
		} else {
			drafter = gemini
		}
	}
	appService := &applicationService.DefaultApplicationService{
		Repo:    templateRepo,
		Billing: billingRepo,
		Drafter: drafter,
	}

	bilService := &billingService.DefaultBillingService{
		Repo: billingRepo,
	}

	// Background reminder checker.
	checkInterval := time.Duration(config.AppConfig.ReminderCheckIntervalSec) * time.Second
	checker := reminderService.NewChecker(reminderRepo, assignmentRepo, capability, checkInterval)
	checker.Start()

	// Maintenance worker and scheduler.
	cron.InitMaintenanceWorker(reminderRepo, billingRepo)

	// Health monitor.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth: &handlers.AuthHandler{UserService: usrService},
		User: &handlers.UserHandler{UserService: usrService},
		Notification: &handlers.NotificationHandler{
			UserService: usrService,
			Capability:  capability,
		},
		Assignment: &handlers.AssignmentHandler{AssignmentService: asgService},
		Reminder: &handlers.ReminderHandler{
			ReminderService: remService,
			Capability:      capability,
		},
		Catalog:     &handlers.CatalogHandler{CatalogService: catService},
		Application: &handlers.ApplicationHandler{ApplicationService: appService},
		Billing:     &handlers.BillingHandler{BillingService: bilService},
		Storage:     handlers.NewStorageHandler(cloudinaryStorageService),
		Admin: &handlers.AdminHandler{
			UserService: usrService,
			CatalogRepo: catalogRepo,
			Templates:   templateRepo,
		},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	checker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
