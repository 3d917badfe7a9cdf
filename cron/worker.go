package cron

import (
	"context"
	"log"
	"time"

	"studyhub/config"
	billingRepo "studyhub/database/repository/billing"
	reminderRepo "studyhub/database/repository/reminder"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeReminderPurge     = "reminders:purge"
	TypeSubscriptionSweep = "subscriptions:expire"
)

// notifiedRetention is how long delivered reminders are kept before the
// purge job removes them.
const notifiedRetention = 30 * 24 * time.Hour

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	}
}

// InitMaintenanceWorker runs the async worker and its scheduler in background.
func InitMaintenanceWorker(reminders reminderRepo.ReminderRepository, billing billingRepo.BillingRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderPurge, handleReminderPurge(reminders))
	mux.HandleFunc(TypeSubscriptionSweep, handleSubscriptionSweep(billing))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[MaintenanceWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MaintenanceWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MaintenanceWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runScheduler()
}

// runScheduler enqueues the periodic maintenance tasks.
func runScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), nil)

	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeReminderPurge, nil)); err != nil {
		log.Printf("[MaintenanceWorker] ❌ Failed to register purge schedule: %v", err)
	}
	if _, err := scheduler.Register("@hourly", asynq.NewTask(TypeSubscriptionSweep, nil)); err != nil {
		log.Printf("[MaintenanceWorker] ❌ Failed to register expiry schedule: %v", err)
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[MaintenanceWorker] ❌ Scheduler stopped: %v", err)
	}
}

// handleReminderPurge removes delivered reminders past their retention.
func handleReminderPurge(reminders reminderRepo.ReminderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().Add(-notifiedRetention)
		removed, err := reminders.DeleteNotifiedBefore(cutoff)
		if err != nil {
			log.Printf("[ReminderPurge] ❌ Failed to purge reminders: %v", err)
			return err
		}
		log.Printf("[ReminderPurge] 🧹 Removed %d delivered reminders older than %s", removed, cutoff.Format(time.RFC3339))
		return nil
	}
}

// handleSubscriptionSweep expires subscriptions whose paid period ended.
func handleSubscriptionSweep(billing billingRepo.BillingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		expired, err := billing.ExpireDue(time.Now())
		if err != nil {
			log.Printf("[SubscriptionSweep] ❌ Failed to expire subscriptions: %v", err)
			return err
		}
		if expired > 0 {
			log.Printf("[SubscriptionSweep] ⏳ Expired %d subscriptions", expired)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[MaintenanceWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
