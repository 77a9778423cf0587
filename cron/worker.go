package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"drivehub/config"
	"drivehub/models"
	"drivehub/services/notification"
	"drivehub/services/tasks"

	bookingRepo "drivehub/database/repository/booking"
	userRepo "drivehub/database/repository/user"

	"github.com/hibiken/asynq"
)

// EmailWorker consumes queued email tasks and delivers them.
type EmailWorker struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}

// InitEmailWorker runs the async worker in background.
func InitEmailWorker(w EmailWorker) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailDelivery, w.handleEmailTask)

	go func() {
		log.Println("[EmailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func (w EmailWorker) handleEmailTask(ctx context.Context, task *asynq.Task) error {
	var p models.EmailTaskPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[EmailWorker] Invalid payload: %v", err)
		return err
	}

	booking, err := w.Bookings.GetByID(p.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		// Booking vanished; nothing to deliver.
		log.Printf("[EmailWorker] Booking %s not found, dropping task", p.BookingID)
		return nil
	}

	switch p.Kind {
	case tasks.KindBookingRequested:
		owner, err := w.Users.GetByID(booking.OwnerID)
		if err != nil {
			return err
		}
		if owner == nil {
			// Owner account deleted; retrying cannot succeed.
			log.Printf("[EmailWorker] Owner %s not found for booking %s, dropping task", booking.OwnerID, p.BookingID)
			return nil
		}
		return w.Notifier.SendBookingRequested(ctx, booking, owner.Email)
	case tasks.KindBookingDecided:
		return w.Notifier.SendBookingDecided(ctx, booking)
	default:
		log.Printf("[EmailWorker] Unknown task kind %q, dropping", p.Kind)
		return nil
	}
}
