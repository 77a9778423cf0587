package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"drivehub/config"
	"drivehub/models"
	"drivehub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEmailDelivery is the asynq task type for transactional email.
const TypeEmailDelivery = "email:deliver"

// Kinds of email delivery tasks.
const (
	KindBookingRequested = "booking_requested"
	KindBookingDecided   = "booking_decided"
)

var client *asynq.Client

// InitTaskClient initializes the asynq client used to enqueue background
// tasks. Call once at startup, after config is loaded.
func InitTaskClient() {
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}

// CloseTaskClient releases the asynq client connection.
func CloseTaskClient() {
	if client != nil {
		_ = client.Close()
	}
}

// EnqueueBookingEmail schedules delivery of a booking email. Enqueue failures
// are logged and swallowed; email must never fail the triggering request.
func EnqueueBookingEmail(kind, bookingID string) {
	if client == nil {
		utils.GetLogger().Warn("Task client not initialized, dropping email task",
			zap.String("kind", kind), zap.String("bookingID", bookingID))
		return
	}

	payload, err := json.Marshal(models.EmailTaskPayload{Kind: kind, BookingID: bookingID})
	if err != nil {
		utils.GetLogger().Error("Failed to marshal email task payload", zap.Error(err))
		return
	}

	task := asynq.NewTask(TypeEmailDelivery, payload)
	info, err := client.Enqueue(task,
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		utils.GetLogger().Error("Failed to enqueue email task",
			zap.String("kind", kind), zap.String("bookingID", bookingID), zap.Error(err))
		return
	}
	utils.GetLogger().Debug(fmt.Sprintf("Enqueued email task %s", info.ID),
		zap.String("kind", kind), zap.String("bookingID", bookingID))
}
