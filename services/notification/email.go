package notification

import (
	"context"
	"fmt"

	"drivehub/config"
	"drivehub/models"
	"drivehub/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailNotificationService sends email through SendGrid.
type EmailNotificationService struct{}

// NewEmailNotificationService creates a SendGrid-backed NotificationService.
func NewEmailNotificationService() NotificationService {
	return &EmailNotificationService{}
}

func (s *EmailNotificationService) send(toName, toEmail, subject, plain string) error {
	apiKey := config.AppConfig.SendGridAPIKey
	if apiKey == "" {
		utils.GetLogger().Warn("SENDGRID_API_KEY not set, skipping email", zap.String("to", toEmail))
		return nil
	}

	from := mail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("email to %s returned status %d", toEmail, response.StatusCode)
	}
	return nil
}

// SendOTPEmail delivers a registration verification code.
func (s *EmailNotificationService) SendOTPEmail(ctx context.Context, email, name, code string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour DriveHub verification code is: %s. It expires in 10 minutes.", name, code)
	return s.send(name, email, "Verify your DriveHub account", body)
}

// SendBookingRequested notifies the vehicle owner of a new reservation.
func (s *EmailNotificationService) SendBookingRequested(ctx context.Context, booking *models.Booking, ownerEmail string) error {
	body := fmt.Sprintf(
		"You have a new reservation request for %s on %s at %s (%d day(s)).\nCustomer: %s, %s.\n\nOpen your dashboard to accept or reject it.",
		booking.VehicleName, booking.Date, booking.TimeSlot, booking.Days, booking.Name, booking.Phone,
	)
	return s.send("", ownerEmail, "New reservation request", body)
}

// SendBookingDecided notifies the customer of the owner's decision.
func (s *EmailNotificationService) SendBookingDecided(ctx context.Context, booking *models.Booking) error {
	var body string
	switch booking.Status {
	case models.BookingConfirmed:
		body = fmt.Sprintf(
			"Your reservation for %s on %s at %s was accepted. The owner will contact you with pickup details.",
			booking.VehicleName, booking.Date, booking.TimeSlot,
		)
	case models.BookingRejected:
		body = fmt.Sprintf("Your reservation for %s on %s was rejected.", booking.VehicleName, booking.Date)
		if booking.RejectedReason != "" {
			body += "\nReason: " + booking.RejectedReason
		}
	default:
		return nil
	}
	return s.send(booking.Name, booking.Email, "Update on your reservation", body)
}
