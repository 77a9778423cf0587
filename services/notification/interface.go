package notification

import (
	"context"

	"drivehub/models"
)

// NotificationService delivers transactional emails. Delivery is best
// effort; failures are logged, never surfaced to the triggering request.
type NotificationService interface {
	// SendOTPEmail delivers a registration verification code.
	SendOTPEmail(ctx context.Context, email, name, code string) error
	// SendBookingRequested notifies the vehicle owner of a new reservation.
	SendBookingRequested(ctx context.Context, booking *models.Booking, ownerEmail string) error
	// SendBookingDecided notifies the customer of the owner's decision.
	SendBookingDecided(ctx context.Context, booking *models.Booking) error
}
