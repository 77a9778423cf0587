package booking

import (
	"drivehub/models"

	bookingRepo "drivehub/database/repository/booking"
	vehicleRepo "drivehub/database/repository/vehicle"
)

// BookingService defines the reservation lifecycle.
type BookingService interface {
	// Create validates and records a reservation request against an approved,
	// available vehicle. The new booking starts in pending.
	Create(userID string, req models.BookingRequest) (*models.Booking, error)
	// UpdateStatus applies one lifecycle transition on behalf of the actor.
	// Owners confirm or reject pending bookings on their vehicles; customers
	// cancel their own pending bookings. Terminal bookings never change.
	UpdateStatus(actorID, actorRole, bookingID, status, rejectedReason string) (*models.Booking, error)
	// ForCustomer lists the bookings made by one customer.
	ForCustomer(userID string) ([]models.Booking, error)
	// ForOwner lists the bookings addressed to one vehicle owner.
	ForOwner(ownerID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Vehicles vehicleRepo.VehicleRepository
}
