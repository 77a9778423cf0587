package bookingRepo

import "drivehub/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
	// no such booking exists.
	GetByID(id string) (*models.Booking, error)
	// GetByCustomer retrieves the bookings made by one customer.
	GetByCustomer(userID string) ([]models.Booking, error)
	// GetByOwner retrieves the bookings addressed to one vehicle owner.
	GetByOwner(ownerID string) ([]models.Booking, error)
	// Create inserts a new booking.
	Create(booking *models.Booking) error
	// UpdateStatus sets the status (and optional rejection reason) of a
	// booking.
	UpdateStatus(id, status, rejectedReason string) (*models.Booking, error)
}
