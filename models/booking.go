package models

import "time"

// Booking lifecycle states. pending may move to confirmed or rejected
// (owner) or cancelled (customer); the other three are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

// Booking represents a reservation request for a vehicle.
type Booking struct {
	ID          string `bson:"id" json:"_id"`
	VehicleID   string `bson:"vehicle_id" json:"vehicleId"`
	VehicleName string `bson:"vehicle_name" json:"vehicleName"`
	OwnerID     string `bson:"owner_id" json:"ownerId"`
	UserID      string `bson:"user_id" json:"userId"`

	// Contact details captured on the reservation form.
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`

	Date     string `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot string `bson:"time_slot" json:"timeSlot"`
	Days     int    `bson:"days" json:"days"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`

	Status         string    `bson:"status" json:"status"`
	RejectedReason string    `bson:"rejected_reason,omitempty" json:"rejectedReason,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest carries the fields of POST /api/bookings.
type BookingRequest struct {
	VehicleID string `json:"vehicleId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required"`
	Days      int    `json:"days"`
	Notes     string `json:"notes"`
}

// IsTerminalBookingStatus reports whether no further transition is permitted
// from the given status.
func IsTerminalBookingStatus(status string) bool {
	switch status {
	case BookingConfirmed, BookingRejected, BookingCancelled:
		return true
	}
	return false
}
