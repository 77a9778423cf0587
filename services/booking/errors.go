package booking

import "errors"

var (
	// ErrNotFound is returned when no booking exists for the ID.
	ErrNotFound = errors.New("booking not found")
	// ErrVehicleUnavailable is returned when the vehicle is not approved and
	// available for reservation.
	ErrVehicleUnavailable = errors.New("this vehicle is not available for booking")
	// ErrOwnVehicle is returned when a customer books their own listing.
	ErrOwnVehicle = errors.New("you cannot book your own vehicle")
	// ErrPastDate is returned when the reservation date is before today.
	ErrPastDate = errors.New("the reservation date cannot be in the past")
	// ErrReasonRequired is returned when a rejection carries no reason.
	ErrReasonRequired = errors.New("a reason is required to reject a booking")
	// ErrForbiddenTransition is returned when the actor is not permitted to
	// apply the requested status change.
	ErrForbiddenTransition = errors.New("you are not allowed to change this booking")
	// ErrTerminalState is returned when the booking already reached a final
	// status.
	ErrTerminalState = errors.New("this booking can no longer be changed")
)
