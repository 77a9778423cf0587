package booking

import (
	"fmt"
	"strings"
	"time"

	"drivehub/models"
	"drivehub/services/tasks"
	"drivehub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func validateRequest(req models.BookingRequest) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return fmt.Errorf("name, email and phone are required")
	}
	if req.TimeSlot == "" {
		return fmt.Errorf("a pickup time slot is required")
	}
	if req.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return fmt.Errorf("invalid date, expected YYYY-MM-DD")
	}
	// Compare calendar dates in local time; Truncate works in UTC and
	// misjudges "today" in offset timezones.
	if req.Date < time.Now().Format(dateLayout) {
		return ErrPastDate
	}
	return nil
}

// Create validates and records a reservation request. The vehicle must be
// approved and marked Available, and the customer cannot reserve their own
// listing.
func (s *DefaultBookingService) Create(userID string, req models.BookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	vehicle, err := s.Vehicles.GetByID(req.VehicleID)
	if err != nil {
		utils.GetLogger().Error("Create booking: vehicle lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}
	if vehicle == nil || vehicle.ReviewStatus != models.ReviewApproved {
		return nil, ErrVehicleUnavailable
	}
	if vehicle.Status != models.VehicleAvailable {
		return nil, ErrVehicleUnavailable
	}
	if vehicle.OwnerID == userID {
		return nil, ErrOwnVehicle
	}

	now := time.Now()
	b := &models.Booking{
		ID:          uuid.New().String(),
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.Name,
		OwnerID:     vehicle.OwnerID,
		UserID:      userID,
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Days:        req.Days,
		Notes:       req.Notes,
		Status:      models.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(b); err != nil {
		utils.GetLogger().Error("Create booking: failed to persist", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}

	tasks.EnqueueBookingEmail(tasks.KindBookingRequested, b.ID)
	return b, nil
}

// UpdateStatus applies one lifecycle transition. The permitted transitions
// depend on who asks:
//
//	owner of the vehicle:  pending -> confirmed | rejected (reason required)
//	customer who booked:   pending -> cancelled
//
// confirmed, rejected and cancelled are final.
func (s *DefaultBookingService) UpdateStatus(actorID, actorRole, bookingID, status, rejectedReason string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("UpdateStatus: booking lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking, please try again")
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if models.IsTerminalBookingStatus(b.Status) {
		return nil, ErrTerminalState
	}

	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case models.BookingConfirmed, models.BookingRejected:
		if actorRole != models.RoleOwner || b.OwnerID != actorID {
			return nil, ErrForbiddenTransition
		}
		if status == models.BookingRejected && strings.TrimSpace(rejectedReason) == "" {
			return nil, ErrReasonRequired
		}
	case models.BookingCancelled:
		if actorRole != models.RoleCustomer || b.UserID != actorID {
			return nil, ErrForbiddenTransition
		}
	default:
		return nil, fmt.Errorf("unknown booking status %q", status)
	}

	if status != models.BookingRejected {
		rejectedReason = ""
	}
	updated, err := s.Repo.UpdateStatus(bookingID, status, strings.TrimSpace(rejectedReason))
	if err != nil {
		utils.GetLogger().Error("UpdateStatus: failed to persist", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking, please try again")
	}

	if status == models.BookingConfirmed || status == models.BookingRejected {
		tasks.EnqueueBookingEmail(tasks.KindBookingDecided, updated.ID)
	}
	return updated, nil
}

// ForCustomer lists the bookings made by one customer.
func (s *DefaultBookingService) ForCustomer(userID string) ([]models.Booking, error) {
	return s.Repo.GetByCustomer(userID)
}

// ForOwner lists the bookings addressed to one vehicle owner.
func (s *DefaultBookingService) ForOwner(ownerID string) ([]models.Booking, error) {
	return s.Repo.GetByOwner(ownerID)
}
