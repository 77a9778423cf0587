package client

import (
	"errors"
	"strings"
	"sync"
	"time"

	"drivehub/models"
)

// Local validation failures of the booking view-model. These are raised
// before any network call is made.
var (
	ErrNotCustomer      = errors.New("only customers can reserve a vehicle")
	ErrOwnVehicle       = errors.New("you cannot book your own vehicle")
	ErrVehicleNotListed = errors.New("this vehicle is not available for booking")
	ErrPastDate         = errors.New("the reservation date cannot be in the past")
	ErrContactRequired  = errors.New("name, email and phone are required")
	ErrSlotRequired     = errors.New("please choose a pickup time slot")
	ErrTermsRequired    = errors.New("you must accept the terms and conditions")
	ErrAgeRequired      = errors.New("you must confirm you are of legal driving age")
	ErrNotPending       = errors.New("this booking can no longer be changed")
	ErrNotYourBooking   = errors.New("you are not a party to this booking")
	ErrReasonRequired   = errors.New("a reason is required to reject a booking")
	ErrRequestInFlight  = errors.New("a request for this item is already in progress")
)

// BookingForm is the reservation form as filled by the customer.
type BookingForm struct {
	Name       string
	Email      string
	Phone      string
	Date       string // "YYYY-MM-DD"
	TimeSlot   string
	Days       int
	Notes      string
	Agree      bool
	AgeConfirm bool
}

// inflightSet disables a triggering control while its request is pending, so
// a slow response cannot be double-submitted.
type inflightSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{keys: make(map[string]struct{})}
}

func (s *inflightSet) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.keys[key]; busy {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

func (s *inflightSet) end(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
}

// BookingViewModel drives the reservation lifecycle. Every operation issues
// at most one backend request and applies the returned state only after a
// 2xx acknowledgment.
type BookingViewModel struct {
	api      API
	store    *Store
	inflight *inflightSet
	now      func() time.Time
}

// NewBookingViewModel creates a view-model bound to the API and session store.
func NewBookingViewModel(api API, store *Store) *BookingViewModel {
	return &BookingViewModel{
		api:      api,
		store:    store,
		inflight: newInflightSet(),
		now:      time.Now,
	}
}

// finish clears the session on an authorization failure so the next guard
// check redirects to login.
func (vm *BookingViewModel) finish(err error) error {
	if IsAuthFailure(err) {
		_ = vm.store.Clear()
	}
	return err
}

// RequestBooking validates the reservation locally and, only when every
// precondition holds, issues one CreateBooking call. Validation failures
// return a specific message and make no network call.
func (vm *BookingViewModel) RequestBooking(vehicle *models.Vehicle, form BookingForm) (*models.Booking, error) {
	sess := vm.store.Current()
	if sess == nil || sess.Role != models.RoleCustomer {
		return nil, ErrNotCustomer
	}
	if vehicle.OwnerID == sess.UserID {
		return nil, ErrOwnVehicle
	}
	if vehicle.ReviewStatus != models.ReviewApproved || vehicle.Status != models.VehicleAvailable {
		return nil, ErrVehicleNotListed
	}
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" || strings.TrimSpace(form.Phone) == "" {
		return nil, ErrContactRequired
	}
	if form.TimeSlot == "" {
		return nil, ErrSlotRequired
	}
	if !form.Agree {
		return nil, ErrTermsRequired
	}
	if !form.AgeConfirm {
		return nil, ErrAgeRequired
	}
	if _, err := time.Parse("2006-01-02", form.Date); err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	// Compare calendar dates in local time; Truncate works in UTC and
	// misjudges "today" in offset timezones.
	if form.Date < vm.now().Format("2006-01-02") {
		return nil, ErrPastDate
	}
	days := form.Days
	if days < 1 {
		days = 1
	}

	if !vm.inflight.begin(vehicle.ID) {
		return nil, ErrRequestInFlight
	}
	defer vm.inflight.end(vehicle.ID)

	booking, err := vm.api.CreateBooking(models.BookingRequest{
		VehicleID: vehicle.ID,
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Date:      form.Date,
		TimeSlot:  form.TimeSlot,
		Days:      days,
		Notes:     form.Notes,
	})
	if err != nil {
		return nil, vm.finish(err)
	}
	return booking, nil
}

// Cancel withdraws the customer's own pending booking. The returned record is
// the server's acknowledged state.
func (vm *BookingViewModel) Cancel(booking *models.Booking) (*models.Booking, error) {
	sess := vm.store.Current()
	if sess == nil || sess.Role != models.RoleCustomer || booking.UserID != sess.UserID {
		return nil, ErrNotYourBooking
	}
	if booking.Status != models.BookingPending {
		return nil, ErrNotPending
	}

	if !vm.inflight.begin(booking.ID) {
		return nil, ErrRequestInFlight
	}
	defer vm.inflight.end(booking.ID)

	updated, err := vm.api.UpdateBookingStatus(booking.ID, models.BookingCancelled, "")
	if err != nil {
		return nil, vm.finish(err)
	}
	return updated, nil
}

// Decide records the owner's confirm or reject decision on a pending booking.
// A rejection requires a reason; the check happens before any request.
func (vm *BookingViewModel) Decide(booking *models.Booking, outcome, reason string) (*models.Booking, error) {
	sess := vm.store.Current()
	if sess == nil || sess.Role != models.RoleOwner || booking.OwnerID != sess.UserID {
		return nil, ErrNotYourBooking
	}
	if booking.Status != models.BookingPending {
		return nil, ErrNotPending
	}
	if outcome != models.BookingConfirmed && outcome != models.BookingRejected {
		return nil, errors.New("decision must be confirmed or rejected")
	}
	if outcome == models.BookingRejected && strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	if !vm.inflight.begin(booking.ID) {
		return nil, ErrRequestInFlight
	}
	defer vm.inflight.end(booking.ID)

	updated, err := vm.api.UpdateBookingStatus(booking.ID, outcome, strings.TrimSpace(reason))
	if err != nil {
		return nil, vm.finish(err)
	}
	return updated, nil
}

// AllowedActions returns the transitions the current actor may apply to the
// booking. Terminal bookings have none, for every role.
func (vm *BookingViewModel) AllowedActions(booking *models.Booking) []string {
	sess := vm.store.Current()
	if sess == nil || booking.Status != models.BookingPending {
		return nil
	}
	switch {
	case sess.Role == models.RoleOwner && booking.OwnerID == sess.UserID:
		return []string{models.BookingConfirmed, models.BookingRejected}
	case sess.Role == models.RoleCustomer && booking.UserID == sess.UserID:
		return []string{models.BookingCancelled}
	default:
		return nil
	}
}

// MyBookings lists the customer's reservations.
func (vm *BookingViewModel) MyBookings() ([]models.Booking, error) {
	bookings, err := vm.api.MyBookings()
	if err != nil {
		return nil, vm.finish(err)
	}
	return bookings, nil
}

// OwnerBookings lists the reservations addressed to the owner's vehicles.
func (vm *BookingViewModel) OwnerBookings() ([]models.Booking, error) {
	bookings, err := vm.api.OwnerBookings()
	if err != nil {
		return nil, vm.finish(err)
	}
	return bookings, nil
}
