package client

import (
	"net/http"
	"testing"
	"time"

	"drivehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:           "v1",
		OwnerID:      "owner-1",
		Name:         "Swift Dzire",
		Status:       models.VehicleAvailable,
		ReviewStatus: models.ReviewApproved,
	}
}

func validForm() BookingForm {
	return BookingForm{
		Name:       "Asha",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Date:       time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		TimeSlot:   "10:00 AM",
		Days:       2,
		Agree:      true,
		AgeConfirm: true,
	}
}

func customerVM(t *testing.T, api API) (*BookingViewModel, *Store) {
	t.Helper()
	store := sessionStore(t, models.RoleCustomer)
	return NewBookingViewModel(api, store), store
}

func TestRequestBookingHappyPath(t *testing.T) {
	api := &fakeAPI{}
	vm, _ := customerVM(t, api)

	booking, err := vm.RequestBooking(approvedVehicle(), validForm())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, []string{"CreateBooking"}, api.calls, "exactly one request")
}

func TestRequestBookingValidationMakesNoNetworkCall(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	cases := []struct {
		name    string
		mutate  func(*BookingForm, *models.Vehicle)
		wantErr error
	}{
		{"past date", func(f *BookingForm, _ *models.Vehicle) { f.Date = yesterday }, ErrPastDate},
		{"terms not accepted", func(f *BookingForm, _ *models.Vehicle) { f.Agree = false }, ErrTermsRequired},
		{"age not confirmed", func(f *BookingForm, _ *models.Vehicle) { f.AgeConfirm = false }, ErrAgeRequired},
		{"missing contact", func(f *BookingForm, _ *models.Vehicle) { f.Phone = "" }, ErrContactRequired},
		{"missing time slot", func(f *BookingForm, _ *models.Vehicle) { f.TimeSlot = "" }, ErrSlotRequired},
		{"vehicle booked", func(_ *BookingForm, v *models.Vehicle) { v.Status = models.VehicleBooked }, ErrVehicleNotListed},
		{"vehicle unapproved", func(_ *BookingForm, v *models.Vehicle) { v.ReviewStatus = models.ReviewPending }, ErrVehicleNotListed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			vm, _ := customerVM(t, api)
			form := validForm()
			vehicle := approvedVehicle()
			tc.mutate(&form, vehicle)

			_, err := vm.RequestBooking(vehicle, form)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, api.calls, "no network call on local validation failure")
		})
	}
}

func TestRequestBookingAcceptsTodayInOffsetTimezone(t *testing.T) {
	api := &fakeAPI{}
	vm, _ := customerVM(t, api)
	// Late evening west of UTC, where the UTC clock has already rolled over
	// to the next day.
	zone := time.FixedZone("UTC-5", -5*60*60)
	vm.now = func() time.Time { return time.Date(2026, 3, 1, 22, 0, 0, 0, zone) }

	form := validForm()
	form.Date = "2026-03-01"

	_, err := vm.RequestBooking(approvedVehicle(), form)
	require.NoError(t, err)
	assert.Equal(t, []string{"CreateBooking"}, api.calls)
}

func TestRequestBookingRejectsNonCustomerRole(t *testing.T) {
	api := &fakeAPI{}
	store := sessionStore(t, models.RoleOwner)
	vm := NewBookingViewModel(api, store)

	_, err := vm.RequestBooking(approvedVehicle(), validForm())
	assert.ErrorIs(t, err, ErrNotCustomer)
	assert.Empty(t, api.calls)
}

func TestRequestBookingRejectsOwnVehicle(t *testing.T) {
	api := &fakeAPI{}
	vm, store := customerVM(t, api)
	sess := store.Current()

	vehicle := approvedVehicle()
	vehicle.OwnerID = sess.UserID

	_, err := vm.RequestBooking(vehicle, validForm())
	assert.ErrorIs(t, err, ErrOwnVehicle)
	assert.Empty(t, api.calls)
}

func TestCancelOnlyWhilePending(t *testing.T) {
	for _, status := range []string{models.BookingConfirmed, models.BookingRejected, models.BookingCancelled} {
		api := &fakeAPI{}
		vm, store := customerVM(t, api)
		booking := &models.Booking{ID: "b1", UserID: store.Current().UserID, Status: status}

		_, err := vm.Cancel(booking)
		assert.ErrorIs(t, err, ErrNotPending, "status %s is terminal", status)
		assert.Empty(t, api.calls)
	}
}

func TestCancelAppliesAcknowledgedState(t *testing.T) {
	api := &fakeAPI{}
	vm, store := customerVM(t, api)
	booking := &models.Booking{ID: "b1", UserID: store.Current().UserID, Status: models.BookingPending}

	updated, err := vm.Cancel(booking)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
	assert.Equal(t, []string{"UpdateBookingStatus"}, api.calls)
}

func TestDecideRejectRequiresReason(t *testing.T) {
	api := &fakeAPI{}
	store := sessionStore(t, models.RoleOwner)
	vm := NewBookingViewModel(api, store)
	booking := &models.Booking{ID: "b1", OwnerID: store.Current().UserID, Status: models.BookingPending}

	_, err := vm.Decide(booking, models.BookingRejected, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Empty(t, api.calls, "validation blocks the request")
}

func TestDecideOnlyByBookingOwner(t *testing.T) {
	api := &fakeAPI{}
	store := sessionStore(t, models.RoleOwner)
	vm := NewBookingViewModel(api, store)
	booking := &models.Booking{ID: "b1", OwnerID: "someone-else", Status: models.BookingPending}

	_, err := vm.Decide(booking, models.BookingConfirmed, "")
	assert.ErrorIs(t, err, ErrNotYourBooking)
	assert.Empty(t, api.calls)
}

func TestDecideConfirmHappyPath(t *testing.T) {
	api := &fakeAPI{}
	store := sessionStore(t, models.RoleOwner)
	vm := NewBookingViewModel(api, store)
	booking := &models.Booking{ID: "b1", OwnerID: store.Current().UserID, Status: models.BookingPending}

	updated, err := vm.Decide(booking, models.BookingConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.Equal(t, []string{"UpdateBookingStatus"}, api.calls)
}

func TestAllowedActionsFollowTransitionTable(t *testing.T) {
	api := &fakeAPI{}
	store := sessionStore(t, models.RoleOwner)
	vm := NewBookingViewModel(api, store)
	ownerID := store.Current().UserID

	pending := &models.Booking{ID: "b1", OwnerID: ownerID, Status: models.BookingPending}
	assert.Equal(t, []string{models.BookingConfirmed, models.BookingRejected}, vm.AllowedActions(pending))

	for _, status := range []string{models.BookingConfirmed, models.BookingRejected, models.BookingCancelled} {
		terminal := &models.Booking{ID: "b2", OwnerID: ownerID, Status: status}
		assert.Nil(t, vm.AllowedActions(terminal), "no controls on %s bookings", status)
	}
}

func TestAllowedActionsForCustomer(t *testing.T) {
	api := &fakeAPI{}
	vm, store := customerVM(t, api)
	userID := store.Current().UserID

	own := &models.Booking{ID: "b1", UserID: userID, Status: models.BookingPending}
	assert.Equal(t, []string{models.BookingCancelled}, vm.AllowedActions(own))

	other := &models.Booking{ID: "b2", UserID: "someone-else", Status: models.BookingPending}
	assert.Nil(t, vm.AllowedActions(other))
}

func TestAuthFailureClearsSession(t *testing.T) {
	api := &fakeAPI{err: &APIError{Status: http.StatusUnauthorized, Message: "Token mismatch"}}
	vm, store := customerVM(t, api)

	_, err := vm.MyBookings()
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))
	assert.Nil(t, store.Current(), "401 clears the persisted session")
	assert.Equal(t, RouteLogin, RequireRole(store, models.RoleCustomer).RedirectTarget)
}

func TestServerErrorLeavesSessionAndStateIntact(t *testing.T) {
	api := &fakeAPI{err: &APIError{Status: http.StatusBadRequest, Message: "this vehicle is not available for booking"}}
	vm, store := customerVM(t, api)

	_, err := vm.RequestBooking(approvedVehicle(), validForm())
	require.Error(t, err)
	assert.Equal(t, "this vehicle is not available for booking", err.Error(), "server message surfaced verbatim")
	assert.NotNil(t, store.Current(), "non-auth errors keep the session")
}
