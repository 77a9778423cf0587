package client

import (
	"testing"

	"drivehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminVM(t *testing.T) (*ReviewViewModel, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	return NewReviewViewModel(api, sessionStore(t, models.RoleAdmin)), api
}

func pendingListing() *models.Vehicle {
	return &models.Vehicle{ID: "v1", OwnerID: "owner-1", ReviewStatus: models.ReviewPending, Status: models.VehicleAvailable}
}

func TestApproveHappyPath(t *testing.T) {
	vm, api := adminVM(t)

	updated, err := vm.Approve(pendingListing())
	require.NoError(t, err)
	assert.Equal(t, models.ReviewApproved, updated.ReviewStatus)
	assert.Equal(t, []string{"ReviewVehicle"}, api.calls)
}

func TestApproveAlreadyReviewedMakesNoCall(t *testing.T) {
	vm, api := adminVM(t)
	listing := pendingListing()
	listing.ReviewStatus = models.ReviewApproved

	_, err := vm.Approve(listing)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Empty(t, api.calls, "precondition failure issues no request")
	assert.Equal(t, models.ReviewApproved, listing.ReviewStatus, "state unchanged")
}

func TestRejectRequiresReason(t *testing.T) {
	vm, api := adminVM(t)

	_, err := vm.Reject(pendingListing(), "  ")
	assert.ErrorIs(t, err, ErrReviewReason)
	assert.Empty(t, api.calls)
}

func TestRejectRecordsReason(t *testing.T) {
	vm, api := adminVM(t)

	updated, err := vm.Reject(pendingListing(), "insurance document expired")
	require.NoError(t, err)
	assert.Equal(t, models.ReviewRejected, updated.ReviewStatus)
	assert.Equal(t, "insurance document expired", updated.Reason)
	assert.Equal(t, []string{"ReviewVehicle"}, api.calls)
}

func TestReviewRequiresAdminRole(t *testing.T) {
	api := &fakeAPI{}
	vm := NewReviewViewModel(api, sessionStore(t, models.RoleOwner))

	_, err := vm.Approve(pendingListing())
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Empty(t, api.calls)
}

func TestToggleAvailabilityOwnerOnly(t *testing.T) {
	api := &fakeAPI{}
	store := sessionStore(t, models.RoleOwner)
	vm := NewReviewViewModel(api, store)

	foreign := pendingListing()
	foreign.OwnerID = "someone-else"
	_, err := vm.ToggleAvailability(foreign)
	assert.ErrorIs(t, err, ErrNotListingOwner)
	assert.Empty(t, api.calls)

	own := pendingListing()
	own.OwnerID = store.Current().UserID
	api.vehicleResp = &models.Vehicle{ID: own.ID, OwnerID: own.OwnerID, Status: models.VehicleBooked}

	updated, err := vm.ToggleAvailability(own)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleBooked, updated.Status)
	assert.Equal(t, []string{"ToggleVehicleStatus"}, api.calls)
}

func TestToggleAvailabilityRejectsCustomer(t *testing.T) {
	api := &fakeAPI{}
	vm := NewReviewViewModel(api, sessionStore(t, models.RoleCustomer))

	_, err := vm.ToggleAvailability(pendingListing())
	assert.ErrorIs(t, err, ErrNotListingOwner)
	assert.Empty(t, api.calls)
}
