package client

import (
	"errors"
	"strings"

	"drivehub/models"
)

// Local validation failures of the review view-model.
var (
	ErrNotAdmin        = errors.New("only the admin can review listings")
	ErrNotListingOwner = errors.New("you do not own this vehicle")
	ErrAlreadyReviewed = errors.New("this listing has already been reviewed")
	ErrReviewReason    = errors.New("a reason is required to reject a listing")
)

// ReviewViewModel drives the admin listing-review workflow and the owner's
// availability toggle. Like the booking view-model, it never mutates local
// state before the backend acknowledges the operation.
type ReviewViewModel struct {
	api      API
	store    *Store
	inflight *inflightSet
}

// NewReviewViewModel creates a view-model bound to the API and session store.
func NewReviewViewModel(api API, store *Store) *ReviewViewModel {
	return &ReviewViewModel{api: api, store: store, inflight: newInflightSet()}
}

func (vm *ReviewViewModel) finish(err error) error {
	if IsAuthFailure(err) {
		_ = vm.store.Clear()
	}
	return err
}

func (vm *ReviewViewModel) decide(listing *models.Vehicle, decision, reason string) (*models.Vehicle, error) {
	sess := vm.store.Current()
	if sess == nil || sess.Role != models.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if listing.ReviewStatus != models.ReviewPending {
		return nil, ErrAlreadyReviewed
	}

	if !vm.inflight.begin(listing.ID) {
		return nil, ErrRequestInFlight
	}
	defer vm.inflight.end(listing.ID)

	updated, err := vm.api.ReviewVehicle(listing.ID, decision, reason)
	if err != nil {
		return nil, vm.finish(err)
	}
	return updated, nil
}

// Approve marks a pending listing approved, making it discoverable in
// customer search.
func (vm *ReviewViewModel) Approve(listing *models.Vehicle) (*models.Vehicle, error) {
	return vm.decide(listing, models.ReviewApproved, "")
}

// Reject marks a pending listing rejected. The reason is mandatory and is
// shown to the owner.
func (vm *ReviewViewModel) Reject(listing *models.Vehicle, reason string) (*models.Vehicle, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReviewReason
	}
	return vm.decide(listing, models.ReviewRejected, strings.TrimSpace(reason))
}

// ToggleAvailability flips the owner's listing between Available and Booked,
// independent of its review status.
func (vm *ReviewViewModel) ToggleAvailability(listing *models.Vehicle) (*models.Vehicle, error) {
	sess := vm.store.Current()
	if sess == nil || sess.Role != models.RoleOwner || listing.OwnerID != sess.UserID {
		return nil, ErrNotListingOwner
	}

	if !vm.inflight.begin(listing.ID) {
		return nil, ErrRequestInFlight
	}
	defer vm.inflight.end(listing.ID)

	updated, err := vm.api.ToggleVehicleStatus(listing.ID)
	if err != nil {
		return nil, vm.finish(err)
	}
	return updated, nil
}

// Queue returns the full review queue for the admin dashboard.
func (vm *ReviewViewModel) Queue() ([]models.Vehicle, error) {
	vehicles, err := vm.api.AdminVehicles()
	if err != nil {
		return nil, vm.finish(err)
	}
	return vehicles, nil
}

// Stats returns the admin dashboard counters.
func (vm *ReviewViewModel) Stats() (*models.ReviewStats, error) {
	stats, err := vm.api.AdminStats()
	if err != nil {
		return nil, vm.finish(err)
	}
	return stats, nil
}
