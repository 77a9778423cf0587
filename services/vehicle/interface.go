package vehicle

import (
	"context"
	"mime/multipart"

	"drivehub/models"
	"drivehub/services/storage"

	userRepo "drivehub/database/repository/user"
	vehicleRepo "drivehub/database/repository/vehicle"
)

// SubmissionInput carries the listing fields and verification documents an
// owner submits. Files are optional on update; the image is required on
// first submission.
type SubmissionInput struct {
	Name        string
	Type        string
	Fuel        string
	PricePerDay float64
	Location    string
	Description string
	Phone       string

	Image         *multipart.FileHeader
	RCBook        *multipart.FileHeader
	Insurance     *multipart.FileHeader
	Pollution     *multipart.FileHeader
	VehiclePermit *multipart.FileHeader
}

// VehicleService defines listing management behaviour for owners, customers
// and admins.
type VehicleService interface {
	// Submit creates a new listing for the owner. It enters the admin review
	// queue as pending and is invisible to customers until approved.
	Submit(ctx context.Context, ownerID string, input SubmissionInput) (*models.Vehicle, error)
	// UpdateListing edits an owner's listing. Editing an approved listing
	// sends it back through review.
	UpdateListing(ctx context.Context, ownerID, vehicleID string, input SubmissionInput) (*models.Vehicle, error)
	// DeleteListing removes an owner's listing.
	DeleteListing(ctx context.Context, ownerID, vehicleID string) error
	// ToggleAvailability flips the listing between Available and Booked.
	ToggleAvailability(ownerID, vehicleID string) (*models.Vehicle, error)
	// OwnerListings returns all listings of one owner, any review status.
	OwnerListings(ownerID string) ([]models.Vehicle, error)

	// Search returns approved listings matching the criteria. When
	// availableOnly is set, Booked listings are excluded.
	Search(criteria models.VehicleSearchCriteria, availableOnly bool) ([]models.Vehicle, error)
	// GetByID returns a single listing.
	GetByID(id string) (*models.Vehicle, error)
	// Locations returns the distinct locations of approved listings.
	Locations() ([]string, error)

	// ListAll returns every listing for the admin review queue.
	ListAll() ([]models.Vehicle, error)
	// Review records the admin decision on a pending listing. A rejection
	// requires a reason.
	Review(vehicleID, decision, reason string) (*models.Vehicle, error)
	// Stats aggregates the admin dashboard counters.
	Stats() (*models.ReviewStats, error)
}

// DefaultVehicleService is the production implementation of VehicleService.
type DefaultVehicleService struct {
	Repo    vehicleRepo.VehicleRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}
