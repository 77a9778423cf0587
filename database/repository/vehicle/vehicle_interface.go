package vehicleRepo

import "drivehub/models"

// VehicleRepository defines methods for vehicle listing data access.
type VehicleRepository interface {
	// GetByID retrieves a listing by its unique ID. Returns (nil, nil) when
	// no such listing exists.
	GetByID(id string) (*models.Vehicle, error)
	// Search retrieves approved listings matching the criteria. When
	// availableOnly is set, only listings with status Available are returned.
	Search(criteria models.VehicleSearchCriteria, availableOnly bool) ([]models.Vehicle, error)
	// GetByOwner retrieves all listings of one owner, any review status.
	GetByOwner(ownerID string) ([]models.Vehicle, error)
	// GetAll retrieves every listing (admin review queue).
	GetAll() ([]models.Vehicle, error)
	// Locations returns the distinct locations of approved listings.
	Locations() ([]string, error)
	// Create inserts a new listing.
	Create(vehicle *models.Vehicle) error
	// Update modifies an existing listing.
	Update(vehicle *models.Vehicle) error
	// Delete removes a listing by its ID.
	Delete(id string) error
	// CountsByReviewStatus aggregates the admin dashboard stats.
	CountsByReviewStatus() (*models.ReviewStats, error)
}
