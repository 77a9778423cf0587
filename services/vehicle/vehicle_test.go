package vehicle

import (
	"context"
	"mime/multipart"
	"testing"

	"drivehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeVehicleRepo struct {
	vehicles map[string]*models.Vehicle
}

func newFakeVehicleRepo(vehicles ...*models.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[string]*models.Vehicle)}
	for _, v := range vehicles {
		repo.vehicles[v.ID] = v
	}
	return repo
}

func (r *fakeVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVehicleRepo) Search(criteria models.VehicleSearchCriteria, availableOnly bool) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range r.vehicles {
		if v.ReviewStatus != models.ReviewApproved {
			continue
		}
		if availableOnly && v.Status != models.VehicleAvailable {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) GetByOwner(ownerID string) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) GetAll() ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Locations() ([]string, error)                       { return nil, nil }
func (r *fakeVehicleRepo) Create(v *models.Vehicle) error                     { r.vehicles[v.ID] = v; return nil }
func (r *fakeVehicleRepo) Update(v *models.Vehicle) error                     { r.vehicles[v.ID] = v; return nil }
func (r *fakeVehicleRepo) Delete(id string) error                             { delete(r.vehicles, id); return nil }
func (r *fakeVehicleRepo) CountsByReviewStatus() (*models.ReviewStats, error) { return nil, nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmailAndRole(email, role string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                                { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                                { return nil }
func (r *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error              { return nil }
func (r *fakeUserRepo) Delete(id string) error                                     { return nil }

type fakeStorage struct {
	uploads int
}

func (s *fakeStorage) UploadFile(ctx context.Context, file *multipart.FileHeader, destFolder string) (string, error) {
	s.uploads++
	return "https://cdn.example.com/" + file.Filename, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, publicID string) error { return nil }

func pendingListing() *models.Vehicle {
	return &models.Vehicle{
		ID:           "v1",
		OwnerID:      "owner-1",
		Name:         "Swift Dzire",
		Type:         "car",
		Location:     "Kochi",
		PricePerDay:  1200,
		Status:       models.VehicleAvailable,
		ReviewStatus: models.ReviewPending,
	}
}

func newService(repo *fakeVehicleRepo) *DefaultVehicleService {
	return &DefaultVehicleService{
		Repo: repo,
		Users: &fakeUserRepo{users: map[string]*models.User{
			"owner-1": {ID: "owner-1", Name: "Ravi", Mobile: "9876500000", Role: models.RoleOwner},
		}},
		Storage: &fakeStorage{},
	}
}

func TestSubmitCreatesPendingListing(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := newService(repo)

	v, err := svc.Submit(context.Background(), "owner-1", SubmissionInput{
		Name:        "Swift Dzire",
		Type:        "car",
		Fuel:        "petrol",
		PricePerDay: 1200,
		Location:    "Kochi",
		Image:       &multipart.FileHeader{Filename: "car.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewPending, v.ReviewStatus)
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, "Ravi", v.OwnerName)
	assert.Equal(t, "9876500000", v.Phone, "falls back to the owner's mobile")
	assert.NotEmpty(t, v.Image)
}

func TestSubmitRequiresImage(t *testing.T) {
	svc := newService(newFakeVehicleRepo())

	_, err := svc.Submit(context.Background(), "owner-1", SubmissionInput{
		Name: "Swift Dzire", Type: "car", PricePerDay: 1200, Location: "Kochi",
	})
	assert.Error(t, err)
}

func TestUpdateApprovedListingReturnsToPending(t *testing.T) {
	listing := pendingListing()
	listing.ReviewStatus = models.ReviewApproved
	repo := newFakeVehicleRepo(listing)
	svc := newService(repo)

	v, err := svc.UpdateListing(context.Background(), "owner-1", "v1", SubmissionInput{
		Name: "Swift Dzire ZXI", Type: "car", PricePerDay: 1400, Location: "Kochi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewPending, v.ReviewStatus, "edits go back through review")
	assert.Equal(t, "Swift Dzire ZXI", v.Name)
}

func TestUpdateRejectedListingStaysRejected(t *testing.T) {
	listing := pendingListing()
	listing.ReviewStatus = models.ReviewRejected
	listing.Reason = "documents unreadable"
	svc := newService(newFakeVehicleRepo(listing))

	v, err := svc.UpdateListing(context.Background(), "owner-1", "v1", SubmissionInput{
		Name: "Swift Dzire", Type: "car", PricePerDay: 1200, Location: "Kochi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewRejected, v.ReviewStatus, "no resubmission path for rejected listings")
}

func TestUpdateForeignListingForbidden(t *testing.T) {
	svc := newService(newFakeVehicleRepo(pendingListing()))

	_, err := svc.UpdateListing(context.Background(), "owner-2", "v1", SubmissionInput{
		Name: "Swift", Type: "car", PricePerDay: 1000, Location: "Kochi",
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestToggleAvailabilityFlips(t *testing.T) {
	svc := newService(newFakeVehicleRepo(pendingListing()))

	v, err := svc.ToggleAvailability("owner-1", "v1")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleBooked, v.Status)

	v, err = svc.ToggleAvailability("owner-1", "v1")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, v.Status)
}

func TestToggleAvailabilityForeignOwner(t *testing.T) {
	svc := newService(newFakeVehicleRepo(pendingListing()))

	_, err := svc.ToggleAvailability("owner-2", "v1")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestReviewApprovePending(t *testing.T) {
	svc := newService(newFakeVehicleRepo(pendingListing()))

	v, err := svc.Review("v1", "approved", "")
	require.NoError(t, err)
	assert.Equal(t, models.ReviewApproved, v.ReviewStatus)
	assert.Empty(t, v.Reason)
}

func TestReviewRejectRequiresReason(t *testing.T) {
	svc := newService(newFakeVehicleRepo(pendingListing()))

	_, err := svc.Review("v1", "rejected", "  ")
	assert.ErrorIs(t, err, ErrReasonRequired)

	v, err := svc.Review("v1", "rejected", "insurance expired")
	require.NoError(t, err)
	assert.Equal(t, models.ReviewRejected, v.ReviewStatus)
	assert.Equal(t, "insurance expired", v.Reason)
}

func TestReviewIsPendingOnly(t *testing.T) {
	listing := pendingListing()
	listing.ReviewStatus = models.ReviewApproved
	svc := newService(newFakeVehicleRepo(listing))

	_, err := svc.Review("v1", "rejected", "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReviewUnknownDecision(t *testing.T) {
	svc := newService(newFakeVehicleRepo(pendingListing()))

	_, err := svc.Review("v1", "maybe", "")
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestSearchHidesUnapprovedListings(t *testing.T) {
	approved := pendingListing()
	approved.ID = "v-approved"
	approved.ReviewStatus = models.ReviewApproved

	booked := pendingListing()
	booked.ID = "v-booked"
	booked.ReviewStatus = models.ReviewApproved
	booked.Status = models.VehicleBooked

	svc := newService(newFakeVehicleRepo(pendingListing(), approved, booked))

	results, err := svc.Search(models.VehicleSearchCriteria{}, true)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "v-approved", results[0].ID)
}
