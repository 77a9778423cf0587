package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drivehub/models"
	"drivehub/services/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVehicleService returns canned data and records review decisions.
type fakeVehicleService struct {
	listing   *models.Vehicle
	stats     *models.ReviewStats
	reviewErr error

	reviewedID       string
	reviewedDecision string
	reviewedReason   string
}

func (f *fakeVehicleService) Submit(ctx context.Context, ownerID string, input vehicle.SubmissionInput) (*models.Vehicle, error) {
	return f.listing, nil
}
func (f *fakeVehicleService) UpdateListing(ctx context.Context, ownerID, vehicleID string, input vehicle.SubmissionInput) (*models.Vehicle, error) {
	return f.listing, nil
}
func (f *fakeVehicleService) DeleteListing(ctx context.Context, ownerID, vehicleID string) error {
	return nil
}
func (f *fakeVehicleService) ToggleAvailability(ownerID, vehicleID string) (*models.Vehicle, error) {
	return f.listing, nil
}
func (f *fakeVehicleService) OwnerListings(ownerID string) ([]models.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicleService) Search(criteria models.VehicleSearchCriteria, availableOnly bool) ([]models.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicleService) GetByID(id string) (*models.Vehicle, error) {
	if f.listing == nil {
		return nil, vehicle.ErrNotFound
	}
	return f.listing, nil
}
func (f *fakeVehicleService) Locations() ([]string, error) { return nil, nil }
func (f *fakeVehicleService) ListAll() ([]models.Vehicle, error) {
	if f.listing == nil {
		return nil, nil
	}
	return []models.Vehicle{*f.listing}, nil
}
func (f *fakeVehicleService) Review(vehicleID, decision, reason string) (*models.Vehicle, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	f.reviewedID = vehicleID
	f.reviewedDecision = decision
	f.reviewedReason = reason
	updated := *f.listing
	updated.ReviewStatus = decision
	updated.Reason = reason
	return &updated, nil
}
func (f *fakeVehicleService) Stats() (*models.ReviewStats, error) { return f.stats, nil }

func adminRouter(svc vehicle.VehicleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/vehicles", AdminListVehiclesHandler(svc))
	r.GET("/api/admin/vehicles/:id", AdminGetVehicleHandler(svc))
	r.PATCH("/api/admin/vehicles/:id/status", AdminReviewHandler(svc))
	r.GET("/api/admin/stats", AdminStatsHandler(svc))
	return r
}

func TestAdminReviewApprove(t *testing.T) {
	svc := &fakeVehicleService{listing: &models.Vehicle{ID: "v1", ReviewStatus: models.ReviewPending}}
	r := adminRouter(svc)

	body := strings.NewReader(`{"status":"approved"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/vehicles/v1/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "v1", svc.reviewedID)
	assert.Equal(t, "approved", svc.reviewedDecision)

	var got models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.ReviewApproved, got.ReviewStatus)
}

func TestAdminReviewRejectPassesReason(t *testing.T) {
	svc := &fakeVehicleService{listing: &models.Vehicle{ID: "v1", ReviewStatus: models.ReviewPending}}
	r := adminRouter(svc)

	body := strings.NewReader(`{"status":"rejected","reason":"blurred documents"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/vehicles/v1/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "blurred documents", svc.reviewedReason)
}

func TestAdminReviewConflictOnReviewedListing(t *testing.T) {
	svc := &fakeVehicleService{
		listing:   &models.Vehicle{ID: "v1", ReviewStatus: models.ReviewApproved},
		reviewErr: vehicle.ErrAlreadyReviewed,
	}
	r := adminRouter(svc)

	body := strings.NewReader(`{"status":"rejected","reason":"changed my mind"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/vehicles/v1/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminReviewMissingStatus(t *testing.T) {
	svc := &fakeVehicleService{listing: &models.Vehicle{ID: "v1"}}
	r := adminRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/vehicles/v1/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStats(t *testing.T) {
	svc := &fakeVehicleService{stats: &models.ReviewStats{Total: 5, Pending: 2, Approved: 2, Rejected: 1}}
	r := adminRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got models.ReviewStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 5, got.Total)
	assert.EqualValues(t, 2, got.Pending)
}
