package vehicle

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"drivehub/models"
	"drivehub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const docsFolder = "drivehub/vehicles"

func (s *DefaultVehicleService) uploadIfPresent(ctx context.Context, file *multipart.FileHeader, current string) (string, error) {
	if file == nil {
		return current, nil
	}
	url, err := s.Storage.UploadFile(ctx, file, docsFolder)
	if err != nil {
		return "", err
	}
	return url, nil
}

// applyDocuments uploads whichever documents were supplied and writes their
// URLs onto the listing, preserving existing URLs for omitted files.
func (s *DefaultVehicleService) applyDocuments(ctx context.Context, v *models.Vehicle, input SubmissionInput) error {
	var err error
	if v.Image, err = s.uploadIfPresent(ctx, input.Image, v.Image); err != nil {
		return fmt.Errorf("failed to upload vehicle image: %w", err)
	}
	if v.RCBookURL, err = s.uploadIfPresent(ctx, input.RCBook, v.RCBookURL); err != nil {
		return fmt.Errorf("failed to upload RC book: %w", err)
	}
	if v.InsuranceURL, err = s.uploadIfPresent(ctx, input.Insurance, v.InsuranceURL); err != nil {
		return fmt.Errorf("failed to upload insurance: %w", err)
	}
	if v.PollutionURL, err = s.uploadIfPresent(ctx, input.Pollution, v.PollutionURL); err != nil {
		return fmt.Errorf("failed to upload pollution certificate: %w", err)
	}
	if v.VehiclePermitURL, err = s.uploadIfPresent(ctx, input.VehiclePermit, v.VehiclePermitURL); err != nil {
		return fmt.Errorf("failed to upload vehicle permit: %w", err)
	}
	return nil
}

func validateSubmission(input SubmissionInput) error {
	if input.Name == "" || input.Type == "" || input.Location == "" {
		return fmt.Errorf("name, type and location are required")
	}
	if input.PricePerDay <= 0 {
		return fmt.Errorf("price per day must be positive")
	}
	return nil
}

// Submit creates a new pending listing for the owner.
func (s *DefaultVehicleService) Submit(ctx context.Context, ownerID string, input SubmissionInput) (*models.Vehicle, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}
	if input.Image == nil {
		return nil, fmt.Errorf("a vehicle image is required")
	}

	owner, err := s.Users.GetByID(ownerID)
	if err != nil || owner == nil {
		utils.GetLogger().Error("Submit: failed to load owner", zap.Error(err))
		return nil, fmt.Errorf("failed to submit listing, please try again")
	}

	now := time.Now()
	v := &models.Vehicle{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		OwnerName:    owner.Name,
		Phone:        input.Phone,
		Name:         input.Name,
		Type:         input.Type,
		Fuel:         input.Fuel,
		PricePerDay:  input.PricePerDay,
		Location:     input.Location,
		Description:  input.Description,
		Status:       models.VehicleAvailable,
		ReviewStatus: models.ReviewPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if v.Phone == "" {
		v.Phone = owner.Mobile
	}

	if err := s.applyDocuments(ctx, v, input); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(v); err != nil {
		utils.GetLogger().Error("Submit: failed to persist listing", zap.Error(err))
		return nil, fmt.Errorf("failed to submit listing, please try again")
	}
	return v, nil
}

// UpdateListing edits an owner's listing. An approved listing that changes
// goes back to pending for re-review.
func (s *DefaultVehicleService) UpdateListing(ctx context.Context, ownerID, vehicleID string, input SubmissionInput) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	if v.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	v.Name = input.Name
	v.Type = input.Type
	v.Fuel = input.Fuel
	v.PricePerDay = input.PricePerDay
	v.Location = input.Location
	v.Description = input.Description
	if input.Phone != "" {
		v.Phone = input.Phone
	}
	if err := s.applyDocuments(ctx, v, input); err != nil {
		return nil, err
	}

	if v.ReviewStatus == models.ReviewApproved {
		v.ReviewStatus = models.ReviewPending
		v.Reason = ""
	}
	v.UpdatedAt = time.Now()

	if err := s.Repo.Update(v); err != nil {
		utils.GetLogger().Error("UpdateListing: failed to persist listing", zap.Error(err))
		return nil, fmt.Errorf("failed to update listing, please try again")
	}
	return v, nil
}

// DeleteListing removes an owner's listing.
func (s *DefaultVehicleService) DeleteListing(ctx context.Context, ownerID, vehicleID string) error {
	v, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNotFound
	}
	if v.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.Repo.Delete(vehicleID)
}

// ToggleAvailability flips the listing between Available and Booked.
func (s *DefaultVehicleService) ToggleAvailability(ownerID, vehicleID string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	if v.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if v.Status == models.VehicleAvailable {
		v.Status = models.VehicleBooked
	} else {
		v.Status = models.VehicleAvailable
	}
	v.UpdatedAt = time.Now()

	if err := s.Repo.Update(v); err != nil {
		utils.GetLogger().Error("ToggleAvailability: failed to persist listing", zap.Error(err))
		return nil, fmt.Errorf("failed to update availability, please try again")
	}
	return v, nil
}

// OwnerListings returns all listings of one owner.
func (s *DefaultVehicleService) OwnerListings(ownerID string) ([]models.Vehicle, error) {
	return s.Repo.GetByOwner(ownerID)
}

// Search returns approved listings matching the criteria.
func (s *DefaultVehicleService) Search(criteria models.VehicleSearchCriteria, availableOnly bool) ([]models.Vehicle, error) {
	return s.Repo.Search(criteria, availableOnly)
}

// GetByID returns a single listing.
func (s *DefaultVehicleService) GetByID(id string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// Locations returns the distinct locations of approved listings.
func (s *DefaultVehicleService) Locations() ([]string, error) {
	return s.Repo.Locations()
}

// ListAll returns every listing for the admin review queue.
func (s *DefaultVehicleService) ListAll() ([]models.Vehicle, error) {
	return s.Repo.GetAll()
}

// Review records the admin decision on a pending listing.
func (s *DefaultVehicleService) Review(vehicleID, decision, reason string) (*models.Vehicle, error) {
	decision = strings.ToLower(strings.TrimSpace(decision))
	if decision != models.ReviewApproved && decision != models.ReviewRejected {
		return nil, ErrInvalidDecision
	}
	if decision == models.ReviewRejected && strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	v, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	if v.ReviewStatus != models.ReviewPending {
		return nil, ErrAlreadyReviewed
	}

	v.ReviewStatus = decision
	if decision == models.ReviewRejected {
		v.Reason = strings.TrimSpace(reason)
	} else {
		v.Reason = ""
	}
	v.UpdatedAt = time.Now()

	if err := s.Repo.Update(v); err != nil {
		utils.GetLogger().Error("Review: failed to persist decision", zap.Error(err))
		return nil, fmt.Errorf("failed to record decision, please try again")
	}
	return v, nil
}

// Stats aggregates the admin dashboard counters.
func (s *DefaultVehicleService) Stats() (*models.ReviewStats, error) {
	return s.Repo.CountsByReviewStatus()
}
