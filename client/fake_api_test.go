package client

import (
	"drivehub/models"
)

// fakeAPI records every call so tests can assert that local validation
// failures never reach the network.
type fakeAPI struct {
	calls []string

	bookingResp *models.Booking
	vehicleResp *models.Vehicle
	statsResp   *models.ReviewStats
	err         error
}

func (f *fakeAPI) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Login(email, password, role string) (*models.AuthResponse, error) {
	f.record("Login")
	return nil, f.err
}

func (f *fakeAPI) Register(req models.RegistrationRequest) error {
	f.record("Register")
	return f.err
}

func (f *fakeAPI) VerifyOTP(email, role, code string) (*models.AuthResponse, error) {
	f.record("VerifyOTP")
	return nil, f.err
}

func (f *fakeAPI) GoogleLogin(credential, role string) (*models.AuthResponse, error) {
	f.record("GoogleLogin")
	return nil, f.err
}

func (f *fakeAPI) SearchVehicles(criteria models.VehicleSearchCriteria) ([]models.Vehicle, error) {
	f.record("SearchVehicles")
	return nil, f.err
}

func (f *fakeAPI) GetVehicle(id string) (*models.Vehicle, error) {
	f.record("GetVehicle")
	return f.vehicleResp, f.err
}

func (f *fakeAPI) VehicleLocations() ([]string, error) {
	f.record("VehicleLocations")
	return nil, f.err
}

func (f *fakeAPI) OwnerVehicles() ([]models.Vehicle, error) {
	f.record("OwnerVehicles")
	return nil, f.err
}

func (f *fakeAPI) SubmitVehicle(sub VehicleSubmission) (*models.Vehicle, error) {
	f.record("SubmitVehicle")
	return f.vehicleResp, f.err
}

func (f *fakeAPI) UpdateVehicle(id string, sub VehicleSubmission) (*models.Vehicle, error) {
	f.record("UpdateVehicle")
	return f.vehicleResp, f.err
}

func (f *fakeAPI) DeleteVehicle(id string) error {
	f.record("DeleteVehicle")
	return f.err
}

func (f *fakeAPI) ToggleVehicleStatus(id string) (*models.Vehicle, error) {
	f.record("ToggleVehicleStatus")
	return f.vehicleResp, f.err
}

func (f *fakeAPI) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	f.record("CreateBooking")
	if f.err != nil {
		return nil, f.err
	}
	if f.bookingResp != nil {
		return f.bookingResp, nil
	}
	return &models.Booking{
		ID:        "b1",
		VehicleID: req.VehicleID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Days:      req.Days,
		Status:    models.BookingPending,
	}, nil
}

func (f *fakeAPI) MyBookings() ([]models.Booking, error) {
	f.record("MyBookings")
	return nil, f.err
}

func (f *fakeAPI) OwnerBookings() ([]models.Booking, error) {
	f.record("OwnerBookings")
	return nil, f.err
}

func (f *fakeAPI) UpdateBookingStatus(id, status, rejectedReason string) (*models.Booking, error) {
	f.record("UpdateBookingStatus")
	if f.err != nil {
		return nil, f.err
	}
	if f.bookingResp != nil {
		return f.bookingResp, nil
	}
	return &models.Booking{ID: id, Status: status, RejectedReason: rejectedReason}, nil
}

func (f *fakeAPI) AdminVehicles() ([]models.Vehicle, error) {
	f.record("AdminVehicles")
	return nil, f.err
}

func (f *fakeAPI) AdminVehicle(id string) (*models.Vehicle, error) {
	f.record("AdminVehicle")
	return f.vehicleResp, f.err
}

func (f *fakeAPI) ReviewVehicle(id, status, reason string) (*models.Vehicle, error) {
	f.record("ReviewVehicle")
	if f.err != nil {
		return nil, f.err
	}
	if f.vehicleResp != nil {
		return f.vehicleResp, nil
	}
	return &models.Vehicle{ID: id, ReviewStatus: status, Reason: reason}, nil
}

func (f *fakeAPI) AdminStats() (*models.ReviewStats, error) {
	f.record("AdminStats")
	return f.statsResp, f.err
}
