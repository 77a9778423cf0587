package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"drivehub/models"
)

// APIError is a non-2xx backend response. Message carries the server-supplied
// text verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAuthFailure reports whether the error is a 401 from the backend.
func IsAuthFailure(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// VehicleSubmission carries the listing fields and the local paths of the
// documents to upload.
type VehicleSubmission struct {
	Name        string
	Type        string
	Fuel        string
	PricePerDay string
	Location    string
	Description string
	Phone       string

	// Document file paths keyed by form field name (image, rcBook,
	// insurance, pollution, vehiclePermit). Missing entries are omitted.
	Documents map[string]string
}

// API is the backend boundary consumed by the view-models.
type API interface {
	Login(email, password, role string) (*models.AuthResponse, error)
	Register(req models.RegistrationRequest) error
	VerifyOTP(email, role, code string) (*models.AuthResponse, error)
	GoogleLogin(credential, role string) (*models.AuthResponse, error)

	SearchVehicles(criteria models.VehicleSearchCriteria) ([]models.Vehicle, error)
	GetVehicle(id string) (*models.Vehicle, error)
	VehicleLocations() ([]string, error)
	OwnerVehicles() ([]models.Vehicle, error)
	SubmitVehicle(sub VehicleSubmission) (*models.Vehicle, error)
	UpdateVehicle(id string, sub VehicleSubmission) (*models.Vehicle, error)
	DeleteVehicle(id string) error
	ToggleVehicleStatus(id string) (*models.Vehicle, error)

	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	MyBookings() ([]models.Booking, error)
	OwnerBookings() ([]models.Booking, error)
	UpdateBookingStatus(id, status, rejectedReason string) (*models.Booking, error)

	AdminVehicles() ([]models.Vehicle, error)
	AdminVehicle(id string) (*models.Vehicle, error)
	ReviewVehicle(id, status, reason string) (*models.Vehicle, error)
	AdminStats() (*models.ReviewStats, error)
}

// HTTPAPI talks to the marketplace backend over REST. The http.Client is
// caller-supplied; no timeout or retry policy is imposed here.
type HTTPAPI struct {
	BaseURL string
	HTTP    *http.Client
	Store   *Store
}

// NewHTTPAPI creates an API bound to the given base URL and session store.
func NewHTTPAPI(baseURL string, httpClient *http.Client, store *Store) *HTTPAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPAPI{BaseURL: baseURL, HTTP: httpClient, Store: store}
}

// do issues one request and decodes the JSON response into out (when non-nil).
// Non-2xx responses become *APIError carrying the server message.
func (a *HTTPAPI) do(method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequest(method, a.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sess := a.Store.Current(); sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		message := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			if envelope.Error != "" {
				message = envelope.Error
			} else if envelope.Message != "" {
				message = envelope.Message
			}
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *HTTPAPI) doJSON(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	return a.do(method, path, body, "application/json", out)
}

// doMultipart writes the listing fields and documents as a multipart form.
func (a *HTTPAPI) doMultipart(method, path string, sub VehicleSubmission, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        sub.Name,
		"type":        sub.Type,
		"fuel":        sub.Fuel,
		"pricePerDay": sub.PricePerDay,
		"location":    sub.Location,
		"description": sub.Description,
		"phone":       sub.Phone,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}
	for field, filePath := range sub.Documents {
		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", field, err)
		}
		part, err := writer.CreateFormFile(field, filepath.Base(filePath))
		if err != nil {
			file.Close()
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return err
		}
		file.Close()
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return a.do(method, path, &buf, writer.FormDataContentType(), out)
}

func (a *HTTPAPI) Login(email, password, role string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	payload := map[string]string{"email": email, "password": password, "role": role}
	if err := a.doJSON(http.MethodPost, "/api/users/login", payload, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (a *HTTPAPI) Register(req models.RegistrationRequest) error {
	return a.doJSON(http.MethodPost, "/api/users/register", req, nil)
}

func (a *HTTPAPI) VerifyOTP(email, role, code string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	payload := map[string]string{"email": email, "role": role, "otp": code}
	if err := a.doJSON(http.MethodPost, "/api/users/verify-otp", payload, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (a *HTTPAPI) GoogleLogin(credential, role string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	payload := map[string]string{"credential": credential, "role": role}
	if err := a.doJSON(http.MethodPost, "/api/users/google-login", payload, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (a *HTTPAPI) SearchVehicles(criteria models.VehicleSearchCriteria) ([]models.Vehicle, error) {
	query := url.Values{}
	if criteria.Type != "" {
		query.Set("type", criteria.Type)
	}
	if criteria.Location != "" {
		query.Set("location", criteria.Location)
	}
	if criteria.Date != "" {
		query.Set("date", criteria.Date)
	}
	path := "/api/vehicles"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var vehicles []models.Vehicle
	if err := a.do(http.MethodGet, path, nil, "", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (a *HTTPAPI) GetVehicle(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := a.do(http.MethodGet, "/api/vehicles/"+id, nil, "", &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *HTTPAPI) VehicleLocations() ([]string, error) {
	var locations []string
	if err := a.do(http.MethodGet, "/api/vehicles/locations/all", nil, "", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (a *HTTPAPI) OwnerVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := a.do(http.MethodGet, "/api/vehicles/owner", nil, "", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (a *HTTPAPI) SubmitVehicle(sub VehicleSubmission) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := a.doMultipart(http.MethodPost, "/api/vehicles", sub, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *HTTPAPI) UpdateVehicle(id string, sub VehicleSubmission) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := a.doMultipart(http.MethodPut, "/api/vehicles/"+id, sub, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *HTTPAPI) DeleteVehicle(id string) error {
	return a.do(http.MethodDelete, "/api/vehicles/"+id, nil, "", nil)
}

func (a *HTTPAPI) ToggleVehicleStatus(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := a.do(http.MethodPatch, "/api/vehicles/"+id+"/status", nil, "", &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *HTTPAPI) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	var b models.Booking
	if err := a.doJSON(http.MethodPost, "/api/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (a *HTTPAPI) MyBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := a.do(http.MethodGet, "/api/bookings/me", nil, "", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *HTTPAPI) OwnerBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := a.do(http.MethodGet, "/api/bookings/owner", nil, "", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *HTTPAPI) UpdateBookingStatus(id, status, rejectedReason string) (*models.Booking, error) {
	var b models.Booking
	payload := map[string]string{"status": status, "rejectedReason": rejectedReason}
	if err := a.doJSON(http.MethodPatch, "/api/bookings/"+id+"/status", payload, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (a *HTTPAPI) AdminVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := a.do(http.MethodGet, "/api/admin/vehicles", nil, "", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (a *HTTPAPI) AdminVehicle(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := a.do(http.MethodGet, "/api/admin/vehicles/"+id, nil, "", &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *HTTPAPI) ReviewVehicle(id, status, reason string) (*models.Vehicle, error) {
	var v models.Vehicle
	payload := map[string]string{"status": status, "reason": reason}
	if err := a.doJSON(http.MethodPatch, "/api/admin/vehicles/"+id+"/status", payload, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *HTTPAPI) AdminStats() (*models.ReviewStats, error) {
	var stats models.ReviewStats
	if err := a.do(http.MethodGet, "/api/admin/stats", nil, "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
