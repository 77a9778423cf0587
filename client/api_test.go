package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"drivehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPAPISendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Booking{})
	}))
	defer server.Close()

	store := sessionStore(t, models.RoleCustomer)
	api := NewHTTPAPI(server.URL, server.Client(), store)

	_, err := api.MyBookings()
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestHTTPAPISurfacesServerMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "a reason is required to reject a booking"})
	}))
	defer server.Close()

	api := NewHTTPAPI(server.URL, server.Client(), sessionStore(t, models.RoleOwner))

	_, err := api.UpdateBookingStatus("b1", models.BookingRejected, "")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "a reason is required to reject a booking", apiErr.Message)
}

func TestHTTPAPIReportsAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Token mismatch"})
	}))
	defer server.Close()

	api := NewHTTPAPI(server.URL, server.Client(), sessionStore(t, models.RoleCustomer))

	_, err := api.OwnerBookings()
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))
}

func TestSearchVehiclesEscapesQueryValues(t *testing.T) {
	var gotPath, gotLocation, gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLocation = r.URL.Query().Get("location")
		gotType = r.URL.Query().Get("type")
		json.NewEncoder(w).Encode([]models.Vehicle{})
	}))
	defer server.Close()

	api := NewHTTPAPI(server.URL, server.Client(), sessionStore(t, models.RoleCustomer))

	_, err := api.SearchVehicles(models.VehicleSearchCriteria{Type: "SUV", Location: "New Delhi"})
	require.NoError(t, err)
	assert.Equal(t, "/api/vehicles", gotPath)
	assert.Equal(t, "New Delhi", gotLocation)
	assert.Equal(t, "SUV", gotType)
}

func TestOwnerVehiclesHitsOwnerPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Vehicle{})
	}))
	defer server.Close()

	api := NewHTTPAPI(server.URL, server.Client(), sessionStore(t, models.RoleOwner))

	_, err := api.OwnerVehicles()
	require.NoError(t, err)
	assert.Equal(t, "/api/vehicles/owner", gotPath)
}

func TestHTTPAPIDecodesBookingResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)

		var req models.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{ID: "b1", VehicleID: req.VehicleID, Status: models.BookingPending})
	}))
	defer server.Close()

	api := NewHTTPAPI(server.URL, server.Client(), sessionStore(t, models.RoleCustomer))

	booking, err := api.CreateBooking(models.BookingRequest{VehicleID: "v1", Name: "Asha", Email: "a@b.c", Phone: "9", Date: "2026-09-01", TimeSlot: "10:00 AM", Days: 1})
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, "v1", booking.VehicleID)
	assert.Equal(t, models.BookingPending, booking.Status)
}
