package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"drivehub/models"
	"drivehub/services/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func optionalFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

// bindSubmission reads the multipart listing form.
func bindSubmission(c *gin.Context) (vehicle.SubmissionInput, error) {
	price, err := strconv.ParseFloat(c.PostForm("pricePerDay"), 64)
	if err != nil {
		return vehicle.SubmissionInput{}, errors.New("pricePerDay must be a number")
	}

	return vehicle.SubmissionInput{
		Name:        c.PostForm("name"),
		Type:        c.PostForm("type"),
		Fuel:        c.PostForm("fuel"),
		PricePerDay: price,
		Location:    c.PostForm("location"),
		Description: c.PostForm("description"),
		Phone:       c.PostForm("phone"),

		Image:         optionalFile(c, "image"),
		RCBook:        optionalFile(c, "rcBook"),
		Insurance:     optionalFile(c, "insurance"),
		Pollution:     optionalFile(c, "pollution"),
		VehiclePermit: optionalFile(c, "vehiclePermit"),
	}, nil
}

func vehicleErrorStatus(err error) int {
	switch {
	case errors.Is(err, vehicle.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, vehicle.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// SearchVehiclesHandler returns approved listings matching the query. Booked
// vehicles are hidden from customers.
func SearchVehiclesHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var criteria models.VehicleSearchCriteria
		if err := c.ShouldBindQuery(&criteria); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
			return
		}

		vehicles, err := svc.Search(criteria, true)
		if err != nil {
			logger.Error("Vehicle search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed, please try again"})
			return
		}
		c.JSON(http.StatusOK, vehicles)
	}
}

// GetVehicleHandler returns one listing.
func GetVehicleHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, vehicle.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
				return
			}
			getLogger(c).Error("Vehicle lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed, please try again"})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// VehicleLocationsHandler returns the distinct locations of approved listings.
func VehicleLocationsHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := svc.Locations()
		if err != nil {
			getLogger(c).Error("Failed to list locations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
			return
		}
		c.JSON(http.StatusOK, locations)
	}
}

// SubmitVehicleHandler creates a pending listing from a multipart form.
func SubmitVehicleHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		ownerID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		input, err := bindSubmission(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		v, err := svc.Submit(c.Request.Context(), ownerID, input)
		if err != nil {
			logger.Error("Vehicle submission failed", zap.Error(err))
			c.JSON(vehicleErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

// UpdateVehicleHandler edits an owner's listing.
func UpdateVehicleHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		ownerID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		input, err := bindSubmission(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		v, err := svc.UpdateListing(c.Request.Context(), ownerID, c.Param("id"), input)
		if err != nil {
			logger.Error("Vehicle update failed", zap.Error(err))
			c.JSON(vehicleErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// DeleteVehicleHandler removes an owner's listing.
func DeleteVehicleHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.DeleteListing(c.Request.Context(), ownerID, c.Param("id")); err != nil {
			getLogger(c).Error("Vehicle deletion failed", zap.Error(err))
			c.JSON(vehicleErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
	}
}

// ToggleAvailabilityHandler flips a listing between Available and Booked.
func ToggleAvailabilityHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		v, err := svc.ToggleAvailability(ownerID, c.Param("id"))
		if err != nil {
			getLogger(c).Error("Availability toggle failed", zap.Error(err))
			c.JSON(vehicleErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// OwnerVehiclesHandler lists the caller's own listings, any review status.
func OwnerVehiclesHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		vehicles, err := svc.OwnerListings(ownerID)
		if err != nil {
			getLogger(c).Error("Failed to list owner vehicles", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
			return
		}
		c.JSON(http.StatusOK, vehicles)
	}
}
