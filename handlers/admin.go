package handlers

import (
	"errors"
	"net/http"

	"drivehub/services/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminListVehiclesHandler returns the full review queue, every status.
func AdminListVehiclesHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicles, err := svc.ListAll()
		if err != nil {
			getLogger(c).Error("Failed to list review queue", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
			return
		}
		c.JSON(http.StatusOK, vehicles)
	}
}

// AdminGetVehicleHandler returns one submission with its documents.
func AdminGetVehicleHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, vehicle.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
				return
			}
			getLogger(c).Error("Submission lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed, please try again"})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// AdminReviewHandler records the decision on a pending listing.
func AdminReviewHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Status string `json:"status" binding:"required"`
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		v, err := svc.Review(c.Param("id"), req.Status, req.Reason)
		if err != nil {
			switch {
			case errors.Is(err, vehicle.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, vehicle.ErrAlreadyReviewed):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				logger.Warn("Review decision rejected", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// AdminStatsHandler returns the dashboard counters.
func AdminStatsHandler(svc vehicle.VehicleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats()
		if err != nil {
			getLogger(c).Error("Failed to aggregate stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
