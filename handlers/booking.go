package handlers

import (
	"errors"
	"net/http"

	"drivehub/models"
	"drivehub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrForbiddenTransition):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrTerminalState):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// CreateBookingHandler records a new reservation request.
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid booking request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		b, err := svc.Create(userID, req)
		if err != nil {
			logger.Warn("Booking creation failed", zap.Error(err))
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// MyBookingsHandler lists the caller's reservations.
func MyBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		bookings, err := svc.ForCustomer(userID)
		if err != nil {
			getLogger(c).Error("Failed to list bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// OwnerBookingsHandler lists reservations addressed to the caller's vehicles.
func OwnerBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		bookings, err := svc.ForOwner(ownerID)
		if err != nil {
			getLogger(c).Error("Failed to list owner bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// UpdateBookingStatusHandler applies one lifecycle transition on a booking.
func UpdateBookingStatusHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		actorID, actorRole, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req struct {
			Status         string `json:"status" binding:"required"`
			RejectedReason string `json:"rejectedReason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		b, err := svc.UpdateStatus(actorID, actorRole, c.Param("id"), req.Status, req.RejectedReason)
		if err != nil {
			logger.Warn("Booking status update failed", zap.Error(err))
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
