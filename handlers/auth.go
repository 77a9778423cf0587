package handlers

import (
	"errors"
	"net/http"

	"drivehub/models"
	"drivehub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler starts registration and sends an OTP to the email.
func RegisterHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.RegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid registration request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.InitiateRegistration(req); err != nil {
			if errors.Is(err, user.ErrDuplicateAccount) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email"})
	}
}

// VerifyOTPHandler completes registration once the emailed code matches.
func VerifyOTPHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email string `json:"email" binding:"required"`
			Role  string `json:"role" binding:"required"`
			OTP   string `json:"otp" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid OTP request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		auth, err := svc.VerifyRegistrationOTP(req.Email, req.Role, req.OTP)
		if err != nil {
			if errors.Is(err, user.ErrSessionExpired) {
				c.JSON(http.StatusGone, gin.H{"error": err.Error()})
				return
			}
			logger.Warn("OTP verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, auth)
	}
}

// LoginHandler authenticates email and password within one role namespace.
func LoginHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
			Role     string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		auth, err := svc.Authenticate(req.Email, req.Password, req.Role)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) || errors.Is(err, user.ErrGoogleAccount) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed, please try again"})
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

// GoogleLoginHandler signs in with a Google ID token, creating the account on
// first use.
func GoogleLoginHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Credential string `json:"credential" binding:"required"`
			Role       string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid Google login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		auth, err := svc.GoogleAuthenticate(req.Credential, req.Role)
		if err != nil {
			logger.Warn("Google login failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

// LogoutHandler revokes the caller's token.
func LogoutHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, _, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.RevokeAuthToken(userID); err != nil {
			logger.Error("Failed to revoke token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
