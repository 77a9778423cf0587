package user

import (
	"drivehub/models"
	"drivehub/services/notification"

	userRepo "drivehub/database/repository/user"
)

// UserService defines account management behaviour.
type UserService interface {
	// InitiateRegistration validates sign-up data, stores a registration
	// session, and issues an OTP to the supplied email.
	InitiateRegistration(req models.RegistrationRequest) error
	// VerifyRegistrationOTP completes registration once the code matches and
	// returns an authenticated session.
	VerifyRegistrationOTP(email, role, providedOTP string) (*models.AuthResponse, error)
	// Authenticate verifies credentials for the given role namespace.
	Authenticate(email, password, role string) (*models.AuthResponse, error)
	// GoogleAuthenticate verifies a Google ID token and signs the account in,
	// creating it on first use.
	GoogleAuthenticate(credential, role string) (*models.AuthResponse, error)
	// RevokeAuthToken invalidates the user's current token.
	RevokeAuthToken(userID string) error
	// GetByID fetches an account by ID.
	GetByID(id string) (*models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Notifier notification.NotificationService
}
