package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"drivehub/models"
	"drivehub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func normalizeRole(role string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case models.RoleCustomer:
		return models.RoleCustomer, nil
	case models.RoleOwner:
		return models.RoleOwner, nil
	case models.RoleAdmin:
		return models.RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

// InitiateRegistration validates sign-up data, checks for duplicates, stores
// a registration session in Redis, and emails an OTP to the address.
func (s *DefaultUserService) InitiateRegistration(req models.RegistrationRequest) error {
	if req.Name == "" || req.Email == "" || req.Mobile == "" || req.Password == "" {
		return fmt.Errorf("all fields are required")
	}
	role, err := normalizeRole(req.Role)
	if err != nil {
		return err
	}
	if role == models.RoleAdmin {
		return fmt.Errorf("admin accounts cannot be self-registered")
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = role

	existing, err := s.Repo.GetByEmailAndRole(req.Email, role)
	if err != nil {
		utils.GetLogger().Error("InitiateRegistration: duplicate check failed", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return ErrDuplicateAccount
	}

	session := registrationSession{Request: req, CreatedAt: time.Now()}
	if err := saveRegistrationSession(utils.GetAuthCacheClient(), req.Email, role, session); err != nil {
		utils.GetLogger().Error("InitiateRegistration: failed to save session", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}

	code, err := utils.InitiateEmailOTP(req.Email)
	if err != nil {
		return fmt.Errorf("failed to initiate OTP: %w", err)
	}
	if err := s.Notifier.SendOTPEmail(context.Background(), req.Email, req.Name, code); err != nil {
		utils.GetLogger().Error("InitiateRegistration: failed to send OTP email", zap.Error(err))
		return fmt.Errorf("failed to send verification email")
	}
	return nil
}

// VerifyRegistrationOTP checks the provided code, persists the account, and
// returns an authenticated session.
func (s *DefaultUserService) VerifyRegistrationOTP(email, role, providedOTP string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	role, err := normalizeRole(role)
	if err != nil {
		return nil, err
	}

	sessionClient := utils.GetAuthCacheClient()
	session, err := getRegistrationSession(sessionClient, email, role)
	if err != nil {
		return nil, err
	}

	if err := utils.VerifyEmailOTP(email, providedOTP); err != nil {
		return nil, fmt.Errorf("OTP verification failed: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(session.Request.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("VerifyRegistrationOTP: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         session.Request.Name,
		Email:        email,
		Mobile:       session.Request.Mobile,
		Role:         role,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("VerifyRegistrationOTP: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	deleteRegistrationSession(sessionClient, email, role)

	return s.issueSession(&userObj)
}
