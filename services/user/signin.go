package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"drivehub/config"
	"drivehub/models"
	"drivehub/services/socialauth"
	"drivehub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// issueSession mints a JWT for the user, records its hash on the account, and
// primes the auth cache so middleware avoids a database hit per request.
func (s *DefaultUserService) issueSession(userObj *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role)
	if err != nil {
		utils.GetLogger().Error("issueSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(userObj.ID, bson.M{"token_hash": tokenHash, "updated_at": time.Now()}); err != nil {
		utils.GetLogger().Error("issueSession: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + userObj.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, 30*24*time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("issueSession: failed to cache token hash", zap.Error(err))
	}

	return &models.AuthResponse{
		ID:     userObj.ID,
		Name:   userObj.Name,
		Email:  userObj.Email,
		Mobile: userObj.Mobile,
		Role:   userObj.Role,
		Token:  token,
	}, nil
}

// Authenticate verifies email and password within the given role namespace.
func (s *DefaultUserService) Authenticate(email, password, role string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	role, err := normalizeRole(role)
	if err != nil {
		return nil, err
	}

	userObj, err := s.Repo.GetByEmailAndRole(email, role)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	if userObj == nil {
		return nil, ErrInvalidCredentials
	}
	if userObj.GoogleSignIn && userObj.PasswordHash == "" {
		return nil, ErrGoogleAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(userObj)
}

// GoogleAuthenticate verifies a Google ID token and signs the account in,
// creating it on first use. Admin accounts cannot be created this way.
func (s *DefaultUserService) GoogleAuthenticate(credential, role string) (*models.AuthResponse, error) {
	role, err := normalizeRole(role)
	if err != nil {
		return nil, err
	}

	identity, err := socialauth.VerifyGoogleCredential(credential, config.AppConfig.GoogleClientID)
	if err != nil {
		utils.GetLogger().Warn("GoogleAuthenticate: credential rejected", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}

	userObj, err := s.Repo.GetByEmailAndRole(identity.Email, role)
	if err != nil {
		utils.GetLogger().Error("GoogleAuthenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	if userObj == nil {
		if role == models.RoleAdmin {
			return nil, fmt.Errorf("no admin account for this email")
		}
		now := time.Now()
		userObj = &models.User{
			ID:           uuid.New().String(),
			Name:         identity.Name,
			Email:        identity.Email,
			Role:         role,
			GoogleSignIn: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Repo.Create(userObj); err != nil {
			utils.GetLogger().Error("GoogleAuthenticate: failed to create user", zap.Error(err))
			return nil, fmt.Errorf("sign-in failed, please try again")
		}
	}

	return s.issueSession(userObj)
}

// RevokeAuthToken invalidates the user's current token by clearing the stored
// hash and evicting the cache entry.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": "", "updated_at": time.Now()}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if err := utils.GetAuthCacheClient().Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to evict cache entry", zap.Error(err))
	}
	return nil
}

// GetByID fetches an account by ID.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}
