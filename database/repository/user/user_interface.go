package userRepo

import (
	"drivehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when no
	// such user exists.
	GetByID(id string) (*models.User, error)
	// GetByEmailAndRole retrieves a user by email within one role namespace.
	// Returns (nil, nil) when no such user exists.
	GetByEmailAndRole(email, role string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a partial $set update to a user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
