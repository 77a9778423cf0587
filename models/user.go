package models

import "time"

// Roles a user account can hold. A single account has exactly one role;
// the same email may exist once per role.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Mobile       string    `bson:"mobile" json:"mobile"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	GoogleSignIn bool      `bson:"google_sign_in" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// AuthResponse is the session record returned by login, OTP verification and
// Google sign-in. The web client persists it verbatim.
type AuthResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// RegistrationRequest carries the fields submitted on sign-up.
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}
