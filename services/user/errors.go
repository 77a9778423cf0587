package user

import "errors"

var (
	// ErrInvalidCredentials is returned when the email, password or role do
	// not match an account.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateAccount is returned when an account already exists for the
	// email within the requested role.
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	// ErrSessionExpired is returned when no registration session is found for
	// the email, usually because the OTP window lapsed.
	ErrSessionExpired = errors.New("registration session expired, please sign up again")
	// ErrGoogleAccount is returned when a password login is attempted against
	// an account created through Google sign-in.
	ErrGoogleAccount = errors.New("this account uses Google sign-in")
)
