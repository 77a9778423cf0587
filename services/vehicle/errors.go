package vehicle

import "errors"

var (
	// ErrNotFound is returned when no listing exists for the ID.
	ErrNotFound = errors.New("vehicle not found")
	// ErrNotOwner is returned when an owner touches a listing they do not own.
	ErrNotOwner = errors.New("you do not own this vehicle")
	// ErrReasonRequired is returned when a rejection carries no reason.
	ErrReasonRequired = errors.New("a reason is required to reject a listing")
	// ErrAlreadyReviewed is returned when the admin decides on a listing that
	// already left the pending state.
	ErrAlreadyReviewed = errors.New("this listing has already been reviewed")
	// ErrInvalidDecision is returned for a review decision other than
	// approved or rejected.
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
)
