package services

import "errors"

// Service error taxonomy. Store and transport failures are wrapped with %w so
// callers can still match these sentinels with errors.Is.
var (
	// ErrNotFound signals that a referenced profile or conversation is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPair signals a conversation requested for a non-pair
	// (identical or empty user ids). Rejected before any store call.
	ErrInvalidPair = errors.New("conversation requires two distinct users")

	// ErrIncompleteProfile signals that the requesting profile lacks the
	// fields matching needs (gender, preferred gender, preferred age range).
	// Fatal to the whole matching request.
	ErrIncompleteProfile = errors.New("profile is missing required matching fields")
)
