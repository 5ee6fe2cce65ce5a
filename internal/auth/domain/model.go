package domain

import "fmt"

// RejectReason classifies why an auth attempt was rejected. Rejection is
// purely local validation; no retry semantics apply.
type RejectReason string

const (
	ReasonMissingField      RejectReason = "missing-field"
	ReasonUnknownUsername   RejectReason = "unknown-username"
	ReasonBadPassword       RejectReason = "bad-password"
	ReasonDuplicateUsername RejectReason = "duplicate-username"
)

// AuthError is a rejected signup or login attempt.
type AuthError struct {
	Reason RejectReason
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth rejected: %s", e.Reason)
}

// Rejected builds an AuthError for the given reason.
func Rejected(reason RejectReason) *AuthError {
	return &AuthError{Reason: reason}
}

// Message returns the user-facing notice for each rejection reason.
func (e *AuthError) Message() string {
	switch e.Reason {
	case ReasonMissingField:
		return "Please enter username and password"
	case ReasonUnknownUsername:
		return "No account found with this username."
	case ReasonBadPassword:
		return "Incorrect password."
	case ReasonDuplicateUsername:
		return "Account with this username already exists."
	}
	return "Authentication failed."
}
