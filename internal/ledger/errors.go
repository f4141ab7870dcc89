// Package ledger implements the referral-program core: the application
// lifecycle, the referral and withdrawal ledgers, and the program
// settings. All mutation flows through a Ledger; the HTTP layer only
// translates requests and errors.
package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the addressed application, user or withdrawal does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail: an application or user with this email already
	// exists.
	ErrDuplicateEmail = errors.New("an application with this email already exists")

	// ErrInsufficientFunds: withdrawal amount exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBelowMinimum: withdrawal amount is below the configured minimum.
	ErrBelowMinimum = errors.New("amount is below the minimum withdrawal")

	// ErrAlreadyDecided: the application is in a terminal state that
	// conflicts with the requested transition.
	ErrAlreadyDecided = errors.New("application has already been decided")

	// ErrDataIntegrity: an application has no paired user record.
	ErrDataIntegrity = errors.New("application has no paired user record")

	// ErrPollTimeout: the bounded status poll ran out of attempts.
	ErrPollTimeout = errors.New("timed out waiting for a decision")
)

// ValidationError reports malformed or missing input. Operations return
// it before any state is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
