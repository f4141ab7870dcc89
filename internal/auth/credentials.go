// Package auth owns admin credentials and session tokens. The ledger
// core never sees a password or a hash; it is handed an Authenticator
// and trusts its verdict.
package auth

import (
	"fmt"
	"strings"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

// AuthResult is an Authenticator's verdict.
type AuthResult struct {
	OK       bool
	Username string
}

// Authenticator checks admin credentials.
type Authenticator interface {
	Authenticate(username, password string) (AuthResult, error)
}

// CredentialStore is the store-backed Authenticator. It keeps the
// singleton admin credential as a bcrypt hash and supports self-service
// credential changes.
type CredentialStore struct {
	store store.Store
}

// NewCredentialStore wraps s. Seed must be called once at boot before
// the first Authenticate.
func NewCredentialStore(s store.Store) *CredentialStore {
	return &CredentialStore{store: s}
}

// Seed writes the initial admin credential if none exists yet. An
// already-stored credential always wins over the boot-time values.
func (c *CredentialStore) Seed(username, password string) error {
	var existing models.AdminCredential
	found, err := c.store.Read(store.KeyAdmin, &existing)
	if err != nil {
		return fmt.Errorf("failed to read admin credentials: %w", err)
	}
	if found && existing.Username != "" {
		return nil
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	return c.store.Write(store.KeyAdmin, models.AdminCredential{
		Username:     username,
		PasswordHash: pw.Hash,
	})
}

// Authenticate compares the supplied credentials against the stored
// hash. A wrong username or password is a clean "no", not an error.
func (c *CredentialStore) Authenticate(username, password string) (AuthResult, error) {
	var cred models.AdminCredential
	found, err := c.store.Read(store.KeyAdmin, &cred)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to read admin credentials: %w", err)
	}
	if !found {
		return AuthResult{}, nil
	}
	if !strings.EqualFold(cred.Username, username) {
		return AuthResult{}, nil
	}

	pw := models.Password{Hash: cred.PasswordHash}
	ok, err := pw.Matches(password)
	if err != nil {
		return AuthResult{}, err
	}
	if !ok {
		return AuthResult{}, nil
	}
	return AuthResult{OK: true, Username: cred.Username}, nil
}

// Change replaces the stored credential after re-hashing the password.
func (c *CredentialStore) Change(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username must not be blank")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	return c.store.Write(store.KeyAdmin, models.AdminCredential{
		Username:     username,
		PasswordHash: pw.Hash,
	})
}
