package auth

import (
	"path/filepath"
	"testing"

	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

func newCredentialStore(t *testing.T) *CredentialStore {
	t.Helper()
	fs, err := store.OpenFileStore(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	c := NewCredentialStore(fs)
	if err := c.Seed("admin", "correct-horse-battery"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return c
}

func TestAuthenticate(t *testing.T) {
	c := newCredentialStore(t)

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"valid", "admin", "correct-horse-battery", true},
		{"username case-insensitive", "ADMIN", "correct-horse-battery", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "correct-horse-battery", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := c.Authenticate(tc.username, tc.password)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if result.OK != tc.wantOK {
				t.Fatalf("ok = %v, want %v", result.OK, tc.wantOK)
			}
		})
	}
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	c := newCredentialStore(t)

	if err := c.Seed("intruder", "intruder-pass"); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	result, err := c.Authenticate("admin", "correct-horse-battery")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !result.OK {
		t.Fatal("original credential lost after second seed")
	}
}

func TestChangeCredentials(t *testing.T) {
	c := newCredentialStore(t)

	if err := c.Change("operator", "new-password-1"); err != nil {
		t.Fatalf("change: %v", err)
	}

	old, _ := c.Authenticate("admin", "correct-horse-battery")
	if old.OK {
		t.Fatal("old credential still works after change")
	}
	current, err := c.Authenticate("operator", "new-password-1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !current.OK {
		t.Fatal("new credential rejected")
	}
}

func TestChangeRejectsWeakInput(t *testing.T) {
	c := newCredentialStore(t)

	if err := c.Change("", "long-enough-pass"); err == nil {
		t.Fatal("blank username accepted")
	}
	if err := c.Change("admin", "short"); err == nil {
		t.Fatal("short password accepted")
	}
}
