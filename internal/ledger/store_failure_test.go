package ledger

import (
	"errors"
	"testing"

	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

// flakyStore wraps another store and, once tripped, fails every read.
// It also counts writes so tests can assert nothing was persisted
// after a failed load.
type flakyStore struct {
	inner   store.Store
	failing bool
	writes  int
}

var errBackendDown = errors.New("backend unavailable")

func (f *flakyStore) Read(key string, dest any) (bool, error) {
	if f.failing {
		return false, errBackendDown
	}
	return f.inner.Read(key, dest)
}

func (f *flakyStore) Write(key string, value any) error {
	f.writes++
	return f.inner.Write(key, value)
}

func TestUnreachableStoreIsNotAnEmptyLedger(t *testing.T) {
	inner := newTestLedger(t)
	flaky := &flakyStore{inner: inner.store}
	l := New(flaky)

	// Seed real state through the working store first.
	referrer := approvedMember(t, l, "Ref", "ref@example.com")
	id := submitTestApplication(t, l, "Alice", "alice@example.com", referrer.ReferralCode)

	flaky.failing = true
	writesBefore := flaky.writes

	if err := l.Approve(id); !errors.Is(err, errBackendDown) {
		t.Fatalf("approve during outage: err = %v, want backend error", err)
	}
	if _, err := l.Submit(SubmitInput{
		FullName:   "Bob",
		Email:      "bob@example.com",
		Phone:      "0711111111",
		ProofImage: "blob",
	}); !errors.Is(err, errBackendDown) {
		t.Fatalf("submit during outage: err = %v, want backend error", err)
	}
	if _, err := l.RequestWithdrawal("ref@example.com", 100, "0700000000"); !errors.Is(err, errBackendDown) {
		t.Fatalf("withdrawal during outage: err = %v, want backend error", err)
	}

	// A failed load must never be followed by a write: persisting an
	// empty snapshot would truncate the collections.
	if flaky.writes != writesBefore {
		t.Fatalf("writes during outage = %d, want 0", flaky.writes-writesBefore)
	}

	// Reads surface the failure instead of reporting empty collections.
	if _, err := l.Applications(""); !errors.Is(err, errBackendDown) {
		t.Fatalf("list applications during outage: err = %v, want backend error", err)
	}
	if _, err := l.Settings(); !errors.Is(err, errBackendDown) {
		t.Fatalf("settings during outage: err = %v, want backend error", err)
	}

	// Once the backend recovers, the seeded state is intact.
	flaky.failing = false
	apps, err := l.Applications("")
	if err != nil {
		t.Fatalf("list applications after recovery: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("applications after recovery = %d, want 2", len(apps))
	}
}
