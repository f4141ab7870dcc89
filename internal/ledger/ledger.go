package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

// Ledger owns all program state. Every operation takes the mutex, reads
// the collections it needs, validates fully, and only then persists the
// affected collections, so a failed operation leaves the store
// untouched and a successful one is never half-written. A read failure
// of the store backend aborts the operation: an unreachable store is
// never mistaken for an empty collection.
type Ledger struct {
	mu      sync.Mutex
	store   store.Store
	baseURL string
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithBaseURL sets the public base URL used when building referral links.
func WithBaseURL(u string) Option {
	return func(l *Ledger) { l.baseURL = strings.TrimRight(u, "/") }
}

// WithClock overrides the time source. Tests use this to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New builds a Ledger on top of s.
func New(s store.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:   s,
		baseURL: "http://localhost:8080",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

//
// --- Collection access ---
//

func (l *Ledger) loadApplications() ([]models.Application, error) {
	apps := []models.Application{}
	if _, err := l.store.Read(store.KeyApplications, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (l *Ledger) loadUsers() ([]models.User, error) {
	users := []models.User{}
	if _, err := l.store.Read(store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (l *Ledger) loadWithdrawals() ([]models.WithdrawalRequest, error) {
	reqs := []models.WithdrawalRequest{}
	if _, err := l.store.Read(store.KeyWithdrawals, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (l *Ledger) loadSettings() (models.Settings, error) {
	s := models.DefaultSettings()
	if _, err := l.store.Read(store.KeySettings, &s); err != nil {
		return models.Settings{}, err
	}
	return s, nil
}

//
// --- Read-only snapshots for the rendering layer ---
//

// Applications returns a snapshot of all applications, optionally
// filtered by status.
func (l *Ledger) Applications(status string) ([]models.Application, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	apps, err := l.loadApplications()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return apps, nil
	}
	filtered := apps[:0:0]
	for _, app := range apps {
		if app.Status == status {
			filtered = append(filtered, app)
		}
	}
	return filtered, nil
}

// ApplicationByID returns a single application.
func (l *Ledger) ApplicationByID(id string) (models.Application, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	apps, err := l.loadApplications()
	if err != nil {
		return models.Application{}, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}
	return models.Application{}, ErrNotFound
}

// Users returns a snapshot of all users.
func (l *Ledger) Users() ([]models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadUsers()
}

// Withdrawals returns the active (pending) withdrawal requests.
func (l *Ledger) Withdrawals() ([]models.WithdrawalRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadWithdrawals()
}

// SessionEmail returns the email recorded at the last submission, used
// to resume a dashboard after a reload. Empty when no session exists.
func (l *Ledger) SessionEmail() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var email string
	if _, err := l.store.Read(store.KeySession, &email); err != nil {
		return "", err
	}
	return email, nil
}

// Stats summarizes the program for the admin dashboard.
type Stats struct {
	PendingApplications  int   `json:"pendingApplications"`
	ApprovedApplications int   `json:"approvedApplications"`
	RejectedApplications int   `json:"rejectedApplications"`
	PendingWithdrawals   int   `json:"pendingWithdrawals"`
	TotalBusinessEarned  int64 `json:"totalBusinessEarnings"`
	TotalReferralPaid    int64 `json:"totalReferralPayouts"`
}

// ProgramStats computes the admin dashboard counters.
func (l *Ledger) ProgramStats() (Stats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	apps, err := l.loadApplications()
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	for _, app := range apps {
		switch app.Status {
		case models.StatusPending:
			stats.PendingApplications++
		case models.StatusApproved:
			stats.ApprovedApplications++
		case models.StatusRejected:
			stats.RejectedApplications++
		}
	}

	reqs, err := l.loadWithdrawals()
	if err != nil {
		return Stats{}, err
	}
	stats.PendingWithdrawals = len(reqs)

	settings, err := l.loadSettings()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalBusinessEarned = settings.TotalBusinessEarned
	stats.TotalReferralPaid = settings.TotalReferralPaid
	return stats, nil
}
