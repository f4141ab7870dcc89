package ledger

import (
	"github.com/itydee48-oss/crowntrade-academy/internal/models"
	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

// Settings returns the program settings, with defaults applied when no
// record has been stored yet.
func (l *Ledger) Settings() (models.Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadSettings()
}

// UpdateSettings applies a partial update. Nil fields keep their
// previous value; negative amounts are rejected so bad input can never
// silently zero out a fee. The running totals are ledger-owned and not
// patchable.
func (l *Ledger) UpdateSettings(patch models.SettingsPatch) (models.Settings, error) {
	fields := []struct {
		name  string
		value *int64
		dest  func(*models.Settings) *int64
	}{
		{"registrationFee", patch.RegistrationFee, func(s *models.Settings) *int64 { return &s.RegistrationFee }},
		{"referralEarnings", patch.ReferralEarnings, func(s *models.Settings) *int64 { return &s.ReferralEarnings }},
		{"businessShare", patch.BusinessShare, func(s *models.Settings) *int64 { return &s.BusinessShare }},
		{"minWithdrawal", patch.MinWithdrawal, func(s *models.Settings) *int64 { return &s.MinWithdrawal }},
		{"startingBalance", patch.StartingBalance, func(s *models.Settings) *int64 { return &s.StartingBalance }},
	}

	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return models.Settings{}, invalid(f.name, "must not be negative")
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	settings, err := l.loadSettings()
	if err != nil {
		return models.Settings{}, err
	}
	for _, f := range fields {
		if f.value != nil {
			*f.dest(&settings) = *f.value
		}
	}
	if err := l.store.Write(store.KeySettings, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
