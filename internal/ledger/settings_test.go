package ledger

import (
	"errors"
	"testing"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
)

func TestSettingsDefaults(t *testing.T) {
	l := newTestLedger(t)

	got := currentSettings(t, l)
	want := models.DefaultSettings()
	if got != want {
		t.Fatalf("settings = %+v, want defaults %+v", got, want)
	}
}

func TestUpdateSettingsPartialPatch(t *testing.T) {
	l := newTestLedger(t)

	min := int64(950)
	updated, err := l.UpdateSettings(models.SettingsPatch{MinWithdrawal: &min})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MinWithdrawal != 950 {
		t.Fatalf("minWithdrawal = %d, want 950", updated.MinWithdrawal)
	}

	// Every other field keeps its previous value.
	defaults := models.DefaultSettings()
	if updated.RegistrationFee != defaults.RegistrationFee ||
		updated.ReferralEarnings != defaults.ReferralEarnings ||
		updated.BusinessShare != defaults.BusinessShare ||
		updated.StartingBalance != defaults.StartingBalance {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestUpdateSettingsRejectsNegative(t *testing.T) {
	l := newTestLedger(t)

	bad := int64(-1)
	_, err := l.UpdateSettings(models.SettingsPatch{ReferralEarnings: &bad})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	// The previous value survives a rejected update.
	if got := currentSettings(t, l).ReferralEarnings; got != models.DefaultSettings().ReferralEarnings {
		t.Fatalf("referralEarnings = %d after rejected update", got)
	}
}

func TestUpdateSettingsDrivesLedgerBehavior(t *testing.T) {
	l := newTestLedger(t)

	earnings := int64(700)
	starting := int64(50)
	if _, err := l.UpdateSettings(models.SettingsPatch{
		ReferralEarnings: &earnings,
		StartingBalance:  &starting,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	referrer := approvedMember(t, l, "Ref", "ref@example.com")
	if referrer.Balance != 50 {
		t.Fatalf("starting balance = %d, want 50", referrer.Balance)
	}

	id := submitTestApplication(t, l, "Alice", "alice@example.com", referrer.ReferralCode)
	if err := l.Approve(id); err != nil {
		t.Fatalf("approve: %v", err)
	}

	ref, _ := l.UserByEmail("ref@example.com")
	if want := int64(50 + 700); ref.Balance != want {
		t.Fatalf("referrer balance = %d, want %d", ref.Balance, want)
	}
}
