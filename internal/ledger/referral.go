package ledger

import (
	"strings"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
)

// findReferrer matches a referral identifier against known users, by
// referral code first and stable user ID second. Returns nil when the
// identifier resolves to nobody.
func findReferrer(users []models.User, identifier string) *models.User {
	for i := range users {
		if users[i].ReferralCode != "" && strings.EqualFold(users[i].ReferralCode, identifier) {
			return &users[i]
		}
	}
	for i := range users {
		if users[i].ID == identifier {
			return &users[i]
		}
	}
	return nil
}

// creditReferral attributes an approval to the referrer captured on the
// application. A resolvable referrer earns settings.ReferralEarnings
// and gains a referral record; the business share accrues in either
// case. A missing referrer is a normal outcome (direct signups), never
// an error. Runs under the ledger mutex, once per approved application.
func (l *Ledger) creditReferral(users []models.User, app models.Application, settings *models.Settings, referredName string) {
	settings.TotalBusinessEarned += settings.BusinessShare

	var referrer *models.User
	if app.ReferrerID != "" {
		for i := range users {
			if users[i].ID == app.ReferrerID {
				referrer = &users[i]
				break
			}
		}
	} else if app.RawReferral != "" {
		referrer = findReferrer(users, app.RawReferral)
	}
	if referrer == nil || referrer.ApplicationID == app.ID {
		return
	}

	referrer.Balance += settings.ReferralEarnings
	referrer.TotalEarnings += settings.ReferralEarnings
	referrer.Referrals = append(referrer.Referrals, models.ReferralRecord{
		Name:     referredName,
		JoinedAt: l.now(),
		Amount:   settings.ReferralEarnings,
	})
	settings.TotalReferralPaid += settings.ReferralEarnings
}
