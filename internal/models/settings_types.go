package models

// Settings is the singleton program configuration plus the running
// payout totals. All amounts are whole currency units.
type Settings struct {
	RegistrationFee     int64 `json:"registrationFee"`
	ReferralEarnings    int64 `json:"referralEarnings"`
	BusinessShare       int64 `json:"businessShare"`
	MinWithdrawal       int64 `json:"minWithdrawal"`
	StartingBalance     int64 `json:"startingBalance"`
	TotalBusinessEarned int64 `json:"totalBusinessEarnings"`
	TotalReferralPaid   int64 `json:"totalReferralPayouts"`
}

// DefaultSettings are applied on first run and whenever the stored
// settings record is missing or unreadable.
func DefaultSettings() Settings {
	return Settings{
		RegistrationFee:  500,
		ReferralEarnings: 300,
		BusinessShare:    200,
		MinWithdrawal:    100,
		StartingBalance:  500,
	}
}

// SettingsPatch is a partial settings update. Nil fields keep their
// previous value; numeric fields are never coerced from bad input.
type SettingsPatch struct {
	RegistrationFee  *int64 `json:"registrationFee"`
	ReferralEarnings *int64 `json:"referralEarnings"`
	BusinessShare    *int64 `json:"businessShare"`
	MinWithdrawal    *int64 `json:"minWithdrawal"`
	StartingBalance  *int64 `json:"startingBalance"`
}

// AdminCredential is the singleton admin login. Only the bcrypt hash is
// stored; comparison lives in the auth package, never in the ledger.
type AdminCredential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
