package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the program member paired 1:1 with an Application via
// ApplicationID. Balances are whole currency units (signed integers).
type User struct {
	ID            string `json:"id"`
	ApplicationID string `json:"applicationId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	Status     string     `json:"status"` // mirrors the application status
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`

	Balance         int64 `json:"balance"`
	TotalEarnings   int64 `json:"totalEarnings"`
	PendingEarnings int64 `json:"pendingEarnings"` // reserved for tiered payouts

	// ReferralCode/ReferralLink are generated lazily, on approval or on
	// first dashboard view.
	ReferralCode string `json:"referralCode,omitempty"`
	ReferralLink string `json:"referralLink,omitempty"`

	Referrals []ReferralRecord `json:"referrals"`
}

// ReferralRecord is an append-only entry on the referrer's user record.
type ReferralRecord struct {
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
	Amount   int64     `json:"amount"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
