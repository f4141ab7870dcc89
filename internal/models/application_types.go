package models

import "time"

// Application statuses. An application starts as "pending" and is moved
// to exactly one of the terminal states by an admin decision.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is a user's request to join the referral program.
// Applications are historical records: they are never deleted, only
// moved to a terminal status.
type Application struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	// ProofImage is the payment-proof payload (a data blob or an upload
	// URL). The core stores it opaquely and never interprets it.
	ProofImage string `json:"proofImage"`

	// ReferrerID is the stable user ID of the referrer when the submitted
	// referral identifier resolved at submission time. RawReferral keeps
	// whatever identifier the applicant typed, resolved or not.
	ReferrerID  string `json:"referrerId,omitempty"`
	RawReferral string `json:"rawReferral,omitempty"`

	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
}
