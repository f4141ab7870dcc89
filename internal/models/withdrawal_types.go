package models

import "time"

// WithdrawalRequest is a pending cash-out. The amount is deducted from
// the owner's balance the moment the request is created, so processing a
// request performs no further balance change and rejecting one refunds
// the full amount. Only pending requests are retained; a decided request
// is removed from the active collection.
type WithdrawalRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	Amount      int64     `json:"amount"`
	PayoutPhone string    `json:"payoutPhone"`
	RequestedAt time.Time `json:"requestedAt"`
}
