package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

// RequestWithdrawal reserves funds for a cash-out. The amount is
// deducted from the balance immediately; processing later performs no
// further balance change and rejection refunds it. userIdentifier is a
// user ID or an email.
func (l *Ledger) RequestWithdrawal(userIdentifier string, amount int64, payoutPhone string) (string, error) {
	payoutPhone = strings.TrimSpace(payoutPhone)
	if amount <= 0 {
		return "", invalid("amount", "must be greater than zero")
	}
	if payoutPhone == "" {
		return "", invalid("payoutPhone", "must not be blank")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	settings, err := l.loadSettings()
	if err != nil {
		return "", err
	}
	if amount < settings.MinWithdrawal {
		return "", ErrBelowMinimum
	}

	users, err := l.loadUsers()
	if err != nil {
		return "", err
	}
	userIdx := -1
	for i := range users {
		if users[i].ID == userIdentifier || strings.EqualFold(users[i].Email, userIdentifier) {
			userIdx = i
			break
		}
	}
	if userIdx == -1 {
		return "", ErrNotFound
	}

	user := &users[userIdx]
	if amount > user.Balance {
		return "", ErrInsufficientFunds
	}
	user.Balance -= amount

	req := models.WithdrawalRequest{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		UserName:    user.FullName,
		UserEmail:   user.Email,
		Amount:      amount,
		PayoutPhone: payoutPhone,
		RequestedAt: l.now(),
	}

	reqs, err := l.loadWithdrawals()
	if err != nil {
		return "", err
	}
	if err := l.store.Write(store.KeyUsers, users); err != nil {
		return "", err
	}
	if err := l.store.Write(store.KeyWithdrawals, append(reqs, req)); err != nil {
		return "", err
	}
	return req.ID, nil
}

// ProcessWithdrawal marks a request as paid out externally and removes
// it from the active collection. The funds were already deducted at
// request time. A second call for the same ID fails with ErrNotFound.
func (l *Ledger) ProcessWithdrawal(withdrawalID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	reqs, err := l.loadWithdrawals()
	if err != nil {
		return err
	}
	remaining, _, found := removeWithdrawal(reqs, withdrawalID)
	if !found {
		return ErrNotFound
	}
	return l.store.Write(store.KeyWithdrawals, remaining)
}

// RejectWithdrawal refunds the reserved amount to the owner and removes
// the request.
func (l *Ledger) RejectWithdrawal(withdrawalID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	reqs, err := l.loadWithdrawals()
	if err != nil {
		return err
	}
	remaining, req, found := removeWithdrawal(reqs, withdrawalID)
	if !found {
		return ErrNotFound
	}

	users, err := l.loadUsers()
	if err != nil {
		return err
	}
	userIdx := -1
	for i := range users {
		if users[i].ID == req.UserID {
			userIdx = i
			break
		}
	}
	if userIdx == -1 {
		return ErrDataIntegrity
	}
	users[userIdx].Balance += req.Amount

	if err := l.store.Write(store.KeyUsers, users); err != nil {
		return err
	}
	return l.store.Write(store.KeyWithdrawals, remaining)
}

func removeWithdrawal(reqs []models.WithdrawalRequest, id string) ([]models.WithdrawalRequest, models.WithdrawalRequest, bool) {
	for i := range reqs {
		if reqs[i].ID == id {
			removed := reqs[i]
			return append(reqs[:i], reqs[i+1:]...), removed, true
		}
	}
	return reqs, models.WithdrawalRequest{}, false
}
