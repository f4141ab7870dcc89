package ledger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmitInput is the applicant-supplied payload for a new application.
type SubmitInput struct {
	FullName   string
	Email      string
	Phone      string
	ProofImage string
	// Referral is the optional referral identifier from the signup link:
	// either a referral code or a referrer's user ID.
	Referral string
}

// Submit creates a pending application paired 1:1 with a pending user
// and records the email as the current session pointer. The referral
// identifier is resolved to a stable user ID here, at capture time, so
// later crediting never depends on code formats.
func (l *Ledger) Submit(input SubmitInput) (string, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)

	if input.FullName == "" {
		return "", invalid("fullName", "must not be blank")
	}
	if input.Email == "" {
		return "", invalid("email", "must not be blank")
	}
	if !emailPattern.MatchString(input.Email) {
		return "", invalid("email", "must be a valid email address")
	}
	if input.Phone == "" {
		return "", invalid("phone", "must not be blank")
	}
	if input.ProofImage == "" {
		return "", invalid("proofImage", "payment proof is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	apps, err := l.loadApplications()
	if err != nil {
		return "", err
	}
	users, err := l.loadUsers()
	if err != nil {
		return "", err
	}

	for _, app := range apps {
		if strings.EqualFold(app.Email, input.Email) {
			return "", ErrDuplicateEmail
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, input.Email) {
			return "", ErrDuplicateEmail
		}
	}

	now := l.now()
	app := models.Application{
		ID:          uuid.New().String(),
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		ProofImage:  input.ProofImage,
		Status:      models.StatusPending,
		SubmittedAt: now,
	}

	// Resolve the referral identifier against known users now. An
	// unresolved identifier is kept verbatim for a late code match.
	if ref := strings.TrimSpace(input.Referral); ref != "" {
		if referrer := findReferrer(users, ref); referrer != nil {
			app.ReferrerID = referrer.ID
		} else {
			app.RawReferral = ref
		}
	}

	user := models.User{
		ID:            uuid.New().String(),
		ApplicationID: app.ID,
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		Status:        models.StatusPending,
		CreatedAt:     now,
		Referrals:     []models.ReferralRecord{},
	}

	if err := l.store.Write(store.KeyApplications, append(apps, app)); err != nil {
		return "", err
	}
	if err := l.store.Write(store.KeyUsers, append(users, user)); err != nil {
		return "", err
	}
	if err := l.store.Write(store.KeySession, input.Email); err != nil {
		return "", err
	}
	return app.ID, nil
}

// Approve moves an application to "approved", credits the starting
// balance, generates the user's referral code, and runs referral
// crediting exactly once. Approving an already-approved application is
// a no-op, so a double click or a second tab cannot double-credit the
// referrer.
func (l *Ledger) Approve(applicationID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	apps, err := l.loadApplications()
	if err != nil {
		return err
	}
	appIdx := -1
	for i := range apps {
		if apps[i].ID == applicationID {
			appIdx = i
			break
		}
	}
	if appIdx == -1 {
		return ErrNotFound
	}

	app := &apps[appIdx]
	switch app.Status {
	case models.StatusApproved:
		return nil
	case models.StatusRejected:
		return ErrAlreadyDecided
	}

	users, err := l.loadUsers()
	if err != nil {
		return err
	}
	userIdx := pairedUserIndex(users, *app)
	if userIdx == -1 {
		return ErrDataIntegrity
	}

	settings, err := l.loadSettings()
	if err != nil {
		return err
	}
	now := l.now()

	app.Status = models.StatusApproved
	app.ReviewedAt = &now

	user := &users[userIdx]
	user.Status = models.StatusApproved
	user.ApprovedAt = &now
	user.Balance += settings.StartingBalance
	l.ensureReferralCode(user)

	l.creditReferral(users, *app, &settings, user.FullName)

	if err := l.store.Write(store.KeyApplications, apps); err != nil {
		return err
	}
	if err := l.store.Write(store.KeyUsers, users); err != nil {
		return err
	}
	return l.store.Write(store.KeySettings, settings)
}

// Reject moves a pending application to "rejected" and mirrors the
// status onto the paired user. No ledger effects. Rejecting an already
// rejected application is a no-op; rejecting an approved one fails.
func (l *Ledger) Reject(applicationID, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	apps, err := l.loadApplications()
	if err != nil {
		return err
	}
	appIdx := -1
	for i := range apps {
		if apps[i].ID == applicationID {
			appIdx = i
			break
		}
	}
	if appIdx == -1 {
		return ErrNotFound
	}

	app := &apps[appIdx]
	switch app.Status {
	case models.StatusRejected:
		return nil
	case models.StatusApproved:
		return ErrAlreadyDecided
	}

	if reason = strings.TrimSpace(reason); reason == "" {
		reason = "Rejected by admin"
	}
	now := l.now()
	app.Status = models.StatusRejected
	app.RejectionReason = &reason
	app.ReviewedAt = &now

	users, err := l.loadUsers()
	if err != nil {
		return err
	}
	if userIdx := pairedUserIndex(users, *app); userIdx != -1 {
		users[userIdx].Status = models.StatusRejected
		users[userIdx].ApprovedAt = nil
	}

	if err := l.store.Write(store.KeyApplications, apps); err != nil {
		return err
	}
	return l.store.Write(store.KeyUsers, users)
}

// UserByEmail returns the user for a dashboard view, generating the
// referral code lazily for approved users that predate code generation.
func (l *Ledger) UserByEmail(email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	l.mu.Lock()
	defer l.mu.Unlock()

	users, err := l.loadUsers()
	if err != nil {
		return models.User{}, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			if users[i].Status == models.StatusApproved && users[i].ReferralCode == "" {
				l.ensureReferralCode(&users[i])
				if err := l.store.Write(store.KeyUsers, users); err != nil {
					return models.User{}, err
				}
			}
			return users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

// pairedUserIndex finds the user paired with app, falling back to an
// email match for records created before applicationId linking.
func pairedUserIndex(users []models.User, app models.Application) int {
	for i := range users {
		if users[i].ApplicationID == app.ID {
			return i
		}
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, app.Email) {
			return i
		}
	}
	return -1
}

// ensureReferralCode generates the user's referral code and link when
// absent.
func (l *Ledger) ensureReferralCode(user *models.User) {
	if user.ReferralCode == "" {
		user.ReferralCode = "CT-" + strings.ToUpper(uuid.New().String()[:8])
	}
	if user.ReferralLink == "" {
		user.ReferralLink = fmt.Sprintf("%s/?ref=%s", l.baseURL, user.ReferralCode)
	}
}
