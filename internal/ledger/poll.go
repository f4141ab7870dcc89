package ledger

import (
	"context"
	"time"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
)

// AwaitDecision polls an application's status at a fixed interval until
// an admin decides it, the attempt budget runs out (ErrPollTimeout), or
// ctx is cancelled. It models the applicant's "waiting for approval"
// screen: bounded, never an open-ended retry loop.
func (l *Ledger) AwaitDecision(ctx context.Context, applicationID string, interval time.Duration, maxAttempts int) (string, error) {
	app, err := l.ApplicationByID(applicationID)
	if err != nil {
		return "", err
	}
	if app.Status != models.StatusPending {
		return app.Status, nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		app, err := l.ApplicationByID(applicationID)
		if err != nil {
			return "", err
		}
		if app.Status != models.StatusPending {
			return app.Status, nil
		}
	}
	return "", ErrPollTimeout
}
