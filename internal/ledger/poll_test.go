package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itydee48-oss/crowntrade-academy/internal/models"
)

func TestAwaitDecisionReturnsImmediatelyWhenDecided(t *testing.T) {
	l := newTestLedger(t)

	id := submitTestApplication(t, l, "Alice", "alice@example.com", "")
	if err := l.Approve(id); err != nil {
		t.Fatalf("approve: %v", err)
	}

	status, err := l.AwaitDecision(context.Background(), id, time.Hour, 1)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if status != models.StatusApproved {
		t.Fatalf("status = %q, want approved", status)
	}
}

func TestAwaitDecisionSeesLateDecision(t *testing.T) {
	l := newTestLedger(t)
	id := submitTestApplication(t, l, "Alice", "alice@example.com", "")

	go func() {
		time.Sleep(20 * time.Millisecond)
		l.Reject(id, "no")
	}()

	status, err := l.AwaitDecision(context.Background(), id, 5*time.Millisecond, 100)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if status != models.StatusRejected {
		t.Fatalf("status = %q, want rejected", status)
	}
}

func TestAwaitDecisionTimesOut(t *testing.T) {
	l := newTestLedger(t)
	id := submitTestApplication(t, l, "Alice", "alice@example.com", "")

	_, err := l.AwaitDecision(context.Background(), id, time.Millisecond, 3)
	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("err = %v, want ErrPollTimeout", err)
	}
}

func TestAwaitDecisionHonorsCancellation(t *testing.T) {
	l := newTestLedger(t)
	id := submitTestApplication(t, l, "Alice", "alice@example.com", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.AwaitDecision(ctx, id, time.Hour, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAwaitDecisionUnknownApplication(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.AwaitDecision(context.Background(), "missing", time.Millisecond, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
