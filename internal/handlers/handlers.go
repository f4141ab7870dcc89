package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/itydee48-oss/crowntrade-academy/internal/auth"
	"github.com/itydee48-oss/crowntrade-academy/internal/ledger"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Ledger *ledger.Ledger
	Auth   *auth.CredentialStore

	// Await-poll tuning, settable from the environment at boot. Zero
	// values fall back to 2s / 30 attempts.
	PollInterval    time.Duration
	PollMaxAttempts int
}

func (h *Handlers) pollInterval() time.Duration {
	if h.PollInterval > 0 {
		return h.PollInterval
	}
	return 2 * time.Second
}

func (h *Handlers) pollMaxAttempts() int {
	if h.PollMaxAttempts > 0 {
		return h.PollMaxAttempts
	}
	return 30
}

// respondError maps ledger errors onto HTTP statuses. Validation
// problems are the caller's fault (400), policy violations are
// unprocessable (422), and state conflicts are 409.
func respondError(c *gin.Context, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrDuplicateEmail),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrBelowMinimum):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrDataIntegrity):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
