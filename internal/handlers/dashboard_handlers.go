package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard is the handler for GET /v1/dashboard.
// It resolves the member from ?email= or, absent that, from the session
// pointer recorded at submission time, and returns a read-only snapshot
// for rendering.
func (h *Handlers) GetDashboard(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		var err error
		if email, err = h.Ledger.SessionEmail(); err != nil {
			respondError(c, err)
			return
		}
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active session. Submit an application or pass ?email="})
		return
	}

	user, err := h.Ledger.UserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetAdminStats is the handler for GET /v1/admin/stats.
func (h *Handlers) GetAdminStats(c *gin.Context) {
	stats, err := h.Ledger.ProgramStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
