package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itydee48-oss/crowntrade-academy/internal/auth"
	"github.com/itydee48-oss/crowntrade-academy/internal/models"
)

// AdminLoginInput defines the JSON for the admin login.
type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin is the handler for POST /v1/admin/login.
// The handler trusts the Authenticator's verdict and never sees the
// stored hash.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Auth.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication check failed"})
		return
	}
	if !result.OK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateToken(result.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetSettings is the handler for GET /v1/admin/settings.
func (h *Handlers) GetSettings(c *gin.Context) {
	settings, err := h.Ledger.Settings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings is the handler for PATCH /v1/admin/settings.
// Fields left out of the body keep their previous value; non-numeric
// input fails JSON binding, so a bad edit can never zero out a fee.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Ledger.UpdateSettings(patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// ChangeCredentialsInput defines the JSON for the admin credential change.
type ChangeCredentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ChangeAdminCredentials is the handler for POST /v1/admin/credentials.
func (h *Handlers) ChangeAdminCredentials(c *gin.Context) {
	var input ChangeCredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Auth.Change(input.Username, input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin credentials updated"})
}
