package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itydee48-oss/crowntrade-academy/internal/ledger"
)

// SubmitApplicationInput defines the JSON for a new application.
type SubmitApplicationInput struct {
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	ProofImage   string `json:"proofImage" binding:"required"`
	ReferralCode string `json:"referralCode"`
}

// SubmitApplication is the handler for POST /v1/applications.
func (h *Handlers) SubmitApplication(c *gin.Context) {
	var input SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Ledger.Submit(ledger.SubmitInput{
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      input.Phone,
		ProofImage: input.ProofImage,
		Referral:   input.ReferralCode,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Application submitted successfully, pending approval.",
		"applicationId": id,
	})
}

// GetApplicationStatus is the handler for GET /v1/applications/:id/status.
func (h *Handlers) GetApplicationStatus(c *gin.Context) {
	app, err := h.Ledger.ApplicationByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          app.Status,
		"reviewedAt":      app.ReviewedAt,
		"rejectionReason": app.RejectionReason,
	})
}

// AwaitApplicationDecision is the handler for GET /v1/applications/:id/await.
// It holds the request open for a bounded poll and reports a timeout
// when the budget runs out, so the waiting screen never hangs forever.
func (h *Handlers) AwaitApplicationDecision(c *gin.Context) {
	status, err := h.Ledger.AwaitDecision(c.Request.Context(), c.Param("id"), h.pollInterval(), h.pollMaxAttempts())
	if err != nil {
		if errors.Is(err, ledger.ErrPollTimeout) {
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "Still pending. Please check back later."})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

//
// --- Admin: Application Review Handlers ---
//

// GetApplications is the handler for GET /v1/admin/applications.
// An optional ?status= filter narrows the list.
func (h *Handlers) GetApplications(c *gin.Context) {
	apps, err := h.Ledger.Applications(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ApproveApplication is the handler for PATCH /v1/admin/applications/:id/approve.
func (h *Handlers) ApproveApplication(c *gin.Context) {
	if err := h.Ledger.Approve(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Application approved. Starting balance credited and referrer paid out.",
	})
}

// RejectApplicationInput defines the JSON input for rejecting an application.
type RejectApplicationInput struct {
	Reason string `json:"reason"`
}

// RejectApplication is the handler for PATCH /v1/admin/applications/:id/reject.
func (h *Handlers) RejectApplication(c *gin.Context) {
	var input RejectApplicationInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.Ledger.Reject(c.Param("id"), input.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application rejected"})
}
