package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestWithdrawalInput defines the JSON for a withdrawal request.
type RequestWithdrawalInput struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	PayoutPhone string `json:"payoutPhone" binding:"required"`
}

// RequestWithdrawal is the handler for POST /v1/withdrawals.
// The funds are reserved immediately: the amount leaves the member's
// balance now and comes back only if an admin rejects the request.
func (h *Handlers) RequestWithdrawal(c *gin.Context) {
	var input RequestWithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := input.Email
	if email == "" {
		var err error
		if email, err = h.Ledger.SessionEmail(); err != nil {
			respondError(c, err)
			return
		}
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active session. Provide an email."})
		return
	}

	id, err := h.Ledger.RequestWithdrawal(email, input.Amount, input.PayoutPhone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Withdrawal request submitted. The amount has been deducted from your balance and is pending review.",
		"withdrawalId": id,
	})
}

//
// --- Admin: Withdrawal Handlers ---
//

// GetWithdrawalRequests is the handler for GET /v1/admin/withdrawals.
// Only active (pending) requests exist; decided ones are removed.
func (h *Handlers) GetWithdrawalRequests(c *gin.Context) {
	reqs, err := h.Ledger.Withdrawals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// ProcessWithdrawalInput defines the JSON for approving/rejecting a request.
type ProcessWithdrawalInput struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// ProcessWithdrawalRequest is the handler for PATCH /v1/admin/withdrawals/:id.
func (h *Handlers) ProcessWithdrawalRequest(c *gin.Context) {
	requestID := c.Param("id")

	var input ProcessWithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	if input.Action == "approve" {
		// Funds were already deducted at request time; approving only
		// records the external payout by retiring the request.
		err = h.Ledger.ProcessWithdrawal(requestID)
	} else {
		err = h.Ledger.RejectWithdrawal(requestID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Withdrawal request successfully %sed", input.Action),
	})
}
