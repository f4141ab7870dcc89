package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/itydee48-oss/crowntrade-academy/internal/handlers"
	"github.com/itydee48-oss/crowntrade-academy/internal/middleware"
)

// CORSMiddleware allows the static frontend to talk to this API.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigin := os.Getenv("FRONTEND_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	// Uploaded proof screenshots are served back to the admin dashboard.
	router.Static("/uploads", "./uploads")

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Applicant Routes (Public) ---
		v1.POST("/applications", h.SubmitApplication)
		v1.GET("/applications/:id/status", h.GetApplicationStatus)
		v1.GET("/applications/:id/await", h.AwaitApplicationDecision)
		v1.POST("/proofs", h.UploadProof)

		// --- Member Routes (session-pointer identity) ---
		v1.GET("/dashboard", h.GetDashboard)
		v1.POST("/withdrawals", h.RequestWithdrawal)

		// --- Admin Login (Public) ---
		v1.POST("/admin/login", h.AdminLogin)

		// --- Admin-Only Routes ---
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/applications", h.GetApplications)
			admin.PATCH("/applications/:id/approve", h.ApproveApplication)
			admin.PATCH("/applications/:id/reject", h.RejectApplication)

			admin.GET("/withdrawals", h.GetWithdrawalRequests)
			admin.PATCH("/withdrawals/:id", h.ProcessWithdrawalRequest)

			admin.GET("/settings", h.GetSettings)
			admin.PATCH("/settings", h.UpdateSettings)

			admin.POST("/credentials", h.ChangeAdminCredentials)
			admin.GET("/stats", h.GetAdminStats)
		}
	}

	return router
}
