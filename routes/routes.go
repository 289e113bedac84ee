package routes

import (
	"net/http"
	"time"

	"auditveda/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers the session-based agreement wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/sessions", hb.StartWizardHandler)
		api.GET("/sessions/:id", hb.GetWizardHandler)
		api.PUT("/sessions/:id/terms", hb.AcceptTermsHandler)
		api.PUT("/sessions/:id/details", hb.UpdateDetailsHandler)
		api.POST("/sessions/:id/verification/send", hb.SendSessionCodeHandler)
		api.POST("/sessions/:id/verification/verify", hb.ConfirmSessionCodeHandler)
		api.PUT("/sessions/:id/signature", hb.AttachSignatureHandler)
		api.DELETE("/sessions/:id/signature", hb.ClearSignatureHandler)
		api.GET("/sessions/:id/preview", hb.PreviewWizardHandler)
		api.POST("/sessions/:id/advance", hb.AdvanceWizardHandler)
		api.POST("/sessions/:id/back", hb.BackWizardHandler)
		api.POST("/sessions/:id/submit", hb.SubmitWizardHandler)
		api.POST("/sessions/:id/reset", hb.ResetWizardHandler)
	}
}

// RegisterVerificationRoutes registers the stateless Aadhaar OTP endpoints.
func RegisterVerificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/verification")
	{
		api.POST("/send-code", hb.SendVerificationCodeHandler)
		api.POST("/verify-code", hb.VerifyCodeHandler)
	}
}

// RegisterAgreementRoutes registers document assembly and PDF generation.
func RegisterAgreementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agreements")
	{
		api.POST("/preview", hb.PreviewAgreementHandler)
		api.POST("/generate", hb.GenerateAgreementHandler)
	}
}

// RegisterOAuthRoutes registers the one-time Drive consent flow.
func RegisterOAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/oauth")
	{
		api.GET("/google", hb.GoogleOAuthStartHandler)
		api.GET("/google/callback", hb.GoogleOAuthCallbackHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm AuditVeda"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWizardRoutes(r, hb)
	RegisterVerificationRoutes(r, hb)
	RegisterAgreementRoutes(r, hb)
	RegisterOAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
