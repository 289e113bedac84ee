package handlers

import (
	"errors"
	"net/http"

	"auditveda/models"
	"auditveda/services/verification"
	"auditveda/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AcceptTermsReq records whether the partner agreed to the terms.
type AcceptTermsReq struct {
	Agreed *bool `json:"agreed" binding:"required"`
}

// ConfirmCodeReq carries the OTP for a session-bound verification.
type ConfirmCodeReq struct {
	OTP string `json:"otp" binding:"required"`
}

// SignatureReq carries the typed name and drawn signature data URI.
type SignatureReq struct {
	SignatureName    string `json:"signatureName"`
	SignatureDataURL string `json:"signatureDataUrl" binding:"required"`
}

// StartWizardHandler creates a new wizard session.
func (hb *HandlerBundle) StartWizardHandler(c *gin.Context) {
	session, err := hb.WizardService.Start(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to start wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start a session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetWizardHandler returns the current session state.
func (hb *HandlerBundle) GetWizardHandler(c *gin.Context) {
	session, err := hb.WizardService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AcceptTermsHandler records the terms decision for a session.
func (hb *HandlerBundle) AcceptTermsHandler(c *gin.Context) {
	var req AcceptTermsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	session, err := hb.WizardService.AcceptTerms(c.Request.Context(), c.Param("id"), *req.Agreed)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateDetailsHandler merges partner detail fields into the session. Field
// validation errors are advisory; the draft is saved either way.
func (hb *HandlerBundle) UpdateDetailsHandler(c *gin.Context) {
	var req models.AgreementData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	session, fieldErrs, err := hb.WizardService.UpdateDetails(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "errors": fieldErrs})
}

// SendSessionCodeHandler starts OTP verification for the session's Aadhaar.
func (hb *HandlerBundle) SendSessionCodeHandler(c *gin.Context) {
	session, err := hb.WizardService.SendVerificationCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmSessionCodeHandler completes OTP verification for the session.
func (hb *HandlerBundle) ConfirmSessionCodeHandler(c *gin.Context) {
	var req ConfirmCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	session, err := hb.WizardService.ConfirmVerificationCode(c.Request.Context(), c.Param("id"), req.OTP)
	if err != nil {
		respondWizardErrorWithSession(c, err, session)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AttachSignatureHandler stores the drawn signature on the session.
func (hb *HandlerBundle) AttachSignatureHandler(c *gin.Context) {
	var req SignatureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	session, err := hb.WizardService.AttachSignature(c.Request.Context(), c.Param("id"), req.SignatureName, req.SignatureDataURL)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ClearSignatureHandler removes the drawn signature from the session.
func (hb *HandlerBundle) ClearSignatureHandler(c *gin.Context) {
	session, err := hb.WizardService.ClearSignature(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PreviewWizardHandler assembles the agreement from the session's data.
func (hb *HandlerBundle) PreviewWizardHandler(c *gin.Context) {
	session, doc, err := hb.WizardService.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "document": doc})
}

// AdvanceWizardHandler moves the session forward one step.
func (hb *HandlerBundle) AdvanceWizardHandler(c *gin.Context) {
	session, err := hb.WizardService.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardErrorWithSession(c, err, session)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// BackWizardHandler moves the session back one step.
func (hb *HandlerBundle) BackWizardHandler(c *gin.Context) {
	session, err := hb.WizardService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitWizardHandler generates and delivers the agreement PDF.
func (hb *HandlerBundle) SubmitWizardHandler(c *gin.Context) {
	session, result, fieldErrs, err := hb.WizardService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": session, "result": result})
}

// ResetWizardHandler wipes the session back to the reading step.
func (hb *HandlerBundle) ResetWizardHandler(c *gin.Context) {
	session, err := hb.WizardService.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func respondWizardError(c *gin.Context, err error) {
	respondWizardErrorWithSession(c, err, nil)
}

// respondWizardErrorWithSession maps service errors to HTTP statuses. The
// session, when available, rides along so clients can resync their state.
func respondWizardErrorWithSession(c *gin.Context, err error, session *wizard.Session) {
	var fe *verification.FlowError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
	case errors.As(err, &fe):
		status := http.StatusBadGateway
		switch fe.Kind {
		case verification.KindFormat, verification.KindInvalidCode:
			status = http.StatusBadRequest
		case verification.KindNotLinked:
			status = http.StatusUnprocessableEntity
		case verification.KindExpired:
			status = http.StatusGone
		}
		body := gin.H{"error": fe.Message, "kind": string(fe.Kind)}
		if session != nil {
			body["session"] = session
		}
		c.JSON(status, body)
	case errors.Is(err, wizard.ErrTermsNotAccepted),
		errors.Is(err, wizard.ErrDetailsInvalid),
		errors.Is(err, wizard.ErrNotVerified),
		errors.Is(err, wizard.ErrSignatureMissing),
		errors.Is(err, wizard.ErrNotReadyToSubmit),
		errors.Is(err, wizard.ErrSessionCompleted):
		body := gin.H{"error": err.Error()}
		if session != nil {
			body["session"] = session
		}
		c.JSON(http.StatusConflict, body)
	default:
		zap.L().Error("Wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
