package handlers

import (
	"errors"
	"net/http"

	"auditveda/services/verification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SendCodeReq is the payload for requesting an Aadhaar OTP.
type SendCodeReq struct {
	AadhaarNumber string `json:"aadhaarNumber" binding:"required"`
}

// VerifyCodeReq is the payload for confirming an Aadhaar OTP.
type VerifyCodeReq struct {
	OTP         string `json:"otp" binding:"required"`
	ReferenceID string `json:"referenceId" binding:"required"`
}

// SendVerificationCodeHandler starts a stateless OTP verification and hands
// the vendor reference ID back to the caller.
func (hb *HandlerBundle) SendVerificationCodeHandler(c *gin.Context) {
	logger := zap.L()

	var req SendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid JSON payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	refID, err := hb.Verifier.SendCode(c.Request.Context(), req.AadhaarNumber)
	if err != nil {
		respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "referenceId": refID})
}

// VerifyCodeHandler confirms a stateless OTP verification.
func (hb *HandlerBundle) VerifyCodeHandler(c *gin.Context) {
	logger := zap.L()

	var req VerifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid JSON payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	identity, err := hb.Verifier.VerifyCode(c.Request.Context(), req.ReferenceID, req.OTP)
	if err != nil {
		respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"verified":     true,
		"identityData": identity,
	})
}

// respondFlowError maps a categorized verification failure to an HTTP status.
func respondFlowError(c *gin.Context, err error) {
	var fe *verification.FlowError
	if !errors.As(err, &fe) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusBadGateway
	switch fe.Kind {
	case verification.KindFormat, verification.KindInvalidCode:
		status = http.StatusBadRequest
	case verification.KindNotLinked:
		status = http.StatusUnprocessableEntity
	case verification.KindExpired:
		status = http.StatusGone
	}
	c.JSON(status, gin.H{"error": fe.Message, "kind": string(fe.Kind)})
}
