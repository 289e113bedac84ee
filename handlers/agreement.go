package handlers

import (
	"net/http"

	"auditveda/models"
	"auditveda/services/agreement"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreviewAgreementHandler assembles the agreement document for arbitrary
// data, without a wizard session. Partial data renders with blank rules.
func (hb *HandlerBundle) PreviewAgreementHandler(c *gin.Context) {
	var data models.AgreementData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": agreement.Assemble(data)})
}

// GenerateAgreementHandler validates submitted agreement data, renders the
// PDF and delivers it via Drive link or inline base64.
func (hb *HandlerBundle) GenerateAgreementHandler(c *gin.Context) {
	logger := zap.L()

	var data models.AgreementData
	if err := c.ShouldBindJSON(&data); err != nil {
		logger.Error("Invalid JSON payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	result, fieldErrs, err := hb.Generator.Generate(c.Request.Context(), data)
	if err != nil {
		logger.Error("Agreement generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate the agreement PDF"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrs})
		return
	}

	// Exactly one delivery field goes over the wire.
	resp := gin.H{
		"success":  true,
		"uploaded": result.Uploaded,
		"fileName": result.FileName,
	}
	if result.DownloadLink != "" {
		resp["downloadLink"] = result.DownloadLink
	}
	if result.DownloadBase64 != "" {
		resp["downloadBase64"] = result.DownloadBase64
	}
	if result.UploadWarning != "" {
		resp["uploadWarning"] = result.UploadWarning
	}
	c.JSON(http.StatusOK, resp)
}
