package agreement

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"auditveda/models"
	"auditveda/utils"

	"go.uber.org/zap"
)

// UploadResult describes a file stored in Drive.
type UploadResult struct {
	ID   string
	Name string
	Link string
}

// Uploader stores a finished PDF and returns a shareable link.
type Uploader interface {
	Upload(ctx context.Context, fileName string, content []byte) (*UploadResult, error)
}

// GenerateResult is the outcome of a successful agreement generation.
// Uploaded tells the two delivery branches apart: exactly one of
// DownloadLink (uploaded) and DownloadBase64 (inline) is set.
type GenerateResult struct {
	FileName       string `json:"fileName"`
	Uploaded       bool   `json:"uploaded"`
	DownloadLink   string `json:"downloadLink,omitempty"`
	DownloadBase64 string `json:"downloadBase64,omitempty"`
	UploadWarning  string `json:"uploadWarning,omitempty"`
}

// Generator assembles, renders and delivers agreements. A nil uploader means
// Drive credentials are not configured and every result is delivered inline.
type Generator struct {
	uploader   Uploader
	missingEnv []string
}

// NewGenerator builds a Generator. missingEnv lists the credential variables
// that prevented uploader construction; it is empty when uploader is non-nil.
func NewGenerator(uploader Uploader, missingEnv []string) *Generator {
	return &Generator{uploader: uploader, missingEnv: missingEnv}
}

// Generate re-validates the submitted data, renders the agreement PDF and
// either uploads it to Drive or falls back to inline base64 delivery. Field
// errors are returned in the map; the error return is reserved for rendering
// failures.
func (g *Generator) Generate(ctx context.Context, data models.AgreementData) (*GenerateResult, map[string]string, error) {
	logger := utils.GetLogger()

	if errs := ValidateForGeneration(data); len(errs) > 0 {
		return nil, errs, nil
	}

	doc := Assemble(data)
	pdfBytes, err := RenderPDF(doc)
	if err != nil {
		return nil, nil, err
	}

	result := &GenerateResult{FileName: SafeFileName(data.FullName, time.Now())}

	if g.uploader == nil {
		result.DownloadBase64 = inlinePDF(pdfBytes)
		result.UploadWarning = fmt.Sprintf("Drive upload skipped (missing env: %s)", strings.Join(g.missingEnv, ", "))
		logger.Warn("Agreement delivered inline, Drive not configured",
			zap.Strings("missingEnv", g.missingEnv))
		return result, nil, nil
	}

	uploaded, err := g.uploader.Upload(ctx, result.FileName, pdfBytes)
	if err != nil {
		result.DownloadBase64 = inlinePDF(pdfBytes)
		result.UploadWarning = fmt.Sprintf("Drive upload failed: %v", err)
		logger.Warn("Agreement delivered inline after Drive failure",
			zap.String("fileName", result.FileName), zap.Error(err))
		return result, nil, nil
	}

	result.Uploaded = true
	result.DownloadLink = uploaded.Link
	logger.Info("Agreement uploaded to Drive",
		zap.String("fileName", uploaded.Name), zap.String("fileId", uploaded.ID))
	return result, nil, nil
}

func inlinePDF(content []byte) string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(content)
}
