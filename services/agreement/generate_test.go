package agreement

import (
	"context"
	"errors"
	"strings"
	"testing"

	"auditveda/services/signature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	lastName string
	fail     bool
}

func (f *fakeUploader) Upload(_ context.Context, fileName string, content []byte) (*UploadResult, error) {
	if f.fail {
		return nil, errors.New("quota exceeded")
	}
	if len(content) == 0 {
		return nil, errors.New("empty upload")
	}
	f.lastName = fileName
	return &UploadResult{ID: "file-1", Name: fileName, Link: "https://drive.google.com/file/d/file-1/view"}, nil
}

func TestGenerateRejectsInvalidData(t *testing.T) {
	gen := NewGenerator(nil, nil)

	data := filledData()
	data.AadhaarVerified = false
	result, fieldErrs, err := gen.Generate(context.Background(), data)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, fieldErrs, "aadhaarVerified")
}

func TestGenerateInlineWhenDriveNotConfigured(t *testing.T) {
	gen := NewGenerator(nil, []string{"GOOGLE_OAUTH_CLIENT_ID"})

	result, fieldErrs, err := gen.Generate(context.Background(), filledData())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, result)

	assert.False(t, result.Uploaded)
	assert.Empty(t, result.DownloadLink)
	assert.True(t, strings.HasPrefix(result.DownloadBase64, "data:application/pdf;base64,"))
	assert.Contains(t, result.UploadWarning, "missing env")
	assert.Contains(t, result.UploadWarning, "GOOGLE_OAUTH_CLIENT_ID")
}

func TestGenerateUploadsWhenConfigured(t *testing.T) {
	up := &fakeUploader{}
	gen := NewGenerator(up, nil)

	result, fieldErrs, err := gen.Generate(context.Background(), filledData())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, result)

	assert.True(t, result.Uploaded)
	assert.Equal(t, "https://drive.google.com/file/d/file-1/view", result.DownloadLink)
	assert.Empty(t, result.DownloadBase64)
	assert.Empty(t, result.UploadWarning)
	assert.True(t, strings.HasPrefix(up.lastName, "Affiliate_Partner_Agreement_Asha_Kumar_"))
	assert.True(t, strings.HasSuffix(up.lastName, ".pdf"))
}

func TestGenerateFallsBackWhenUploadFails(t *testing.T) {
	gen := NewGenerator(&fakeUploader{fail: true}, nil)

	result, fieldErrs, err := gen.Generate(context.Background(), filledData())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, result)

	assert.False(t, result.Uploaded)
	assert.Empty(t, result.DownloadLink)
	assert.True(t, strings.HasPrefix(result.DownloadBase64, "data:application/pdf;base64,"))
	assert.Contains(t, result.UploadWarning, "quota exceeded")
}

func TestRenderPDFProducesDocument(t *testing.T) {
	doc := Assemble(filledData())
	pdfBytes, err := RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
}

func TestRenderPDFUnverifiedDocument(t *testing.T) {
	data := filledData()
	data.AadhaarVerified = false
	data.SignatureDataURL = ""
	doc := Assemble(data)

	// The execution columns render blank signature lines for both parties.
	pdfBytes, err := RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
}

func TestRenderPDFEmbedsDrawnSignature(t *testing.T) {
	pad := signature.NewPad(400, 160)
	pad.PointerDown(signature.Point{X: 20, Y: 80})
	pad.PointerMove(signature.Point{X: 180, Y: 60})
	pad.PointerMove(signature.Point{X: 360, Y: 100})
	drawn := pad.PointerUp()
	require.NotEmpty(t, drawn)

	data := filledData()
	data.SignatureDataURL = drawn
	doc := Assemble(data)

	png, err := DecodeSignaturePNG(doc.SignatureDataURL)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	pdfBytes, err := RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
}
