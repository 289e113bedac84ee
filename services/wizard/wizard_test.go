package wizard

import (
	"context"
	"testing"

	"auditveda/models"
	"auditveda/services/agreement"
	"auditveda/services/verification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signatureDataURL = "data:image/png;base64," +
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// fakeVerifier issues a fixed reference ID and accepts a single OTP.
type fakeVerifier struct {
	refID     string
	goodOTP   string
	sendErr   error
	verifyErr error
	sends     int
}

func (f *fakeVerifier) SendCode(_ context.Context, aadhaarNumber string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sends++
	return f.refID, nil
}

func (f *fakeVerifier) VerifyCode(_ context.Context, refID, otp string) (*models.IdentityData, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	if refID != f.refID || otp != f.goodOTP {
		return nil, verification.NewFlowError(verification.KindInvalidCode, "The OTP you entered is incorrect. Please try again.", "")
	}
	return &models.IdentityData{Name: "Asha Kumar", ZipCode: "411001"}, nil
}

// fakeGenerator returns a canned result without touching the PDF pipeline.
type fakeGenerator struct {
	result    *agreement.GenerateResult
	fieldErrs map[string]string
	lastData  models.AgreementData
}

func (f *fakeGenerator) Generate(_ context.Context, data models.AgreementData) (*agreement.GenerateResult, map[string]string, error) {
	f.lastData = data
	if len(f.fieldErrs) > 0 {
		return nil, f.fieldErrs, nil
	}
	return f.result, nil, nil
}

func newTestService(verifier verification.Verifier, gen Generator) (*DefaultWizardService, verification.ReferenceStore) {
	refs := verification.NewMemoryReferenceStore()
	return NewWizardService(NewMemorySessionStore(), refs, verifier, gen), refs
}

func fillDetails(t *testing.T, svc *DefaultWizardService, id string) *Session {
	t.Helper()
	session, fieldErrs, err := svc.UpdateDetails(context.Background(), id, models.AgreementData{
		FullName:      "Asha Kumar",
		PANNumber:     "abcde1234f",
		Address:       "12 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Jurisdiction:  "Mumbai, Maharashtra",
		Place:         "Pune",
		AadhaarNumber: "123456789012",
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	return session
}

func verifySession(t *testing.T, svc *DefaultWizardService, id string) *Session {
	t.Helper()
	_, err := svc.SendVerificationCode(context.Background(), id)
	require.NoError(t, err)
	session, err := svc.ConfirmVerificationCode(context.Background(), id, "123456")
	require.NoError(t, err)
	return session
}

func TestWizardHappyPath(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{result: &agreement.GenerateResult{
		FileName:     "Affiliate_Partner_Agreement_Asha_Kumar_1.pdf",
		Uploaded:     true,
		DownloadLink: "https://drive.google.com/file/d/x/view",
	}}
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, gen)

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepRead, session.Step)
	assert.Equal(t, PhaseUnverified, session.Phase)
	assert.NotEmpty(t, session.Data.Date)

	session, err = svc.AcceptTerms(ctx, session.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StepDetails, session.Step)

	session = fillDetails(t, svc, session.ID)
	assert.Equal(t, "ABCDE1234F", session.Data.PANNumber, "PAN normalized to uppercase")

	session = verifySession(t, svc, session.ID)
	assert.Equal(t, PhaseVerified, session.Phase)
	assert.True(t, session.Data.AadhaarVerified)
	assert.NotEmpty(t, session.Data.AadhaarVerifiedAt)
	require.NotNil(t, session.Data.Identity)
	assert.Equal(t, "Asha Kumar", session.Data.Identity.Name)

	session, err = svc.AttachSignature(ctx, session.ID, "Asha R Kumar", signatureDataURL)
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepPreview, session.Step)

	session, result, fieldErrs, err := svc.Submit(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, StepDone, session.Step)
	assert.True(t, result.Uploaded)
	assert.Equal(t, "https://drive.google.com/file/d/x/view", result.DownloadLink)
	assert.Equal(t, result.DownloadLink, session.Data.DownloadLink)
	assert.Empty(t, session.Data.DownloadBase64)
	assert.True(t, gen.lastData.AadhaarVerified)
}

func TestAdvanceGuards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, ErrTermsNotAccepted)

	session, err = svc.AcceptTerms(ctx, session.ID, true)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, ErrDetailsInvalid)

	fillDetails(t, svc, session.ID)
	_, err = svc.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotVerified)

	verifySession(t, svc, session.ID)
	_, err = svc.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSignatureMissing)

	_, err = svc.AttachSignature(ctx, session.ID, "Asha", signatureDataURL)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepPreview, session.Step)
}

func TestSignatureRequiresVerification(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)

	_, err := svc.AttachSignature(ctx, session.ID, "Asha", signatureDataURL)
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestAadhaarChangeResetsVerification(t *testing.T) {
	ctx := context.Background()
	svc, refs := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	verifySession(t, svc, session.ID)
	_, err := svc.AttachSignature(ctx, session.ID, "Asha", signatureDataURL)
	require.NoError(t, err)

	session, fieldErrs, err := svc.UpdateDetails(ctx, session.ID, models.AgreementData{
		FullName:      "Asha Kumar",
		PANNumber:     "ABCDE1234F",
		Address:       "12 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Jurisdiction:  "Mumbai, Maharashtra",
		Place:         "Pune",
		AadhaarNumber: "999988887777",
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	assert.Equal(t, PhaseUnverified, session.Phase)
	assert.False(t, session.Data.AadhaarVerified)
	assert.Empty(t, session.Data.AadhaarVerifiedAt)
	assert.Nil(t, session.Data.Identity)
	assert.Empty(t, session.Data.SignatureDataURL, "signature discarded with stale verification")

	ref, err := refs.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestSameAadhaarKeepsVerification(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	verifySession(t, svc, session.ID)

	session = fillDetails(t, svc, session.ID)
	assert.Equal(t, PhaseVerified, session.Phase)
	assert.True(t, session.Data.AadhaarVerified)
}

func TestInvalidOTPKeepsCodeSent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	_, err := svc.SendVerificationCode(ctx, session.ID)
	require.NoError(t, err)

	session, err = svc.ConfirmVerificationCode(ctx, session.ID, "000000")
	fe := verification.AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, verification.KindInvalidCode, fe.Kind)
	assert.Equal(t, PhaseCodeSent, session.Phase)

	// A correct retry still succeeds.
	session, err = svc.ConfirmVerificationCode(ctx, session.ID, "123456")
	require.NoError(t, err)
	assert.Equal(t, PhaseVerified, session.Phase)
}

func TestExpiredOTPResetsPhase(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{refID: "ref-1", goodOTP: "123456"}
	svc, refs := newTestService(verifier, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	_, err := svc.SendVerificationCode(ctx, session.ID)
	require.NoError(t, err)

	verifier.verifyErr = verification.NewFlowError(verification.KindExpired, "The OTP has expired. Please request a new one.", "")
	session, err = svc.ConfirmVerificationCode(ctx, session.ID, "123456")
	fe := verification.AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, verification.KindExpired, fe.Kind)
	assert.Equal(t, PhaseUnverified, session.Phase)

	ref, err := refs.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestConfirmWithoutPendingReference(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	session, err := svc.ConfirmVerificationCode(ctx, session.ID, "123456")
	fe := verification.AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, verification.KindExpired, fe.Kind)
	assert.Equal(t, PhaseUnverified, session.Phase)
}

func TestConfirmIsNoOpWhenAlreadyVerified(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	verifySession(t, svc, session.ID)

	// A repeated confirm arrives after the reference was consumed; the
	// session must stay verified rather than fall back to unverified.
	session, err := svc.ConfirmVerificationCode(ctx, session.ID, "123456")
	require.NoError(t, err)
	assert.Equal(t, PhaseVerified, session.Phase)
	assert.True(t, session.Data.AadhaarVerified)

	session, err = svc.AttachSignature(ctx, session.ID, "Asha", signatureDataURL)
	require.NoError(t, err)
	assert.Equal(t, signatureDataURL, session.Data.SignatureDataURL)
}

func TestSendCodeIsNoOpWhenVerified(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{refID: "ref-1", goodOTP: "123456"}
	svc, _ := newTestService(verifier, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	verifySession(t, svc, session.ID)
	sendsBefore := verifier.sends

	session, err := svc.SendVerificationCode(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseVerified, session.Phase)
	assert.Equal(t, sendsBefore, verifier.sends)
}

func TestSubmitRequiresPreview(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _, _, err := svc.Submit(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotReadyToSubmit)
}

func TestSubmitSurfacesFieldErrors(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{fieldErrs: map[string]string{"signature": "A drawn signature is required"}}
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, gen)

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	verifySession(t, svc, session.ID)
	_, err := svc.AttachSignature(ctx, session.ID, "Asha", signatureDataURL)
	require.NoError(t, err)
	_, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)

	session, result, fieldErrs, err := svc.Submit(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, fieldErrs, "signature")
	assert.Equal(t, StepPreview, session.Step, "session stays at preview on validation failure")
}

func TestResetWipesSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)
	fillDetails(t, svc, session.ID)
	verifySession(t, svc, session.ID)

	session, err := svc.Reset(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepRead, session.Step)
	assert.Equal(t, PhaseUnverified, session.Phase)
	assert.Empty(t, session.Data.FullName)
	assert.False(t, session.Data.AadhaarVerified)
	assert.NotEmpty(t, session.Data.Date)
}

func TestGetUnknownSession(t *testing.T) {
	svc, _ := newTestService(&fakeVerifier{}, &fakeGenerator{})
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBackNavigation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeVerifier{refID: "ref-1", goodOTP: "123456"}, &fakeGenerator{})

	session, _ := svc.Start(ctx)
	_, _ = svc.AcceptTerms(ctx, session.ID, true)

	session, err := svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepRead, session.Step)
	assert.True(t, session.Data.HasAgreed, "going back keeps the recorded agreement")
}
