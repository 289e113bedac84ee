package wizard

import (
	"context"
	"errors"
	"strings"
	"time"

	"auditveda/models"
	"auditveda/services/agreement"
	"auditveda/services/verification"
	"auditveda/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Guard errors returned when a session tries to move past an unmet
// requirement.
var (
	ErrTermsNotAccepted = errors.New("agreement terms have not been accepted")
	ErrDetailsInvalid   = errors.New("partner details are incomplete or invalid")
	ErrNotVerified      = errors.New("aadhaar verification has not been completed")
	ErrSignatureMissing = errors.New("a drawn signature is required")
	ErrNotReadyToSubmit = errors.New("the agreement must be previewed before submission")
	ErrSessionCompleted = errors.New("this session has already been submitted")
)

// DefaultWizardService drives sessions through the agreement steps, keeping
// state in a SessionStore and vendor reference IDs in a ReferenceStore.
type DefaultWizardService struct {
	store     SessionStore
	refs      verification.ReferenceStore
	verifier  verification.Verifier
	generator Generator
}

// NewWizardService builds the production wizard service.
func NewWizardService(store SessionStore, refs verification.ReferenceStore, verifier verification.Verifier, generator Generator) *DefaultWizardService {
	return &DefaultWizardService{store: store, refs: refs, verifier: verifier, generator: generator}
}

func (s *DefaultWizardService) Start(ctx context.Context) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:    uuid.NewString(),
		Step:  StepRead,
		Phase: PhaseUnverified,
		Data: models.AgreementData{
			Date: now.Format("2006-01-02"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Wizard session started", zap.String("sessionId", session.ID))
	return session, nil
}

func (s *DefaultWizardService) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *DefaultWizardService) AcceptTerms(ctx context.Context, id string, agreed bool) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step == StepDone {
		return nil, ErrSessionCompleted
	}

	session.Data.HasAgreed = agreed
	if agreed && session.Step == StepRead {
		session.Step = StepDetails
	}
	if !agreed {
		session.Step = StepRead
	}
	return s.save(ctx, session)
}

func (s *DefaultWizardService) UpdateDetails(ctx context.Context, id string, details models.AgreementData) (*Session, map[string]string, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if session.Step == StepDone {
		return nil, nil, ErrSessionCompleted
	}

	data := &session.Data
	data.FullName = strings.TrimSpace(details.FullName)
	data.PANNumber = strings.ToUpper(strings.TrimSpace(details.PANNumber))
	data.Address = strings.TrimSpace(details.Address)
	data.City = strings.TrimSpace(details.City)
	data.State = strings.TrimSpace(details.State)
	data.Jurisdiction = strings.TrimSpace(details.Jurisdiction)
	data.Place = strings.TrimSpace(details.Place)
	if strings.TrimSpace(details.Date) != "" {
		data.Date = strings.TrimSpace(details.Date)
	}

	// A different Aadhaar number invalidates any verification already done.
	newAadhaar := strings.TrimSpace(details.AadhaarNumber)
	if newAadhaar != data.AadhaarNumber {
		data.AadhaarNumber = newAadhaar
		data.AadhaarVerified = false
		data.AadhaarVerifiedAt = ""
		data.Identity = nil
		data.SignatureDataURL = ""
		session.Phase = PhaseUnverified
		if err := s.refs.Delete(ctx, session.ID); err != nil {
			utils.GetLogger().Warn("Failed to clear verification reference",
				zap.String("sessionId", session.ID), zap.Error(err))
		}
	}

	saved, err := s.save(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	return saved, agreement.ValidateDetails(saved.Data), nil
}

func (s *DefaultWizardService) SendVerificationCode(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase == PhaseVerified {
		return session, nil
	}

	refID, err := s.verifier.SendCode(ctx, session.Data.AadhaarNumber)
	if err != nil {
		return session, err
	}
	if err := s.refs.Put(ctx, session.ID, refID); err != nil {
		return session, err
	}

	session.Phase = PhaseCodeSent
	return s.save(ctx, session)
}

func (s *DefaultWizardService) ConfirmVerificationCode(ctx context.Context, id, otp string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// A duplicate confirm after success must not downgrade the session;
	// the reference is already consumed at that point.
	if session.Phase == PhaseVerified {
		return session, nil
	}

	refID, err := s.refs.Get(ctx, session.ID)
	if err != nil {
		return session, err
	}
	if refID == "" {
		session.Phase = PhaseUnverified
		if saved, saveErr := s.save(ctx, session); saveErr == nil {
			session = saved
		}
		return session, verification.NewFlowError(verification.KindExpired,
			"No pending verification found. Please request a new OTP.", "")
	}

	identity, err := s.verifier.VerifyCode(ctx, refID, otp)
	if err != nil {
		fe := verification.AsFlowError(err)
		if fe.Kind == verification.KindExpired {
			// Expired attempts are unrecoverable; force a fresh OTP.
			session.Phase = PhaseUnverified
			_ = s.refs.Delete(ctx, session.ID)
			if saved, saveErr := s.save(ctx, session); saveErr == nil {
				session = saved
			}
		}
		return session, fe
	}

	session.Phase = PhaseVerified
	session.Data.AadhaarVerified = true
	session.Data.AadhaarVerifiedAt = time.Now().Format(time.RFC3339)
	session.Data.Identity = identity
	_ = s.refs.Delete(ctx, session.ID)
	return s.save(ctx, session)
}

func (s *DefaultWizardService) AttachSignature(ctx context.Context, id, name, dataURL string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != PhaseVerified {
		return session, ErrNotVerified
	}

	session.Data.SignatureName = strings.TrimSpace(name)
	session.Data.SignatureDataURL = dataURL
	return s.save(ctx, session)
}

func (s *DefaultWizardService) ClearSignature(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Data.SignatureDataURL = ""
	return s.save(ctx, session)
}

func (s *DefaultWizardService) Preview(ctx context.Context, id string) (*Session, *agreement.Document, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return session, agreement.Assemble(session.Data), nil
}

func (s *DefaultWizardService) Advance(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case StepRead:
		if !session.Data.HasAgreed {
			return session, ErrTermsNotAccepted
		}
		session.Step = StepDetails
	case StepDetails:
		if errs := agreement.ValidateDetails(session.Data); len(errs) > 0 {
			return session, ErrDetailsInvalid
		}
		if session.Phase != PhaseVerified {
			return session, ErrNotVerified
		}
		if strings.TrimSpace(session.Data.SignatureDataURL) == "" {
			return session, ErrSignatureMissing
		}
		session.Step = StepPreview
	case StepPreview:
		return session, ErrNotReadyToSubmit
	case StepDone:
		return session, ErrSessionCompleted
	}
	return s.save(ctx, session)
}

func (s *DefaultWizardService) Back(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case StepDetails:
		session.Step = StepRead
	case StepPreview:
		session.Step = StepDetails
	case StepDone:
		return session, ErrSessionCompleted
	}
	return s.save(ctx, session)
}

func (s *DefaultWizardService) Submit(ctx context.Context, id string) (*Session, *agreement.GenerateResult, map[string]string, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if session.Step == StepDone {
		return session, nil, nil, ErrSessionCompleted
	}
	if session.Step != StepPreview {
		return session, nil, nil, ErrNotReadyToSubmit
	}

	result, fieldErrs, err := s.generator.Generate(ctx, session.Data)
	if err != nil {
		return session, nil, nil, err
	}
	if len(fieldErrs) > 0 {
		return session, nil, fieldErrs, nil
	}

	session.Data.DownloadLink = result.DownloadLink
	session.Data.DownloadBase64 = result.DownloadBase64
	session.Data.UploadWarning = result.UploadWarning
	session.Step = StepDone
	saved, err := s.save(ctx, session)
	if err != nil {
		return session, result, nil, err
	}

	utils.GetLogger().Info("Agreement submitted",
		zap.String("sessionId", session.ID),
		zap.String("fileName", result.FileName),
		zap.Bool("uploaded", result.Uploaded))
	return saved, result, nil, nil
}

func (s *DefaultWizardService) Reset(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.refs.Delete(ctx, session.ID)
	session.Step = StepRead
	session.Phase = PhaseUnverified
	session.Data = models.AgreementData{
		Date: time.Now().Format("2006-01-02"),
	}
	return s.save(ctx, session)
}

func (s *DefaultWizardService) save(ctx context.Context, session *Session) (*Session, error) {
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
