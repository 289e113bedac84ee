package wizard

import (
	"context"
	"time"

	"auditveda/models"
	"auditveda/services/agreement"
)

// Step is the wizard's coarse position.
type Step string

const (
	StepRead    Step = "read"
	StepDetails Step = "details"
	StepPreview Step = "preview"
	StepDone    Step = "done"
)

// Phase tracks Aadhaar verification progress within a session.
type Phase string

const (
	PhaseUnverified Phase = "unverified"
	PhaseCodeSent   Phase = "code_sent"
	PhaseVerified   Phase = "verified"
)

// Session is one partner's pass through the agreement wizard.
type Session struct {
	ID        string               `json:"id"`
	Step      Step                 `json:"step"`
	Phase     Phase                `json:"phase"`
	Data      models.AgreementData `json:"data"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Generator produces the final agreement artifact from submitted data.
// Satisfied by *agreement.Generator.
type Generator interface {
	Generate(ctx context.Context, data models.AgreementData) (*agreement.GenerateResult, map[string]string, error)
}

// WizardService drives a session through the agreement steps.
type WizardService interface {
	// Start creates a fresh session at the reading step.
	Start(ctx context.Context) (*Session, error)

	// Get loads an existing session.
	Get(ctx context.Context, id string) (*Session, error)

	// AcceptTerms records whether the partner agreed to the terms.
	// Agreeing moves a session at the reading step to the details step;
	// withdrawing agreement moves it back.
	AcceptTerms(ctx context.Context, id string, agreed bool) (*Session, error)

	// UpdateDetails merges the partner detail fields into the session and
	// returns per-field validation errors. Changing the Aadhaar number
	// discards any prior verification.
	UpdateDetails(ctx context.Context, id string, details models.AgreementData) (*Session, map[string]string, error)

	// SendVerificationCode starts OTP verification for the session's
	// Aadhaar number.
	SendVerificationCode(ctx context.Context, id string) (*Session, error)

	// ConfirmVerificationCode completes OTP verification.
	ConfirmVerificationCode(ctx context.Context, id, otp string) (*Session, error)

	// AttachSignature stores the typed name and drawn signature. It fails
	// unless the session's Aadhaar is verified.
	AttachSignature(ctx context.Context, id, name, dataURL string) (*Session, error)

	// ClearSignature removes the drawn signature.
	ClearSignature(ctx context.Context, id string) (*Session, error)

	// Preview assembles the agreement document from the session's current
	// data without generating a PDF.
	Preview(ctx context.Context, id string) (*Session, *agreement.Document, error)

	// Advance moves the session to the next step, enforcing the step's
	// entry requirements.
	Advance(ctx context.Context, id string) (*Session, error)

	// Back moves the session one step backwards.
	Back(ctx context.Context, id string) (*Session, error)

	// Submit generates the agreement PDF and delivers it. Field errors
	// are returned in the map.
	Submit(ctx context.Context, id string) (*Session, *agreement.GenerateResult, map[string]string, error)

	// Reset discards the session's data and returns it to the reading step.
	Reset(ctx context.Context, id string) (*Session, error)
}
