package verification

import (
	"context"

	"auditveda/models"
)

// Verifier runs the two-phase Aadhaar OTP flow against the vendor.
type Verifier interface {
	// SendCode validates the Aadhaar number and asks the vendor to send an
	// OTP. It returns the vendor reference ID for the attempt.
	SendCode(ctx context.Context, aadhaarNumber string) (string, error)

	// VerifyCode submits the OTP for a reference ID and returns the
	// identity attributes on success.
	VerifyCode(ctx context.Context, refID, otp string) (*models.IdentityData, error)
}
