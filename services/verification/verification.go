package verification

import (
	"context"
	"regexp"

	"auditveda/models"
	"auditveda/utils"

	"go.uber.org/zap"
)

var (
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	otpPattern     = regexp.MustCompile(`^\d{6}$`)
)

// DefaultVerificationService implements Verifier on top of the vendor
// client. Format checks run locally so malformed input never reaches the
// vendor.
type DefaultVerificationService struct {
	vendor *VendorClient
}

// NewVerificationService builds the production Verifier.
func NewVerificationService(vendor *VendorClient) *DefaultVerificationService {
	return &DefaultVerificationService{vendor: vendor}
}

func (s *DefaultVerificationService) SendCode(ctx context.Context, aadhaarNumber string) (string, error) {
	logger := utils.GetLogger()

	if !aadhaarPattern.MatchString(aadhaarNumber) {
		return "", NewFlowError(KindFormat, "Aadhaar must be exactly 12 digits.", "")
	}

	refID, err := s.vendor.RequestOTP(ctx, aadhaarNumber)
	if err != nil {
		fe := AsFlowError(err)
		logger.Warn("Aadhaar OTP request failed",
			zap.String("kind", string(fe.Kind)), zap.String("message", fe.Message))
		return "", fe
	}

	logger.Info("Aadhaar OTP sent", zap.String("referenceId", MaskReference(refID)))
	return refID, nil
}

func (s *DefaultVerificationService) VerifyCode(ctx context.Context, refID, otp string) (*models.IdentityData, error) {
	logger := utils.GetLogger()

	if !otpPattern.MatchString(otp) {
		return nil, NewFlowError(KindFormat, "OTP must be exactly 6 digits.", "")
	}
	if refID == "" {
		return nil, NewFlowError(KindExpired, "No pending verification found. Please request a new OTP.", "")
	}

	identity, err := s.vendor.ConfirmOTP(ctx, refID, otp)
	if err != nil {
		fe := AsFlowError(err)
		logger.Warn("Aadhaar OTP verification failed",
			zap.String("referenceId", MaskReference(refID)),
			zap.String("kind", string(fe.Kind)), zap.String("message", fe.Message))
		return nil, fe
	}

	logger.Info("Aadhaar verified", zap.String("referenceId", MaskReference(refID)))
	return identity, nil
}

// MaskReference shortens a vendor reference ID for logging.
func MaskReference(refID string) string {
	if len(refID) <= 8 {
		return refID
	}
	return refID[:8] + "..."
}
