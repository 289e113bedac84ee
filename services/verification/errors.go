package verification

import "strings"

// ErrorKind buckets vendor failures into the categories the flow reacts to.
type ErrorKind string

const (
	KindFormat      ErrorKind = "format"
	KindNotLinked   ErrorKind = "not_linked"
	KindInvalidCode ErrorKind = "invalid_code"
	KindExpired     ErrorKind = "expired"
	KindVendor      ErrorKind = "vendor"
)

// FlowError is a categorized verification failure. Kind drives the state
// transition; Message is safe to show to the partner.
type FlowError struct {
	Kind    ErrorKind
	Message string
	Details string
}

func (e *FlowError) Error() string {
	return e.Message
}

// NewFlowError builds a FlowError with a category and display message.
func NewFlowError(kind ErrorKind, message, details string) *FlowError {
	return &FlowError{Kind: kind, Message: message, Details: details}
}

// CategorizeSendFailure maps a vendor message from the OTP request phase to
// a FlowError. The vendor signals an Aadhaar without a linked mobile number
// only through its message text.
func CategorizeSendFailure(message, details string) *FlowError {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "not linked") {
		return NewFlowError(KindNotLinked,
			"This Aadhaar number is not linked to a mobile number. OTP verification is not possible.", details)
	}
	if message == "" {
		message = "Failed to send OTP. Please try again."
	}
	return NewFlowError(KindVendor, message, details)
}

// CategorizeVerifyFailure maps a vendor message from the OTP confirmation
// phase to a FlowError.
func CategorizeVerifyFailure(message, details string) *FlowError {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "expired"):
		return NewFlowError(KindExpired,
			"The OTP has expired. Please request a new one.", details)
	case strings.Contains(lower, "invalid otp"), strings.Contains(lower, "invalid"):
		return NewFlowError(KindInvalidCode,
			"The OTP you entered is incorrect. Please try again.", details)
	}
	if message == "" {
		message = "Verification failed. Please try again."
	}
	return NewFlowError(KindVendor, message, details)
}

// AsFlowError returns err as a *FlowError, wrapping unknown errors as
// vendor failures.
func AsFlowError(err error) *FlowError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FlowError); ok {
		return fe
	}
	return NewFlowError(KindVendor, err.Error(), "")
}
