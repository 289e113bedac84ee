package agreement

import (
	"regexp"
	"strings"

	"auditveda/models"
)

var (
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	otpPattern     = regexp.MustCompile(`^\d{6}$`)
)

// ValidPAN reports whether s is a well-formed PAN (5 letters, 4 digits,
// 1 letter, uppercase).
func ValidPAN(s string) bool {
	return panPattern.MatchString(s)
}

// ValidAadhaar reports whether s is exactly 12 digits.
func ValidAadhaar(s string) bool {
	return aadhaarPattern.MatchString(s)
}

// ValidOTP reports whether s is exactly 6 digits.
func ValidOTP(s string) bool {
	return otpPattern.MatchString(s)
}

// ValidateDetails checks the partner detail fields and returns a map of
// field name to error message. An empty map means the data is valid.
func ValidateDetails(data models.AgreementData) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(data.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if pan := strings.TrimSpace(data.PANNumber); pan == "" {
		errs["panNumber"] = "PAN number is required"
	} else if !ValidPAN(pan) {
		errs["panNumber"] = "PAN must be in the format ABCDE1234F"
	}
	if strings.TrimSpace(data.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(data.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(data.State) == "" {
		errs["state"] = "State is required"
	}
	if strings.TrimSpace(data.Date) == "" {
		errs["date"] = "Date is required"
	}
	if strings.TrimSpace(data.Jurisdiction) == "" {
		errs["jurisdiction"] = "Jurisdiction is required"
	}
	if strings.TrimSpace(data.Place) == "" {
		errs["place"] = "Place is required"
	}
	if aadhaar := strings.TrimSpace(data.AadhaarNumber); aadhaar == "" {
		errs["aadhaarNumber"] = "Aadhaar number is required"
	} else if !ValidAadhaar(aadhaar) {
		errs["aadhaarNumber"] = "Aadhaar must be exactly 12 digits"
	}

	return errs
}

// ValidateForGeneration performs the full pre-generation check: detail
// fields, terms acceptance, Aadhaar verification and signature presence.
// It returns a map of field name to error message.
func ValidateForGeneration(data models.AgreementData) map[string]string {
	errs := ValidateDetails(data)

	if !data.HasAgreed {
		errs["hasAgreed"] = "You must accept the agreement terms"
	}
	if !data.AadhaarVerified {
		errs["aadhaarVerified"] = "Aadhaar verification must be completed"
	}
	if strings.TrimSpace(data.SignatureName) == "" {
		errs["signatureName"] = "Signature name is required"
	}
	if strings.TrimSpace(data.SignatureDataURL) == "" {
		errs["signature"] = "A drawn signature is required"
	}

	return errs
}
