package models

// IdentityData holds the attributes returned by the Aadhaar verification vendor
// after a successful OTP verification.
type IdentityData struct {
	Name       string `json:"name,omitempty"`
	DOB        string `json:"dob,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Address    string `json:"address,omitempty"`
	CareOf     string `json:"careOf,omitempty"`
	ZipCode    string `json:"zipCode,omitempty"`
	Photo      string `json:"photo,omitempty"`
	MobileHash string `json:"mobileHash,omitempty"`
	EmailHash  string `json:"emailHash,omitempty"`
}

// AgreementData is the single aggregate carried across the wizard steps.
// It lives for the duration of one session and is never persisted durably.
type AgreementData struct {
	FullName     string `json:"fullName"`
	PANNumber    string `json:"panNumber"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Date         string `json:"date"` // YYYY-MM-DD, defaults to today
	Jurisdiction string `json:"jurisdiction"`
	Place        string `json:"place"`

	AadhaarNumber     string        `json:"aadhaarNumber"`
	AadhaarVerified   bool          `json:"aadhaarVerified"`
	AadhaarVerifiedAt string        `json:"aadhaarVerifiedAt,omitempty"`
	Identity          *IdentityData `json:"identityData,omitempty"`

	SignatureName    string `json:"signatureName"`
	SignatureDataURL string `json:"signatureDataUrl"` // empty string = unset

	HasAgreed bool `json:"hasAgreed"`

	// Populated after submission. Exactly one of DownloadLink and
	// DownloadBase64 is set on success.
	DownloadLink   string `json:"downloadLink,omitempty"`
	DownloadBase64 string `json:"downloadBase64,omitempty"`
	UploadWarning  string `json:"uploadWarning,omitempty"`
}
