package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"auditveda/models"
)

// VendorClient talks to the Aadhaar verification vendor's offline-aadhaar
// OTP API. Credentials travel in the x-client-id / x-client-secret headers.
type VendorClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewVendorClient builds a client for the given vendor environment.
func NewVendorClient(baseURL, clientID, clientSecret string) *VendorClient {
	return &VendorClient{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

type sendOTPResponse struct {
	RefID   any    `json:"ref_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type verifyOTPResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	FullName   string `json:"full_name"`
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Address    string `json:"address"`
	CareOf     string `json:"care_of"`
	Zip        string `json:"zip"`
	PhotoLink  string `json:"photo_link"`
	MobileHash string `json:"mobile_hash"`
	EmailHash  string `json:"email_hash"`
}

// RequestOTP asks the vendor to send an OTP to the mobile number linked to
// the given Aadhaar. It returns the vendor's reference ID for the attempt.
func (c *VendorClient) RequestOTP(ctx context.Context, aadhaarNumber string) (string, error) {
	payload := map[string]string{"aadhaar_number": aadhaarNumber}
	var out sendOTPResponse
	status, raw, err := c.post(ctx, "/verification/offline-aadhaar/otp", payload, &out)
	if err != nil {
		return "", NewFlowError(KindVendor, "Could not reach the verification service.", err.Error())
	}
	if status < 200 || status >= 300 {
		return "", CategorizeSendFailure(out.Message, raw)
	}
	refID := normalizeRefID(out.RefID)
	if refID == "" {
		return "", NewFlowError(KindVendor, "The verification service did not return a reference ID.", raw)
	}
	return refID, nil
}

// ConfirmOTP submits the OTP for a previously issued reference ID. On a
// verified response it returns the identity attributes the vendor shares.
func (c *VendorClient) ConfirmOTP(ctx context.Context, refID, otp string) (*models.IdentityData, error) {
	payload := map[string]string{"otp": otp, "ref_id": refID}
	var out verifyOTPResponse
	status, raw, err := c.post(ctx, "/verification/offline-aadhaar/verify", payload, &out)
	if err != nil {
		return nil, NewFlowError(KindVendor, "Could not reach the verification service.", err.Error())
	}
	if status < 200 || status >= 300 {
		return nil, CategorizeVerifyFailure(out.Message, raw)
	}
	if out.Status != "VALID" && out.Status != "SUCCESS" {
		return nil, CategorizeVerifyFailure(out.Message, raw)
	}
	return &models.IdentityData{
		Name:       out.FullName,
		DOB:        out.DOB,
		Gender:     out.Gender,
		Address:    out.Address,
		CareOf:     out.CareOf,
		ZipCode:    out.Zip,
		Photo:      out.PhotoLink,
		MobileHash: out.MobileHash,
		EmailHash:  out.EmailHash,
	}, nil
}

func (c *VendorClient) post(ctx context.Context, path string, payload any, out any) (int, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-client-secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("reading vendor response: %w", err)
	}
	// Best effort: error bodies are not always well-formed JSON.
	_ = json.Unmarshal(raw, out)
	return resp.StatusCode, string(raw), nil
}

// normalizeRefID flattens the vendor's ref_id, which arrives as either a
// JSON number or a string.
func normalizeRefID(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
