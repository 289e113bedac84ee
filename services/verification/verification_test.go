package verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vendorStub fakes the vendor's offline-aadhaar endpoints.
func vendorStub(t *testing.T, sendStatus int, sendBody map[string]any, verifyStatus int, verifyBody map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/verification/offline-aadhaar/otp", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "client-id", r.Header.Get("x-client-id"))
		assert.Equal(t, "client-secret", r.Header.Get("x-client-secret"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "123456789012", req["aadhaar_number"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(sendStatus)
		_ = json.NewEncoder(w).Encode(sendBody)
	})
	mux.HandleFunc("/verification/offline-aadhaar/verify", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["ref_id"])
		assert.NotEmpty(t, req["otp"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(verifyStatus)
		_ = json.NewEncoder(w).Encode(verifyBody)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestVerifier(srv *httptest.Server) *DefaultVerificationService {
	return NewVerificationService(NewVendorClient(srv.URL, "client-id", "client-secret"))
}

func TestSendCodeSuccess(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, map[string]any{"ref_id": 21637861, "status": "SUCCESS", "message": "OTP sent"},
		http.StatusOK, nil)

	refID, err := newTestVerifier(srv).SendCode(context.Background(), "123456789012")
	require.NoError(t, err)
	assert.Equal(t, "21637861", refID)
}

func TestSendCodeStringRefID(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, map[string]any{"ref_id": "ref-abc-123", "status": "SUCCESS"},
		http.StatusOK, nil)

	refID, err := newTestVerifier(srv).SendCode(context.Background(), "123456789012")
	require.NoError(t, err)
	assert.Equal(t, "ref-abc-123", refID)
}

func TestSendCodeRejectsBadFormat(t *testing.T) {
	v := NewVerificationService(NewVendorClient("http://unused", "client-id", "client-secret"))
	_, err := v.SendCode(context.Background(), "12345")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindFormat, fe.Kind)
}

func TestSendCodeNotLinked(t *testing.T) {
	srv := vendorStub(t,
		http.StatusBadRequest, map[string]any{"message": "Aadhaar not linked to mobile number"},
		http.StatusOK, nil)

	_, err := newTestVerifier(srv).SendCode(context.Background(), "123456789012")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindNotLinked, fe.Kind)
}

func TestSendCodeMissingRefID(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, map[string]any{"status": "SUCCESS"},
		http.StatusOK, nil)

	_, err := newTestVerifier(srv).SendCode(context.Background(), "123456789012")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindVendor, fe.Kind)
}

func TestVerifyCodeSuccess(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, nil,
		http.StatusOK, map[string]any{
			"status":      "VALID",
			"full_name":   "Asha Kumar",
			"dob":         "1990-04-12",
			"gender":      "F",
			"address":     "12 MG Road, Pune",
			"care_of":     "C/O R Kumar",
			"zip":         "411001",
			"photo_link":  "https://example.com/photo.jpg",
			"mobile_hash": "abc123",
			"email_hash":  "def456",
		})

	identity, err := newTestVerifier(srv).VerifyCode(context.Background(), "21637861", "123456")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "Asha Kumar", identity.Name)
	assert.Equal(t, "1990-04-12", identity.DOB)
	assert.Equal(t, "411001", identity.ZipCode)
	assert.Equal(t, "abc123", identity.MobileHash)
}

func TestVerifyCodeInvalidOTP(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, nil,
		http.StatusBadRequest, map[string]any{"message": "Invalid OTP entered"})

	_, err := newTestVerifier(srv).VerifyCode(context.Background(), "21637861", "123456")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindInvalidCode, fe.Kind)
}

func TestVerifyCodeExpired(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, nil,
		http.StatusBadRequest, map[string]any{"message": "OTP has expired"})

	_, err := newTestVerifier(srv).VerifyCode(context.Background(), "21637861", "123456")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindExpired, fe.Kind)
}

func TestVerifyCodeUnverifiedStatus(t *testing.T) {
	srv := vendorStub(t,
		http.StatusOK, nil,
		http.StatusOK, map[string]any{"status": "FAILED", "message": "Verification failed"})

	_, err := newTestVerifier(srv).VerifyCode(context.Background(), "21637861", "123456")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindVendor, fe.Kind)
}

func TestVerifyCodeRejectsBadOTPFormat(t *testing.T) {
	v := NewVerificationService(NewVendorClient("http://unused", "client-id", "client-secret"))

	_, err := v.VerifyCode(context.Background(), "21637861", "12345")
	fe := AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindFormat, fe.Kind)

	_, err = v.VerifyCode(context.Background(), "", "123456")
	fe = AsFlowError(err)
	require.NotNil(t, fe)
	assert.Equal(t, KindExpired, fe.Kind)
}

func TestMaskReference(t *testing.T) {
	assert.Equal(t, "12345678...", MaskReference("123456789012"))
	assert.Equal(t, "12345678", MaskReference("12345678"))
}

func TestMemoryReferenceStore(t *testing.T) {
	store := NewMemoryReferenceStore()
	ctx := context.Background()

	ref, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, ref)

	require.NoError(t, store.Put(ctx, "s1", "ref-1"))
	ref, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "ref-1", ref)

	require.NoError(t, store.Delete(ctx, "s1"))
	ref, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, ref)
}
