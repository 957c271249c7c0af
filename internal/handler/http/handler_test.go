package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/mock"
	"github.com/MKhiriev/go-page-guard/internal/service"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "page-guard-test"
)

// testServices holds the mocks behind a test router.
type testServices struct {
	vault  *mock.MockVaultService
	creds  *mock.MockCredentialService
	otp    *mock.MockOTPService
	export *mock.MockExportService
	audit  *mock.MockAuditService
	info   *mock.MockAppInfoService
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newTestRouter(t *testing.T, apiLimit int) (http.Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		vault:  mock.NewMockVaultService(ctrl),
		creds:  mock.NewMockCredentialService(ctrl),
		otp:    mock.NewMockOTPService(ctrl),
		export: mock.NewMockExportService(ctrl),
		audit:  mock.NewMockAuditService(ctrl),
		info:   mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		VaultService:      mocks.vault,
		CredentialService: mocks.creds,
		OTPService:        mocks.otp,
		ExportService:     mocks.export,
		AuditService:      mocks.audit,
		AppInfoService:    mocks.info,
	}

	limiter, err := guard.NewRateLimiter(apiLimit, time.Minute)
	require.NoError(t, err)

	h := NewHandler(svcs, limiter, config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())
	return h.Init(), mocks
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// do sends a request with an optional JSON body and bearer token.
func do(t *testing.T, router http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.RemoteAddr = "203.0.113.7:51000"
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
