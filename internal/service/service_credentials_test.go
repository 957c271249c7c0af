package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/mock"
	"github.com/MKhiriev/go-page-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var storedHash = models.PasswordHash{Hash: "aa", Salt: "bb"}

func newTestCredentialSvc(t *testing.T, maxAttempts int) (CredentialService, *mock.MockCredentialHasher, *auditSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockCredentialHasher(ctrl)
	audit, sink := newTestAudit(ctrl)
	return NewCredentialService(hasher, newTestLimiter(t, maxAttempts), 2, audit, logger.Nop()), hasher, sink
}

func TestCredentialService_HashPassword_Success(t *testing.T) {
	svc, hasher, sink := newTestCredentialSvc(t, 5)
	hasher.EXPECT().ValidateStrength("Str0ng!Passw0rd").Return(models.StrengthReport{IsValid: true})
	hasher.EXPECT().HashPassword("Str0ng!Passw0rd").Return(storedHash, nil)

	got, err := svc.HashPassword(context.Background(), "Str0ng!Passw0rd")

	require.NoError(t, err)
	assert.Equal(t, storedHash, got)
	assert.Equal(t, "credentials.hash", sink.last(t).Action())
	assert.Equal(t, models.OutcomeSuccess, sink.last(t).Outcome())
}

func TestCredentialService_HashPassword_Weak(t *testing.T) {
	svc, hasher, sink := newTestCredentialSvc(t, 5)
	report := models.StrengthReport{
		IsValid: false,
		Violations: []models.PasswordViolation{
			{Rule: models.RuleMinLength, Message: "too short"},
			{Rule: models.RuleSymbol, Message: "no symbol"},
		},
	}
	hasher.EXPECT().ValidateStrength("abc").Return(report)

	_, err := svc.HashPassword(context.Background(), "abc")

	var weak *WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Equal(t, report, weak.Report)
	assert.ErrorIs(t, err, crypto.ErrValidation)
	assert.Equal(t, "weak password: min_length, symbol", err.Error())
	assert.Equal(t, "2", sink.last(t).Context()["violations"])
	assert.NotContains(t, sink.last(t).Context(), "password")
}

func TestCredentialService_VerifyPassword_MatchResetsLimiter(t *testing.T) {
	svc, hasher, sink := newTestCredentialSvc(t, 2)
	req := models.VerifyPasswordRequest{Password: "wrong", Hash: storedHash}

	hasher.EXPECT().VerifyPassword("wrong", "aa", "bb").Return(false)
	ok, err := svc.VerifyPassword(context.Background(), "alice", req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "mismatch", sink.last(t).Context()["error"])

	req.Password = "right"
	hasher.EXPECT().VerifyPassword("right", "aa", "bb").Return(true).Times(2)
	ok, err = svc.VerifyPassword(context.Background(), "alice", req)
	require.NoError(t, err)
	assert.True(t, ok)

	// the window was reset, so both attempts are available again
	ok, err = svc.VerifyPassword(context.Background(), "alice", req)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCredentialService_VerifyPassword_RateLimited(t *testing.T) {
	svc, hasher, sink := newTestCredentialSvc(t, 2)
	req := models.VerifyPasswordRequest{Password: "wrong", Hash: storedHash}
	hasher.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(2)

	for range 2 {
		_, err := svc.VerifyPassword(context.Background(), "bob", req)
		require.NoError(t, err)
	}

	ok, err := svc.VerifyPassword(context.Background(), "bob", req)

	assert.False(t, ok)
	assert.ErrorIs(t, err, guard.ErrRateLimited)
	assert.Equal(t, models.OutcomeDenied, sink.last(t).Outcome())

	// other identifiers are unaffected
	hasher.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	_, err = svc.VerifyPassword(context.Background(), "carol", req)
	assert.NoError(t, err)
}

func TestCredentialService_VerifyPassword_MissingHash(t *testing.T) {
	svc, _, _ := newTestCredentialSvc(t, 5)

	_, err := svc.VerifyPassword(context.Background(), "alice", models.VerifyPasswordRequest{Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, crypto.ErrValidation)
}

func TestCredentialService_ValidateStrength(t *testing.T) {
	svc, hasher, _ := newTestCredentialSvc(t, 5)
	hasher.EXPECT().ValidateStrength("p").Return(models.StrengthReport{IsValid: false})

	assert.False(t, svc.ValidateStrength(context.Background(), "p").IsValid)
}
