package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/models"
)

type otpService struct {
	otp     crypto.OTP
	limiter *guard.RateLimiter
	issuer  string
	audit   *guard.AuditRecorder
	logger  *logger.Logger
}

// NewOTPService returns an OTPService. issuer is shown by authenticator apps
// next to the account name.
func NewOTPService(otp crypto.OTP, limiter *guard.RateLimiter, issuer string, audit *guard.AuditRecorder, logger *logger.Logger) OTPService {
	return &otpService{
		otp:     otp,
		limiter: limiter,
		issuer:  issuer,
		audit:   audit,
		logger:  logger,
	}
}

// GenerateSecret returns a new secret with its otpauth:// provisioning URI.
func (s *otpService) GenerateSecret(ctx context.Context, account string) (models.OTPSecret, error) {
	secret, err := s.otp.Enroll(s.issuer, account)
	record(ctx, s.audit, "otp.enroll", "otp", err, nil)
	if err != nil {
		logger.FromContext(ctx).Error().Str("class", errorClass(err)).Msg("otp secret generation failed")
		return models.OTPSecret{}, fmt.Errorf("generate otp secret: %w", err)
	}

	return secret, nil
}

// Verify checks code against the current 30 s bucket only.
func (s *otpService) Verify(ctx context.Context, identifier string, req models.VerifyOTPRequest) (bool, error) {
	key := "otp:" + identifier
	if !s.limiter.Allow(key) {
		record(ctx, s.audit, "otp.verify", "otp", guard.ErrRateLimited, nil)
		logger.FromContext(ctx).Warn().Str("identifier", identifier).Msg("otp verification rate limited")
		return false, guard.ErrRateLimited
	}

	secret, err := crypto.DecodeSecret(req.Secret)
	if err != nil {
		record(ctx, s.audit, "otp.verify", "otp", err, nil)
		return false, fmt.Errorf("decode otp secret: %w", err)
	}

	ok := s.otp.VerifyCode(secret, strings.TrimSpace(req.Code))
	if ok {
		s.limiter.Reset(key)
		record(ctx, s.audit, "otp.verify", "otp", nil, nil)
	} else {
		recordMismatch(ctx, s.audit, "otp.verify", "otp")
	}
	return ok, nil
}
