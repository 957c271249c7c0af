package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/models"
)

type credentialService struct {
	hasher  crypto.CredentialHasher
	limiter *guard.RateLimiter
	pool    *offloader
	audit   *guard.AuditRecorder
	logger  *logger.Logger
}

// NewCredentialService returns a CredentialService. limiter counts
// verification attempts per identifier and is reset after a success.
func NewCredentialService(hasher crypto.CredentialHasher, limiter *guard.RateLimiter, workerLimit int64, audit *guard.AuditRecorder, logger *logger.Logger) CredentialService {
	return &credentialService{
		hasher:  hasher,
		limiter: limiter,
		pool:    newOffloader(workerLimit),
		audit:   audit,
		logger:  logger,
	}
}

// HashPassword rejects weak passwords with a *WeakPasswordError before
// hashing.
func (s *credentialService) HashPassword(ctx context.Context, password string) (models.PasswordHash, error) {
	report := s.hasher.ValidateStrength(password)
	if !report.IsValid {
		err := &WeakPasswordError{Report: report}
		record(ctx, s.audit, "credentials.hash", "password", err, map[string]string{"violations": fmt.Sprint(len(report.Violations))})
		return models.PasswordHash{}, err
	}

	hash, err := offload(ctx, s.pool, func() (models.PasswordHash, error) {
		return s.hasher.HashPassword(password)
	})

	record(ctx, s.audit, "credentials.hash", "password", err, nil)
	if err != nil {
		logger.FromContext(ctx).Error().Str("class", errorClass(err)).Msg("password hashing failed")
		return models.PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword returns guard.ErrRateLimited once identifier has used up
// its attempts for the current window.
func (s *credentialService) VerifyPassword(ctx context.Context, identifier string, req models.VerifyPasswordRequest) (bool, error) {
	key := "password:" + identifier
	if !s.limiter.Allow(key) {
		record(ctx, s.audit, "credentials.verify", "password", guard.ErrRateLimited, nil)
		logger.FromContext(ctx).Warn().Str("identifier", identifier).Msg("password verification rate limited")
		return false, guard.ErrRateLimited
	}

	if req.Hash.Hash == "" || req.Hash.Salt == "" {
		record(ctx, s.audit, "credentials.verify", "password", ErrInvalidDataProvided, nil)
		return false, ErrInvalidDataProvided
	}

	ok, err := offload(ctx, s.pool, func() (bool, error) {
		return s.hasher.VerifyPassword(req.Password, req.Hash.Hash, req.Hash.Salt), nil
	})
	if err != nil {
		record(ctx, s.audit, "credentials.verify", "password", err, nil)
		return false, err
	}

	if ok {
		s.limiter.Reset(key)
		record(ctx, s.audit, "credentials.verify", "password", nil, nil)
	} else {
		recordMismatch(ctx, s.audit, "credentials.verify", "password")
	}
	return ok, nil
}

func (s *credentialService) ValidateStrength(ctx context.Context, password string) models.StrengthReport {
	return s.hasher.ValidateStrength(password)
}
