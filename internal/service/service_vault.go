package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

// vaultService wraps crypto.Vault with worker offloading, audit recording
// and logging. Plaintext never reaches the log or the audit trail.
//
// Every sealed field is bound to the user in the request context, so one
// user's fields never open for another.
type vaultService struct {
	vault  crypto.Vault
	pool   *offloader
	audit  *guard.AuditRecorder
	logger *logger.Logger
}

// NewVaultService returns a VaultService running at most workerLimit vault
// calls at once.
func NewVaultService(vault crypto.Vault, workerLimit int64, audit *guard.AuditRecorder, logger *logger.Logger) VaultService {
	return &vaultService{
		vault:  vault,
		pool:   newOffloader(workerLimit),
		audit:  audit,
		logger: logger,
	}
}

func (s *vaultService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedField, error) {
	vault, err := s.owned(ctx)
	if err != nil {
		return models.EncryptedField{}, err
	}

	field, err := offload(ctx, s.pool, func() (models.EncryptedField, error) {
		if req.Context == "" {
			return vault.Encrypt(req.Plaintext)
		}
		return vault.EncryptWithContext(req.Plaintext, req.Context)
	})

	record(ctx, s.audit, "vault.encrypt", "field", err, map[string]string{"key_context": keyContext(req.Context)})
	if err != nil {
		logger.FromContext(ctx).Error().Str("class", errorClass(err)).Msg("field encryption failed")
		return models.EncryptedField{}, fmt.Errorf("encrypt field: %w", err)
	}
	return field, nil
}

func (s *vaultService) Decrypt(ctx context.Context, field models.EncryptedField) (string, error) {
	vault, err := s.owned(ctx)
	if err != nil {
		return "", err
	}

	plaintext, err := offload(ctx, s.pool, func() (string, error) {
		return vault.Decrypt(field)
	})

	record(ctx, s.audit, "vault.decrypt", "field", err, map[string]string{"key_context": keyContext(field.Salt)})
	if err != nil {
		logger.FromContext(ctx).Warn().Str("class", errorClass(err)).Msg("field decryption failed")
		return "", fmt.Errorf("decrypt field: %w", err)
	}
	return plaintext, nil
}

func (s *vaultService) Mask(ctx context.Context, req models.MaskRequest) (string, error) {
	if !req.Kind.Valid() {
		record(ctx, s.audit, "vault.mask", "field", ErrUnknownMaskKind, map[string]string{"kind": string(req.Kind)})
		return "", ErrUnknownMaskKind
	}

	masked := s.vault.Mask(req.Plaintext, req.Kind)
	record(ctx, s.audit, "vault.mask", "field", nil, map[string]string{"kind": string(req.Kind)})
	return masked, nil
}

func (s *vaultService) EncryptCard(ctx context.Context, number string) (models.EncryptedCard, error) {
	return s.encryptNumber(ctx, "card", number, crypto.Vault.EncryptCard)
}

func (s *vaultService) EncryptAccount(ctx context.Context, number string) (models.EncryptedCard, error) {
	return s.encryptNumber(ctx, "account", number, crypto.Vault.EncryptAccount)
}

func (s *vaultService) encryptNumber(ctx context.Context, resource, number string, seal func(crypto.Vault, string) (models.EncryptedCard, error)) (models.EncryptedCard, error) {
	vault, err := s.owned(ctx)
	if err != nil {
		return models.EncryptedCard{}, err
	}

	card, err := offload(ctx, s.pool, func() (models.EncryptedCard, error) {
		return seal(vault, number)
	})

	extra := map[string]string{}
	if err == nil {
		extra["last4"] = card.Last4
	}
	record(ctx, s.audit, "vault.encrypt_"+resource, resource, err, extra)
	if err != nil {
		logger.FromContext(ctx).Error().Str("class", errorClass(err)).Str("resource", resource).Msg("number encryption failed")
		return models.EncryptedCard{}, fmt.Errorf("encrypt %s: %w", resource, err)
	}
	return card, nil
}

// owned returns the vault bound to the user in ctx.
func (s *vaultService) owned(ctx context.Context) (crypto.Vault, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoOwner
	}
	return s.vault.ForOwner(strconv.FormatInt(userID, 10)), nil
}

func keyContext(label string) string {
	if label == "" {
		return crypto.DefaultKeyContext
	}
	return label
}
