package service

import (
	"context"

	"github.com/MKhiriev/go-page-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService seals, opens and masks sensitive fields for API callers.
// Sealed fields are bound to the user in ctx; calls without one fail with
// ErrNoOwner.
type VaultService interface {
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedField, error)
	Decrypt(ctx context.Context, field models.EncryptedField) (string, error)
	Mask(ctx context.Context, req models.MaskRequest) (string, error)
	EncryptCard(ctx context.Context, number string) (models.EncryptedCard, error)
	EncryptAccount(ctx context.Context, number string) (models.EncryptedCard, error)
}

// CredentialService hashes and verifies passwords. Verification attempts are
// rate limited per identifier.
type CredentialService interface {
	HashPassword(ctx context.Context, password string) (models.PasswordHash, error)
	VerifyPassword(ctx context.Context, identifier string, req models.VerifyPasswordRequest) (bool, error)
	ValidateStrength(ctx context.Context, password string) models.StrengthReport
}

// OTPService issues TOTP secrets and verifies codes. Verification attempts
// are rate limited per identifier.
type OTPService interface {
	GenerateSecret(ctx context.Context, account string) (models.OTPSecret, error)
	Verify(ctx context.Context, identifier string, req models.VerifyOTPRequest) (bool, error)
}

// ExportService builds protected bundles for the authenticated owner.
type ExportService interface {
	Export(ctx context.Context, req models.ExportRequest) (models.ProtectedPackage, error)
}

// AuditService reads the audit trail.
type AuditService interface {
	List(ctx context.Context, query models.AuditQuery) ([]models.AuditLogEntry, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Packager builds a protected bundle from an export request.
type Packager interface {
	Package(ctx context.Context, req models.ExportRequest) (models.ProtectedPackage, error)
}
