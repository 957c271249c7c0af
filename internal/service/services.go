package service

import (
	"fmt"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/obfuscator"
	"github.com/MKhiriev/go-page-guard/internal/packager"
	"github.com/MKhiriev/go-page-guard/internal/protection"
	"github.com/MKhiriev/go-page-guard/internal/store"
	"github.com/MKhiriev/go-page-guard/internal/validators"
	"github.com/MKhiriev/go-page-guard/models"
)

// OTPIssuer is the issuer label written into provisioning URIs.
const OTPIssuer = "PageGuard"

type Services struct {
	VaultService      VaultService
	CredentialService CredentialService
	OTPService        OTPService
	ExportService     ExportService
	AuditService      AuditService
	AppInfoService    AppInfoService
}

// NewServices builds every service. limiter counts verification attempts
// and is shared with the sweeping worker.
func NewServices(repos *store.Repositories, limiter *guard.RateLimiter, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	keys, err := crypto.NewKeyManager(cfg.Crypto)
	if err != nil {
		return nil, fmt.Errorf("create key manager: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	audit := guard.NewAuditRecorder(repos.AuditRepository, guard.NewAuditBuilder(), logger)

	pkg := packager.New(
		protection.NewSynthesizer(),
		newObfuscator(cfg.Export),
		packager.Options{Obfuscate: cfg.Export.Obfuscate, Obfuscator: obfuscator.Options{RenameLocals: true}},
		logger,
	)

	return &Services{
		VaultService:      NewVaultService(crypto.NewVault(keys, cfg.Crypto.KeyContexts...), cfg.Crypto.WorkerLimit, audit, logger),
		CredentialService: NewCredentialService(crypto.NewCredentialHasher(cfg.Crypto), limiter, cfg.Crypto.WorkerLimit, audit, logger),
		OTPService:        NewOTPService(crypto.NewOTP(), limiter, OTPIssuer, audit, logger),
		ExportService:     NewExportService(pkg, validators.NewExportRequestValidator(), audit, logger),
		AuditService:      NewAuditService(repos.AuditRepository, logger),
		AppInfoService:    appInfo,
	}, nil
}

func newObfuscator(cfg config.Export) obfuscator.Obfuscator {
	if cfg.ObfuscatorURL == "" {
		return obfuscator.NewMinifyObfuscator()
	}
	return obfuscator.NewRemoteObfuscator(obfuscator.RemoteConfig{
		BaseURL: cfg.ObfuscatorURL,
		Timeout: cfg.ObfuscatorTimeout,
	})
}
