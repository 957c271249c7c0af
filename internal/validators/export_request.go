package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-page-guard/models"
)

// Field names accepted by [ExportRequestValidator].
const (
	FieldContent     = "content"
	FieldTemplate    = "template"
	FieldDomainLock  = "domain_lock"
	FieldFingerprint = "fingerprint"
	FieldTuning      = "tuning"
)

// Limits of an export request.
const (
	MaxContentBytes    = 8 << 20
	MaxTitleLength     = 200
	MaxGameAttempts    = 100
	MaxDomainLock      = 32
	MaxFingerprintSize = 128
)

var allExportFields = []string{FieldContent, FieldTemplate, FieldDomainLock, FieldFingerprint, FieldTuning}

type ExportRequestValidator struct{}

func NewExportRequestValidator() Validator {
	return &ExportRequestValidator{}
}

// Validate checks a models.ExportRequest, or a pointer to one. With no
// fields given every rule runs.
func (v *ExportRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateExportRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ExportRequestValidator) validateExportRequest(_ context.Context, req models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = allExportFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldContent:
			if len(req.HTML)+len(req.CSS)+len(req.JS) > MaxContentBytes {
				err = ErrContentTooLarge
			}
		case FieldTemplate:
			err = validateTemplate(req.Template)
		case FieldDomainLock:
			err = validateDomainLock(req.Protection.DomainLock)
		case FieldFingerprint:
			err = validateFingerprint(req.Protection.UserFingerprint)
		case FieldTuning:
			err = validateTuning(req.Protection.Tuning)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// validateTemplate checks the members that are set. Which member must be
// set for a kind is decided by models.TemplateOptions.Validate.
func validateTemplate(t models.TemplateOptions) error {
	if len([]rune(t.Title())) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if g := t.Game; g != nil {
		if len(g.Prizes) == 0 {
			return ErrNoPrizes
		}
		for _, p := range g.Prizes {
			if strings.TrimSpace(p) == "" {
				return ErrBlankPrize
			}
		}
		if g.MaxAttempts < 0 || g.MaxAttempts > MaxGameAttempts {
			return ErrInvalidGameAttempts
		}
	}

	if f := t.Form; f != nil {
		if len(f.Fields) == 0 {
			return ErrNoFormFields
		}
		seen := make(map[string]struct{}, len(f.Fields))
		for _, name := range f.Fields {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				return ErrInvalidFormField
			}
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w: %q", ErrInvalidFormField, name)
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}

func validateDomainLock(domains []string) error {
	if len(domains) > MaxDomainLock {
		return ErrTooManyDomains
	}
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		key := strings.ToLower(strings.TrimSpace(d))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateDomain, d)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// validateFingerprint keeps the value safe to stamp into a script literal.
func validateFingerprint(fp string) error {
	if len(fp) > MaxFingerprintSize {
		return ErrInvalidFingerprint
	}
	for _, r := range fp {
		if !unicode.IsPrint(r) {
			return ErrInvalidFingerprint
		}
	}
	return nil
}

func validateTuning(t models.ProtectionTuning) error {
	if t.ScreenshotThreshold < 0 || t.BlurDuration < 0 || t.DevToolsThreshold < 0 ||
		t.HeartbeatInterval < 0 || t.ToastDuration < 0 {
		return ErrNegativeTuning
	}
	return nil
}
