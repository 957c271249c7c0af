// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/store"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

// RedactedValue replaces context values that look like card or account
// numbers.
const RedactedValue = "***REDACTED***"

// sensitiveKeyParts are substrings of context keys that are dropped.
var sensitiveKeyParts = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"api_key",
	"apikey",
	"authorization",
	"plaintext",
	"master",
}

// sensitiveKeyWords are whole words of context keys that are dropped.
var sensitiveKeyWords = map[string]struct{}{
	"pin":    {},
	"cvv":    {},
	"cvc":    {},
	"otp":    {},
	"iban":   {},
	"pan":    {},
	"ssn":    {},
	"number": {},
}

var (
	keyWordSplit  = regexp.MustCompile(`[^a-z0-9]+`)
	longDigitsRun = regexp.MustCompile(`\d[\d -]{10,}\d`)
)

// IDGenerator produces unique audit entry ids.
type IDGenerator interface {
	Generate() string
}

// AuditBuilder assembles audit entries with a server-side id and UTC
// timestamp.
type AuditBuilder struct {
	ids  IDGenerator
	nowF func() time.Time
}

// NewAuditBuilder returns an [AuditBuilder] with UUIDv7 ids and wall clock
// timestamps.
func NewAuditBuilder() *AuditBuilder {
	return &AuditBuilder{ids: utils.NewUUIDGenerator(), nowF: time.Now}
}

// NewAuditBuilderWith is NewAuditBuilder with explicit collaborators.
func NewAuditBuilderWith(ids IDGenerator, nowF func() time.Time) *AuditBuilder {
	return &AuditBuilder{ids: ids, nowF: nowF}
}

// Build returns an immutable entry. Any caller-supplied timestamp is
// ignored; sensitive context keys are dropped and long digit runs in
// values are redacted.
func (b *AuditBuilder) Build(fields models.AuditFields) models.AuditLogEntry {
	fields.Context = ScrubContext(fields.Context)
	return models.NewAuditLogEntry(b.ids.Generate(), b.nowF().UTC(), fields)
}

var defaultAuditBuilder = NewAuditBuilder()

// NewAuditEntry builds an entry with the default [AuditBuilder].
func NewAuditEntry(fields models.AuditFields) models.AuditLogEntry {
	return defaultAuditBuilder.Build(fields)
}

// ScrubContext returns a copy of ctx without sensitive keys. It returns nil
// for an empty map.
func ScrubContext(ctx map[string]string) map[string]string {
	if len(ctx) == 0 {
		return nil
	}

	out := make(map[string]string, len(ctx))
	for k, v := range ctx {
		if isSensitiveKey(k) {
			continue
		}
		out[k] = longDigitsRun.ReplaceAllString(v, RedactedValue)
	}
	return out
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, part := range sensitiveKeyParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	for _, word := range keyWordSplit.Split(lower, -1) {
		if _, ok := sensitiveKeyWords[word]; ok {
			return true
		}
	}
	return false
}

// AuditRecorder builds entries and persists them. Persistence is best
// effort: a failed write is logged and never reaches the caller.
type AuditRecorder struct {
	repo    store.AuditRepository
	builder *AuditBuilder
	logger  *logger.Logger
}

// NewAuditRecorder returns an [AuditRecorder] writing through repo. A nil
// repo turns recording into logging only.
func NewAuditRecorder(repo store.AuditRepository, builder *AuditBuilder, log *logger.Logger) *AuditRecorder {
	if builder == nil {
		builder = NewAuditBuilder()
	}
	return &AuditRecorder{repo: repo, builder: builder, logger: log}
}

// Record builds an entry from fields, persists it and returns it.
func (r *AuditRecorder) Record(ctx context.Context, fields models.AuditFields) models.AuditLogEntry {
	entry := r.builder.Build(fields)

	r.logger.Info().
		Str("audit_id", entry.ID()).
		Str("action", entry.Action()).
		Str("resource", entry.Resource()).
		Str("outcome", string(entry.Outcome())).
		Msg("audit event")

	if r.repo == nil {
		return entry
	}
	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Err(err).
			Str("audit_id", entry.ID()).
			Str("action", entry.Action()).
			Msg("failed to persist audit entry")
	}

	return entry
}
