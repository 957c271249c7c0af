// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/obfuscator"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

// Options controls optional packaging steps.
type Options struct {
	// Obfuscate passes the guard script through the configured obfuscator.
	Obfuscate bool

	Obfuscator obfuscator.Options
}

// Packager builds [models.ProtectedPackage] bundles. It keeps no per-export
// state and may serve concurrent exports.
type Packager struct {
	synth  ScriptSynthesizer
	obf    obfuscator.Obfuscator
	opts   Options
	ids    IDGenerator
	nowF   func() time.Time
	logger *logger.Logger
}

// New returns a Packager issuing UUIDv7 export ids. obf may be nil, in which
// case the guard script is embedded as rendered.
func New(synth ScriptSynthesizer, obf obfuscator.Obfuscator, opts Options, log *logger.Logger) *Packager {
	return NewWith(synth, obf, opts, utils.NewUUIDGenerator(), time.Now, log)
}

// NewWith is New with an explicit id source and clock.
func NewWith(synth ScriptSynthesizer, obf obfuscator.Obfuscator, opts Options, ids IDGenerator, nowF func() time.Time, log *logger.Logger) *Packager {
	if log == nil {
		log = logger.Nop()
	}
	return &Packager{
		synth:  synth,
		obf:    obf,
		opts:   opts,
		ids:    ids,
		nowF:   nowF,
		logger: log,
	}
}

type composition struct {
	exportID   string
	createdAt  time.Time
	title      string
	marker     string
	domains    []string
	script     string
	obfuscated bool
	watchMs    int64
}

type sealed struct {
	key  string
	html payload
	css  payload
	js   *payload
}

// manifestVersion is bumped whenever the bundle layout changes.
const manifestVersion = 1

type manifest struct {
	Version    int                 `json:"version"`
	ExportID   string              `json:"export_id"`
	CreatedAt  time.Time           `json:"created_at"`
	Template   models.TemplateKind `json:"template"`
	Title      string              `json:"title"`
	Entry      string              `json:"entry"`
	Files      []string            `json:"files"`
	Guards     []string            `json:"guards"`
	DomainLock []string            `json:"domain_lock,omitempty"`
	Watch      bool                `json:"watch"`
	Obfuscated bool                `json:"obfuscated"`
}

// Package runs COMPOSE, ENCRYPT and EMBED for req. A failing stage is
// reported as a *StageError. Obfuscation failures never fail the export.
func (p *Packager) Package(ctx context.Context, req models.ExportRequest) (models.ProtectedPackage, error) {
	c, err := p.compose(ctx, req)
	if err != nil {
		return models.ProtectedPackage{}, &StageError{Stage: StageCompose, Err: err}
	}

	s := p.encrypt(req, c)

	pkg, err := p.embed(req, c, s)
	if err != nil {
		return models.ProtectedPackage{}, &StageError{Stage: StageEmbed, Err: err}
	}

	p.logger.Info().
		Str("export_id", c.exportID).
		Int64("owner_id", req.OwnerID).
		Int("domains", len(c.domains)).
		Bool("obfuscated", c.obfuscated).
		Msg("export packaged")

	return pkg, nil
}

func (p *Packager) compose(ctx context.Context, req models.ExportRequest) (composition, error) {
	if err := ctx.Err(); err != nil {
		return composition{}, err
	}
	if strings.TrimSpace(req.HTML) == "" {
		return composition{}, ErrEmptyContent
	}
	for _, part := range []string{req.HTML, req.CSS, req.JS} {
		if !utf8.ValidString(part) {
			return composition{}, fmt.Errorf("%w: content is not valid UTF-8", ErrInvalidRequest)
		}
	}
	if err := req.Template.Validate(); err != nil {
		return composition{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	domains, err := NormaliseDomains(req.Protection.DomainLock)
	if err != nil {
		return composition{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	heartbeat := req.Protection.Tuning.WithDefaults().HeartbeatInterval
	if req.Protection.WatchIntegrity && heartbeat < time.Millisecond {
		return composition{}, fmt.Errorf("%w: watch interval must be at least 1ms", ErrInvalidRequest)
	}

	script, err := p.synth.Synthesize(req.Protection)
	if err != nil {
		return composition{}, fmt.Errorf("render guard script: %w", err)
	}

	exportID := p.ids.Generate()
	c := composition{
		exportID:  exportID,
		createdAt: p.nowF().UTC(),
		title:     req.Template.Title(),
		marker:    fmt.Sprintf("pg-%08x", Checksum([]byte(exportID))),
		domains:   domains,
		watchMs:   heartbeat.Milliseconds(),
	}
	c.script, c.obfuscated = p.obfuscate(ctx, exportID, script)

	return c, nil
}

// obfuscate returns the transformed script, or the input unchanged with a
// warning when the obfuscator fails.
func (p *Packager) obfuscate(ctx context.Context, exportID, script string) (string, bool) {
	if script == "" || !p.opts.Obfuscate || p.obf == nil {
		return script, false
	}

	out, err := p.obf.Obfuscate(ctx, script, p.opts.Obfuscator)
	if err != nil {
		p.logger.Warn().Err(err).Str("export_id", exportID).Msg("guard script obfuscation failed, embedding it unobfuscated")
		return script, false
	}
	return out, true
}

func (p *Packager) encrypt(req models.ExportRequest, c composition) sealed {
	key := DeriveKey(req.OwnerID, c.createdAt)
	seal := func(s string) payload {
		b := []byte(s)
		return payload{Data: Encode(b, key), Sum: Checksum(b)}
	}

	s := sealed{key: key, html: seal(req.HTML), css: seal(req.CSS)}
	if req.JS != "" {
		js := seal(req.JS)
		s.js = &js
	}
	return s
}

func (p *Packager) embed(req models.ExportRequest, c composition, s sealed) (models.ProtectedPackage, error) {
	bootstrap, err := renderBootstrap(bootstrapConfig{
		Key:     s.key,
		HTML:    s.html,
		CSS:     s.css,
		JS:      s.js,
		Domains: c.domains,
		Marker:  c.marker,
		Watch:   req.Protection.WatchIntegrity,
		WatchMs: c.watchMs,
	})
	if err != nil {
		return models.ProtectedPackage{}, err
	}

	entry := renderEntry(c.title, c.marker, c.exportID, c.script, bootstrap)
	style := []byte(decoyStyleSheet)

	man, err := json.MarshalIndent(manifest{
		Version:    manifestVersion,
		ExportID:   c.exportID,
		CreatedAt:  c.createdAt,
		Template:   req.Template.Kind,
		Title:      c.title,
		Entry:      EntryFile,
		Files:      []string{EntryFile, StyleFile},
		Guards:     enabledGuards(req.Protection),
		DomainLock: c.domains,
		Watch:      req.Protection.WatchIntegrity,
		Obfuscated: c.obfuscated,
	}, "", "  ")
	if err != nil {
		return models.ProtectedPackage{}, fmt.Errorf("encode manifest: %w", err)
	}

	files := map[string][]byte{
		EntryFile:    entry,
		StyleFile:    style,
		ManifestFile: man,
	}

	return models.ProtectedPackage{
		ExportID:      c.exportID,
		EntryHTML:     entry,
		StyleSheet:    style,
		ManifestFiles: files,
	}, nil
}

func enabledGuards(cfg models.ProtectionConfig) []string {
	flags := []struct {
		on   bool
		name string
	}{
		{cfg.BlockDevTools, "devtools"},
		{cfg.BlockRightClick, "right_click"},
		{cfg.BlockTextSelection, "text_selection"},
		{cfg.BlockPrint, "print"},
		{cfg.BlockKeyboardShortcuts, "keyboard_shortcuts"},
		{cfg.NeuterConsole, "console"},
		{cfg.DetectScreenshots, "screenshots"},
	}

	guards := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.on {
			guards = append(guards, f.name)
		}
	}
	return guards
}
