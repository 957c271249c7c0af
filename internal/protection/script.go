// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protection

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-page-guard/models"
)

// scriptConfig is the JSON object bound to `cfg` inside the emitted script.
type scriptConfig struct {
	ScreenshotMs int64  `json:"screenshotMs"`
	BlurMs       int64  `json:"blurMs"`
	DevtoolsPx   int    `json:"devtoolsPx"`
	HeartbeatMs  int64  `json:"heartbeatMs"`
	ToastMs      int64  `json:"toastMs"`
	Fingerprint  string `json:"fingerprint,omitempty"`
}

// Synthesizer renders guard scripts. It holds no state and is safe for
// concurrent use.
type Synthesizer struct{}

// NewSynthesizer returns a [Synthesizer].
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize implements the packager's script source.
func (s *Synthesizer) Synthesize(cfg models.ProtectionConfig) (string, error) {
	return Synthesize(cfg)
}

// Synthesize renders the guard script for cfg. It returns an empty string when
// no guard is enabled and no fingerprint is set.
func Synthesize(cfg models.ProtectionConfig) (string, error) {
	if !cfg.AnyGuard() && cfg.UserFingerprint == "" {
		return "", nil
	}

	sc, err := newScriptConfig(cfg)
	if err != nil {
		return "", err
	}
	// encoding/json escapes <, > and &, so the literal is safe inside <script>.
	cfgJSON, err := json.Marshal(sc)
	if err != nil {
		return "", fmt.Errorf("encode script config: %w", err)
	}

	usesMachine := cfg.DetectScreenshots || cfg.BlockDevTools

	var b strings.Builder
	b.WriteString("(function (root) {\n\"use strict\";\n")
	b.WriteString("var doc = root.document;\nif (!doc) { return; }\n")
	b.WriteString("var cfg = ")
	b.Write(cfgJSON)
	b.WriteString(";\n")
	b.WriteString(helpersJS)

	if sc.Fingerprint != "" {
		b.WriteString(fingerprintJS)
	}
	if usesMachine {
		b.WriteString(machineJS)
	}

	blocks := []struct {
		enabled bool
		src     string
	}{
		{cfg.BlockRightClick, rightClickJS},
		{cfg.BlockTextSelection, textSelectionJS},
		{cfg.BlockPrint, printJS},
		{cfg.BlockKeyboardShortcuts, shortcutsJS},
		{cfg.BlockDevTools, devtoolsJS},
		{cfg.NeuterConsole, consoleJS},
		{cfg.DetectScreenshots, screenshotJS},
	}
	for _, block := range blocks {
		if block.enabled {
			b.WriteString(block.src)
		}
	}

	if usesMachine {
		b.WriteString(heartbeatJS)
	}
	b.WriteString("})(typeof window !== \"undefined\" ? window : this);\n")

	return b.String(), nil
}

func newScriptConfig(cfg models.ProtectionConfig) (scriptConfig, error) {
	t := cfg.Tuning.WithDefaults()

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"screenshot threshold", t.ScreenshotThreshold},
		{"blur duration", t.BlurDuration},
		{"heartbeat interval", t.HeartbeatInterval},
		{"toast duration", t.ToastDuration},
	}
	for _, d := range durations {
		if d.value < time.Millisecond {
			return scriptConfig{}, fmt.Errorf("%w: %s must be at least 1ms, got %s", ErrInvalidTuning, d.name, d.value)
		}
	}
	if t.DevToolsThreshold <= 0 {
		return scriptConfig{}, fmt.Errorf("%w: devtools threshold must be positive, got %d", ErrInvalidTuning, t.DevToolsThreshold)
	}

	return scriptConfig{
		ScreenshotMs: t.ScreenshotThreshold.Milliseconds(),
		BlurMs:       t.BlurDuration.Milliseconds(),
		DevtoolsPx:   t.DevToolsThreshold,
		HeartbeatMs:  t.HeartbeatInterval.Milliseconds(),
		ToastMs:      t.ToastDuration.Milliseconds(),
		Fingerprint:  strings.TrimSpace(cfg.UserFingerprint),
	}, nil
}
