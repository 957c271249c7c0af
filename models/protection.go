// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProtectionConfig selects which browser-side guards are installed into an
// exported page. It is a value object: the synthesizer reads it once per
// call and never keeps a reference.
type ProtectionConfig struct {
	BlockDevTools          bool `json:"block_dev_tools"`
	BlockRightClick        bool `json:"block_right_click"`
	BlockTextSelection     bool `json:"block_text_selection"`
	BlockPrint             bool `json:"block_print"`
	BlockKeyboardShortcuts bool `json:"block_keyboard_shortcuts"`
	NeuterConsole          bool `json:"neuter_console"`
	DetectScreenshots      bool `json:"detect_screenshots"`

	// WatchIntegrity turns on the heartbeat that checks the bundle marker node.
	WatchIntegrity bool `json:"watch_integrity"`

	// DomainLock lists hostnames the page may run on. Subdomains of an entry
	// are accepted too. Empty means no lock.
	DomainLock []string `json:"domain_lock,omitempty"`

	// UserFingerprint is stamped into the emitted script so leaked copies can
	// be traced back to the exporting account.
	UserFingerprint string `json:"user_fingerprint,omitempty"`

	Tuning ProtectionTuning `json:"tuning"`
}

// ProtectionTuning holds the timing and threshold knobs of the client guards.
// Zero values are replaced by [DefaultProtectionTuning] values.
type ProtectionTuning struct {
	// ScreenshotThreshold is the longest a page may stay hidden and still be
	// treated as an OS screenshot tool rather than a tab switch.
	ScreenshotThreshold time.Duration `json:"screenshot_threshold"`

	// BlurDuration is how long content stays blurred after a suspected capture.
	BlurDuration time.Duration `json:"blur_duration"`

	// DevToolsThreshold is the outer/inner window size delta in CSS pixels
	// above which docked developer tools are assumed open.
	DevToolsThreshold int `json:"dev_tools_threshold"`

	// HeartbeatInterval drives the single state-machine tick.
	HeartbeatInterval time.Duration `json:"heartbeat_interval"`

	// ToastDuration is how long a warning toast stays on screen.
	ToastDuration time.Duration `json:"toast_duration"`
}

// DefaultProtectionTuning returns the tuning used when a field is left zero.
func DefaultProtectionTuning() ProtectionTuning {
	return ProtectionTuning{
		ScreenshotThreshold: 100 * time.Millisecond,
		BlurDuration:        1500 * time.Millisecond,
		DevToolsThreshold:   160,
		HeartbeatInterval:   1000 * time.Millisecond,
		ToastDuration:       2500 * time.Millisecond,
	}
}

// WithDefaults returns a copy of t with zero fields filled from
// [DefaultProtectionTuning].
func (t ProtectionTuning) WithDefaults() ProtectionTuning {
	d := DefaultProtectionTuning()
	if t.ScreenshotThreshold == 0 {
		t.ScreenshotThreshold = d.ScreenshotThreshold
	}
	if t.BlurDuration == 0 {
		t.BlurDuration = d.BlurDuration
	}
	if t.DevToolsThreshold == 0 {
		t.DevToolsThreshold = d.DevToolsThreshold
	}
	if t.HeartbeatInterval == 0 {
		t.HeartbeatInterval = d.HeartbeatInterval
	}
	if t.ToastDuration == 0 {
		t.ToastDuration = d.ToastDuration
	}
	return t
}

// AnyGuard reports whether at least one runtime guard is enabled.
func (c ProtectionConfig) AnyGuard() bool {
	return c.BlockDevTools || c.BlockRightClick || c.BlockTextSelection ||
		c.BlockPrint || c.BlockKeyboardShortcuts || c.NeuterConsole ||
		c.DetectScreenshots
}
