// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import "github.com/MKhiriev/go-page-guard/models"

// ScriptSynthesizer renders the guard script for a protection config.
type ScriptSynthesizer interface {
	Synthesize(cfg models.ProtectionConfig) (string, error)
}

// IDGenerator issues export ids.
type IDGenerator interface {
	Generate() string
}
