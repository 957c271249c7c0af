// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TemplateKind is the closed set of page templates an export can carry.
type TemplateKind string

const (
	TemplateLanding TemplateKind = "landing"
	TemplateGame    TemplateKind = "game"
	TemplateForm    TemplateKind = "form"
)

// TemplateOptions is a tagged variant: exactly the member matching Kind is
// expected to be set. Anything else is rejected by [TemplateOptions.Validate].
type TemplateOptions struct {
	Kind    TemplateKind    `json:"kind"`
	Landing *LandingOptions `json:"landing,omitempty"`
	Game    *GameOptions    `json:"game,omitempty"`
	Form    *FormOptions    `json:"form,omitempty"`
}

// LandingOptions configures a plain landing page.
type LandingOptions struct {
	Title string `json:"title"`
}

// GameOptions configures a page with an interactive prize widget.
type GameOptions struct {
	Title       string   `json:"title"`
	GameType    string   `json:"game_type"`
	Prizes      []string `json:"prizes"`
	MaxAttempts int      `json:"max_attempts"`
}

// FormOptions configures a lead-capture form page.
type FormOptions struct {
	Title        string   `json:"title"`
	Fields       []string `json:"fields"`
	CollectsCard bool     `json:"collects_card"`
}

// Validate checks that the member selected by Kind is present and that no
// other member is set.
func (o TemplateOptions) Validate() error {
	set := 0
	for _, present := range []bool{o.Landing != nil, o.Game != nil, o.Form != nil} {
		if present {
			set++
		}
	}

	switch o.Kind {
	case TemplateLanding:
		if o.Landing == nil || set != 1 {
			return ErrTemplateOptionsMismatch
		}
	case TemplateGame:
		if o.Game == nil || set != 1 {
			return ErrTemplateOptionsMismatch
		}
	case TemplateForm:
		if o.Form == nil || set != 1 {
			return ErrTemplateOptionsMismatch
		}
	default:
		return ErrUnknownTemplateKind
	}
	return nil
}

// Title returns the page title of whichever variant is set.
func (o TemplateOptions) Title() string {
	switch o.Kind {
	case TemplateLanding:
		if o.Landing != nil {
			return o.Landing.Title
		}
	case TemplateGame:
		if o.Game != nil {
			return o.Game.Title
		}
	case TemplateForm:
		if o.Form != nil {
			return o.Form.Title
		}
	}
	return ""
}

// ExportRequest is everything the packager needs to build one bundle from a
// finished page.
type ExportRequest struct {
	OwnerID    int64            `json:"-"`
	HTML       string           `json:"html"`
	CSS        string           `json:"css"`
	JS         string           `json:"js,omitempty"`
	Template   TemplateOptions  `json:"template"`
	Protection ProtectionConfig `json:"protection"`
}

// ProtectedPackage is a finished export bundle. It is never updated: a new
// export builds a new package under a new key.
type ProtectedPackage struct {
	ExportID   string
	EntryHTML  []byte
	StyleSheet []byte

	// ManifestFiles maps archive paths to file contents, including the two
	// buffers above.
	ManifestFiles map[string][]byte
}
