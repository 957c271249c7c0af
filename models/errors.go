package models

import "errors"

var (
	// ErrUnknownTemplateKind is returned when TemplateOptions.Kind is not one
	// of the declared template kinds.
	ErrUnknownTemplateKind = errors.New("unknown template kind")

	// ErrTemplateOptionsMismatch is returned when the options member does not
	// match the declared kind, or more than one member is set.
	ErrTemplateOptionsMismatch = errors.New("template options do not match template kind")
)
