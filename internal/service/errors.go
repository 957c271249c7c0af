package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", crypto.ErrValidation)
	ErrUnknownMaskKind     = fmt.Errorf("%w: unknown mask kind", crypto.ErrValidation)

	// ErrNoOwner is returned when an operation needs an authenticated user
	// and the context carries none.
	ErrNoOwner = errors.New("no authenticated user in context")
)

// WeakPasswordError is returned by HashPassword for a password that breaks
// at least one strength rule. It matches crypto.ErrValidation.
type WeakPasswordError struct {
	Report models.StrengthReport
}

func (e *WeakPasswordError) Error() string {
	rules := make([]string, 0, len(e.Report.Violations))
	for _, v := range e.Report.Violations {
		rules = append(rules, string(v.Rule))
	}
	return "weak password: " + strings.Join(rules, ", ")
}

func (e *WeakPasswordError) Unwrap() error {
	return crypto.ErrValidation
}
