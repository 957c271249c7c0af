package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidField is wrapped by every rule violation reported by this
// package.
var ErrInvalidField = errors.New("invalid field")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrContentTooLarge     = fmt.Errorf("%w: page content is too large", ErrInvalidField)
	ErrTitleTooLong        = fmt.Errorf("%w: title is too long", ErrInvalidField)
	ErrNoPrizes            = fmt.Errorf("%w: game needs at least one prize", ErrInvalidField)
	ErrBlankPrize          = fmt.Errorf("%w: prize cannot be blank", ErrInvalidField)
	ErrInvalidGameAttempts = fmt.Errorf("%w: game max attempts out of range", ErrInvalidField)
	ErrNoFormFields        = fmt.Errorf("%w: form needs at least one field", ErrInvalidField)
	ErrInvalidFormField    = fmt.Errorf("%w: form field names must be non-blank and unique", ErrInvalidField)
	ErrTooManyDomains      = fmt.Errorf("%w: too many domain lock entries", ErrInvalidField)
	ErrDuplicateDomain     = fmt.Errorf("%w: duplicate domain lock entry", ErrInvalidField)
	ErrInvalidFingerprint  = fmt.Errorf("%w: fingerprint must be printable and short", ErrInvalidField)
	ErrNegativeTuning      = fmt.Errorf("%w: tuning values cannot be negative", ErrInvalidField)
)
