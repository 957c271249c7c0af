package models

// PasswordHash is the stored form of a password: an Argon2id digest and the
// random salt it was computed with, both hex-encoded.
type PasswordHash struct {
	Hash string `json:"hash"`
	Salt string `json:"salt"`
}

// PasswordRule names a single password strength requirement.
type PasswordRule string

const (
	RuleMinLength PasswordRule = "min_length"
	RuleLowercase PasswordRule = "lowercase"
	RuleUppercase PasswordRule = "uppercase"
	RuleDigit     PasswordRule = "digit"
	RuleSymbol    PasswordRule = "symbol"
)

// PasswordViolation is one failed strength rule with a message suitable for
// showing next to the password field.
type PasswordViolation struct {
	Rule    PasswordRule `json:"rule"`
	Message string       `json:"message"`
}

// StrengthReport lists every rule a candidate password breaks.
// IsValid is true only when Violations is empty.
type StrengthReport struct {
	IsValid    bool                `json:"is_valid"`
	Violations []PasswordViolation `json:"violations"`
}
