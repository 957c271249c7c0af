package models

// EncryptRequest asks the vault to seal one value. An empty Context selects
// the vault default key.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Context   string `json:"context,omitempty"`
}

// DecryptResponse carries an opened value back to the caller.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// MaskRequest asks for a display-safe rendering of plaintext.
type MaskRequest struct {
	Plaintext string   `json:"plaintext"`
	Kind      MaskKind `json:"kind"`
}

// MaskResponse is the masked view.
type MaskResponse struct {
	Masked string `json:"masked"`
}

// NumberRequest carries a card or bank account number.
type NumberRequest struct {
	Number string `json:"number"`
}

// PasswordRequest carries a candidate password.
type PasswordRequest struct {
	Password string `json:"password"`
}

// VerifyPasswordRequest checks a password against a stored hash.
type VerifyPasswordRequest struct {
	Password string       `json:"password"`
	Hash     PasswordHash `json:"hash"`
}

// VerifyResponse reports a verification result.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// OTPSecret is a freshly generated shared secret, base32 without padding,
// with an otpauth:// URI for authenticator apps.
type OTPSecret struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
}

// OTPEnrollRequest names the account a new secret is issued for.
type OTPEnrollRequest struct {
	Account string `json:"account"`
}

// VerifyOTPRequest checks a code against a base32 secret.
type VerifyOTPRequest struct {
	Secret string `json:"secret"`
	Code   string `json:"code"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version,omitempty"`
	BuildDate    string `json:"build_date,omitempty"`
	BuildCommit  string `json:"build_commit,omitempty"`
}
