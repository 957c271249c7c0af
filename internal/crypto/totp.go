// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-page-guard/models"
	pqotp "github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// OTPPeriod is the length of one code time bucket.
	OTPPeriod = 30 * time.Second

	// OTPDigits is the length of a code.
	OTPDigits = 6

	otpSecretSize = 20
)

var otpEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// otpOpts fixes the code parameters. Skew 0 accepts the current bucket only.
var otpOpts = totp.ValidateOpts{
	Period:    uint(OTPPeriod / time.Second),
	Skew:      0,
	Digits:    pqotp.DigitsSix,
	Algorithm: pqotp.AlgorithmSHA1,
}

// otp is the private implementation of [OTP] on top of pquerna/otp.
type otp struct {
	nowF func() time.Time
}

// NewOTP returns an [OTP] driven by the wall clock.
func NewOTP() OTP {
	return &otp{nowF: time.Now}
}

// NewOTPWithClock returns an [OTP] reading the current time from nowF.
func NewOTPWithClock(nowF func() time.Time) OTP {
	return &otp{nowF: nowF}
}

// Bucket returns the 30 s time bucket containing t.
func Bucket(t time.Time) uint64 {
	return uint64(t.Unix()) / uint64(OTPPeriod/time.Second)
}

// Enroll implements [OTP]. The secret is 20 random bytes, base32 without
// padding.
func (o *otp) Enroll(issuer, account string) (models.OTPSecret, error) {
	if issuer == "" || account == "" {
		return models.OTPSecret{}, fmt.Errorf("%w: otp issuer and account are required", ErrValidation)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		Period:      otpOpts.Period,
		SecretSize:  otpSecretSize,
		Digits:      otpOpts.Digits,
		Algorithm:   otpOpts.Algorithm,
	})
	if err != nil {
		return models.OTPSecret{}, fmt.Errorf("generate otp secret: %w", err)
	}

	return models.OTPSecret{Secret: key.Secret(), URI: key.URL()}, nil
}

// GenerateCode implements [OTP].
func (o *otp) GenerateCode(secret []byte, bucket uint64) string {
	at := time.Unix(int64(bucket)*int64(OTPPeriod/time.Second), 0).UTC()
	code, err := totp.GenerateCodeCustom(otpEncoding.EncodeToString(secret), at, otpOpts)
	if err != nil {
		return ""
	}
	return code
}

// VerifyCode implements [OTP]. Only the current bucket is accepted; codes
// from the previous or next bucket fail.
func (o *otp) VerifyCode(secret []byte, code string) bool {
	if len(code) != OTPDigits {
		return false
	}
	ok, err := totp.ValidateCustom(code, otpEncoding.EncodeToString(secret), o.nowF().UTC(), otpOpts)
	return err == nil && ok
}

// DecodeSecret parses a base32 secret as returned by Enroll. Case and
// surrounding spaces are ignored.
func DecodeSecret(secret string) ([]byte, error) {
	raw, err := otpEncoding.DecodeString(strings.ToUpper(strings.TrimSpace(secret)))
	if err != nil || len(raw) == 0 {
		return nil, fmt.Errorf("%w: otp secret is not valid base32", ErrValidation)
	}
	return raw, nil
}
