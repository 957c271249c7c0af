package crypto

import (
	"errors"
	"net/url"
	"testing"
	"time"
)

var rfcSecret = []byte("12345678901234567890")

func TestGenerateCode_KnownVectors(t *testing.T) {
	o := NewOTP()

	// RFC 4226 appendix D and RFC 6238 appendix B, truncated to six digits.
	vectors := []struct {
		bucket uint64
		want   string
	}{
		{0, "755224"},
		{1, "287082"},
		{Bucket(time.Unix(1111111109, 0)), "081804"},
		{Bucket(time.Unix(1234567890, 0)), "005924"},
	}

	for _, v := range vectors {
		if got := o.GenerateCode(rfcSecret, v.bucket); got != v.want {
			t.Fatalf("GenerateCode(bucket %d) = %s, want %s", v.bucket, got, v.want)
		}
	}
}

func TestVerifyCode_SameBucket(t *testing.T) {
	start := time.Unix(1_700_000_010, 0) // 10 s into its bucket
	now := start
	o := NewOTPWithClock(func() time.Time { return now })

	code := o.GenerateCode(rfcSecret, Bucket(start))

	now = start.Add(15 * time.Second)
	if !o.VerifyCode(rfcSecret, code) {
		t.Fatalf("expected code to verify within the same bucket")
	}
}

func TestVerifyCode_DifferentBucketFails(t *testing.T) {
	start := time.Unix(1_700_000_010, 0)
	now := start
	o := NewOTPWithClock(func() time.Time { return now })

	code := o.GenerateCode(rfcSecret, Bucket(start))

	// No skew window: the neighbouring buckets reject the code.
	for _, shift := range []time.Duration{OTPPeriod, -OTPPeriod, 5 * time.Minute} {
		now = start.Add(shift)
		if o.VerifyCode(rfcSecret, code) {
			t.Fatalf("expected code to fail %v away", shift)
		}
	}
}

func TestVerifyCode_RejectsMalformed(t *testing.T) {
	o := NewOTP()

	for _, code := range []string{"", "12345", "1234567", "abcdef"} {
		if o.VerifyCode(rfcSecret, code) {
			t.Fatalf("VerifyCode(%q) = true", code)
		}
	}
}

func TestEnroll_SecretAndURI(t *testing.T) {
	o := NewOTP()

	s1, err := o.Enroll("PageGuard", "alice@example.com")
	if err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
	s2, _ := o.Enroll("PageGuard", "alice@example.com")
	if s1.Secret == s2.Secret {
		t.Fatalf("expected distinct secrets")
	}

	raw, err := DecodeSecret(s1.Secret)
	if err != nil {
		t.Fatalf("DecodeSecret error: %v", err)
	}
	if len(raw) != otpSecretSize {
		t.Fatalf("secret length = %d, want %d", len(raw), otpSecretSize)
	}

	u, err := url.Parse(s1.URI)
	if err != nil {
		t.Fatalf("parse uri: %v", err)
	}
	q := u.Query()
	if u.Scheme != "otpauth" || u.Host != "totp" || q.Get("secret") != s1.Secret {
		t.Fatalf("unexpected uri %q", s1.URI)
	}
	if q.Get("period") != "30" || q.Get("digits") != "6" || q.Get("algorithm") != "SHA1" {
		t.Fatalf("unexpected code parameters in %q", s1.URI)
	}

	// The enrolled secret drives the same codes as the verifier.
	now := time.Unix(1_700_000_010, 0)
	clocked := NewOTPWithClock(func() time.Time { return now })
	if !clocked.VerifyCode(raw, clocked.GenerateCode(raw, Bucket(now))) {
		t.Fatalf("expected a code for the enrolled secret to verify")
	}
}

func TestEnroll_RequiresAccount(t *testing.T) {
	for _, tc := range [][2]string{{"PageGuard", ""}, {"", "alice"}} {
		if _, err := NewOTP().Enroll(tc[0], tc[1]); !errors.Is(err, ErrValidation) {
			t.Fatalf("Enroll(%q, %q): err = %v, want ErrValidation", tc[0], tc[1], err)
		}
	}
}

func TestDecodeSecret_Invalid(t *testing.T) {
	for _, s := range []string{"", "!!!!", "0189"} {
		if _, err := DecodeSecret(s); !errors.Is(err, ErrValidation) {
			t.Fatalf("DecodeSecret(%q): err = %v, want ErrValidation", s, err)
		}
	}
}
