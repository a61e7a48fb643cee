package otp

import (
	"strings"
	"testing"
	"time"

	libotp "github.com/pquerna/otp"
)

func newTestTOTP(t *testing.T) *TOTP {
	t.Helper()
	return NewTOTP("TwoGate", 30, 1, libotp.DigitsSix)
}

func TestGenerate(t *testing.T) {
	o := newTestTOTP(t)

	secret, uri, err := o.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// 20 random bytes => 32 base32 characters.
	if len(secret) != 32 {
		t.Errorf("secret length = %d, want 32", len(secret))
	}
	if strings.ToUpper(secret) != secret {
		t.Errorf("secret %q is not canonical base32", secret)
	}
	if !strings.HasPrefix(uri, "otpauth://totp/") {
		t.Errorf("uri %q is not an otpauth totp uri", uri)
	}
	if !strings.Contains(uri, "TwoGate") || !strings.Contains(uri, "alice") {
		t.Errorf("uri %q is missing issuer or account label", uri)
	}
	if !strings.Contains(uri, secret) {
		t.Errorf("uri %q does not embed the secret", uri)
	}
}

func TestGenerateSecretsAreUnique(t *testing.T) {
	o := newTestTOTP(t)

	first, _, err := o.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, _, err := o.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if first == second {
		t.Error("two generated secrets must not collide")
	}
}

func TestValidateSkewWindow(t *testing.T) {
	o := newTestTOTP(t)

	secret, _, err := o.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	now := time.Unix(1_700_000_000, 0)
	code, err := o.GenerateCode(secret, now)
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	cases := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"current step", 0, true},
		{"one step behind", -30 * time.Second, true},
		{"one step ahead", 30 * time.Second, true},
		{"three steps behind", -90 * time.Second, false},
		{"three steps ahead", 90 * time.Second, false},
		{"far future", 10 * time.Minute, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := o.Validate(code, secret, now.Add(tc.offset)); got != tc.want {
				t.Errorf("Validate at offset %v = %v, want %v", tc.offset, got, tc.want)
			}
		})
	}
}

func TestValidateRejectsMalformedCodes(t *testing.T) {
	o := newTestTOTP(t)

	secret, _, err := o.Generate("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	now := time.Now()
	for _, code := range []string{"", "12345", "1234567", "abcdef", "12 456", "12345x"} {
		if o.Validate(code, secret, now) {
			t.Errorf("Validate(%q) accepted a malformed code", code)
		}
	}
}

func TestIsWellFormed(t *testing.T) {
	o := newTestTOTP(t)

	if !o.IsWellFormed("012345") {
		t.Error("six digits should be well formed")
	}
	for _, code := range []string{"01234", "0123456", "01234a", ""} {
		if o.IsWellFormed(code) {
			t.Errorf("IsWellFormed(%q) = true, want false", code)
		}
	}
}

func TestDefaults(t *testing.T) {
	o := NewTOTP("TwoGate", 0, 0, libotp.Digits(11))

	if o.period != 30 {
		t.Errorf("period = %d, want 30", o.period)
	}
	if o.skew != 1 {
		t.Errorf("skew = %d, want 1", o.skew)
	}
	if o.digits != libotp.DigitsSix {
		t.Errorf("digits = %v, want six", o.digits)
	}
}
