package mfa

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("key: %v", err)
	}
	return key
}

func TestAESGCMRoundTrip(t *testing.T) {
	enc := NewAESGCMEncryptor(StaticKeyProvider{KeyBytes: testKey(t)})
	scope := Scope{UserID: 42, Purpose: PurposeOTPSeed}

	plaintext := []byte("JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP")
	ciphertext, err := enc.Encrypt(plaintext, scope)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(ciphertext, plaintext) {
		t.Fatal("ciphertext leaks the plaintext")
	}

	got, err := enc.Decrypt(ciphertext, scope)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func TestAESGCMScopeMismatch(t *testing.T) {
	enc := NewAESGCMEncryptor(StaticKeyProvider{KeyBytes: testKey(t)})

	ciphertext, err := enc.Encrypt([]byte("seed"), Scope{UserID: 1, Purpose: PurposeOTPSeed})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := enc.Decrypt(ciphertext, Scope{UserID: 2, Purpose: PurposeOTPSeed}); !errors.Is(err, ErrDecryptFailed) {
		t.Fatalf("decrypt with other user scope: err = %v, want ErrDecryptFailed", err)
	}
}

func TestAESGCMRejectsBadInput(t *testing.T) {
	enc := NewAESGCMEncryptor(StaticKeyProvider{KeyBytes: testKey(t)})
	scope := Scope{UserID: 1, Purpose: PurposeOTPSeed}

	if _, err := enc.Encrypt(nil, scope); !errors.Is(err, ErrPlaintextEmpty) {
		t.Errorf("encrypt empty: err = %v, want ErrPlaintextEmpty", err)
	}
	if _, err := enc.Decrypt([]byte{0, 1, 2}, scope); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("decrypt short: err = %v, want ErrCiphertextTooShort", err)
	}

	short := NewAESGCMEncryptor(StaticKeyProvider{KeyBytes: []byte("too-short")})
	if _, err := short.Encrypt([]byte("seed"), scope); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("encrypt with short key: err = %v, want ErrInvalidKeyLength", err)
	}
}
