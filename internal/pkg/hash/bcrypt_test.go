package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	hashed, err := h.Hash("Secr3t!pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !strings.HasPrefix(string(hashed), "$2") {
		t.Fatalf("expected bcrypt format, got %q", hashed)
	}

	if !h.Verify(string(hashed), "Secr3t!pass") {
		t.Error("verify should accept the original password")
	}
	if h.Verify(string(hashed), "wrong-password") {
		t.Error("verify should reject a wrong password")
	}
}

func TestBcryptHashIsSalted(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if string(first) == string(second) {
		t.Error("two hashes of the same password must differ (salt)")
	}
}

func TestBcryptPepper(t *testing.T) {
	withPepper := NewBcrypt(bcrypt.MinCost, "pepper-a")
	without := NewBcrypt(bcrypt.MinCost, "")

	hashed, err := withPepper.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if without.Verify(string(hashed), "password123") {
		t.Error("hash made with a pepper must not verify without it")
	}
	if !withPepper.Verify(string(hashed), "password123") {
		t.Error("hash must verify with the same pepper")
	}
}

func TestBcryptCostFallback(t *testing.T) {
	h := NewBcrypt(99, "")
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default %d", h.cost, bcrypt.DefaultCost)
	}
}
