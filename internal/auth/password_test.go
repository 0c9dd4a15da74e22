package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSHA256HashIsDeterministic(t *testing.T) {
	h := NewSHA256Hasher()

	a, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, _ := h.Hash("secret1")

	// Unsalted: the same input always produces the same digest. This is
	// the documented compatibility behavior, pinned here on purpose.
	if a != b {
		t.Errorf("Hash() not deterministic: %q != %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("Hash() length = %d, want 64 hex chars", len(a))
	}
}

func TestSHA256KnownDigest(t *testing.T) {
	h := NewSHA256Hasher()

	got, _ := h.Hash("secret1")
	// echo -n secret1 | sha256sum
	want := "5b11618c2e44027877d0cd0921ed166b9f176f50587fc91e7534dd2946db77d6"
	if got != want {
		t.Errorf("Hash(secret1) = %q, want %q", got, want)
	}
}

func TestSHA256Verify(t *testing.T) {
	h := NewSHA256Hasher()
	hash, _ := h.Hash("secret1")

	if err := h.Verify(hash, "secret1"); err != nil {
		t.Errorf("Verify() with correct password: %v", err)
	}
	if err := h.Verify(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with wrong password = %v, want ErrMismatch", err)
	}
}

func TestBcryptHashAndVerify(t *testing.T) {
	h := NewBcryptHasherForTest(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("Hash() = %q, want bcrypt format", hash)
	}

	if err := h.Verify(hash, "secret1"); err != nil {
		t.Errorf("Verify() with correct password: %v", err)
	}
	if err := h.Verify(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with wrong password = %v, want ErrMismatch", err)
	}
}

func TestBcryptHashesAreSalted(t *testing.T) {
	h := NewBcryptHasherForTest(bcrypt.MinCost)

	a, _ := h.Hash("secret1")
	b, _ := h.Hash("secret1")
	if a == b {
		t.Error("two bcrypt hashes of the same password should differ (random salt)")
	}
}

func TestBcryptRejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasherForTest(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("Hash() should reject passwords over 72 bytes")
	}
}
