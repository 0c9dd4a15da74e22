// Package auth — password hashing.
//
// Two schemes are provided behind one interface:
//
//   - SHA256Hasher is what earlier releases stored: a single unsalted
//     SHA-256 digest, hex-encoded, compared by equality. This is a known
//     security defect (fast hash, no salt, no constant-time compare) kept
//     only so existing databases keep authenticating. Do not pick it for
//     anything new.
//   - BcryptHasher is the correct choice for new databases. bcrypt salts
//     automatically, embeds the salt and cost in its output, and compares
//     in constant time.
//
// The two produce incompatible hash strings, so the scheme is chosen once
// per database via configuration and never mixed.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the password does not match the
// stored hash. Callers translate it to their own not-found/denied error;
// it deliberately carries no detail.
var ErrMismatch = errors.New("auth: password mismatch")

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns nil on a match and ErrMismatch on a clean mismatch.
	Verify(hash, plaintext string) error
}

// SHA256Hasher is the compatibility hasher. See the package comment for why
// it should not be used for new data.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

func (*SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(hash, plaintext string) error {
	computed, _ := h.Hash(plaintext)
	// Plain equality. Not timing-safe.
	if computed != hash {
		return ErrMismatch
	}
	return nil
}

// defaultCost is the bcrypt work factor for new hashes. Cost 12 takes
// roughly 250ms on current hardware — slow enough to hurt brute force,
// fast enough for an interactive login form.
const defaultCost = 12

// BcryptHasher hashes with bcrypt at a configurable cost.
//
// The cost is injectable so tests can run at bcrypt.MinCost instead of
// paying ~250ms per hash.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: defaultCost}
}

// NewBcryptHasherForTest creates a BcryptHasher with the given cost. Use
// bcrypt.MinCost in tests; never in production.
func NewBcryptHasherForTest(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (b *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead.
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

func (b *BcryptHasher) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
