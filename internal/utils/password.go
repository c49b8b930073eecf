package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the plaintext does
// not match the stored digest. Any other error from CheckPassword indicates
// a malformed digest or an internal failure, never a plain mismatch.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword computes a salted bcrypt digest of plaintext using the given
// work factor.
//
// The work factor is a tunable cost parameter: each increment doubles the
// hashing time. An out-of-range cost surfaces as an error rather than being
// silently clamped.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword compares plaintext against a stored bcrypt digest.
//
// Returns nil on a match, ErrPasswordMismatch when the password is wrong,
// and a wrapped error when the digest is malformed. bcrypt's comparison is
// resistant to timing attacks; that property is the library's, not ours.
func CheckPassword(plaintext, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("error comparing password digest: %w", err)
}
