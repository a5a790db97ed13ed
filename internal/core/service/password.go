package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// legacyDigestLen is the length of a hex-encoded SHA-256 digest, the format
// older records were written with.
const legacyDigestLen = sha256.Size * 2

// maxPasswordBytes is bcrypt's input limit. It counts bytes, not characters.
const maxPasswordBytes = 72

func checkPasswordLength(plain string) error {
	if len(plain) > maxPasswordBytes {
		return domain.Errorf(domain.ErrValidation, "Password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}

// HashPassword returns a bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks plain against a stored bcrypt hash or a legacy
// unsalted SHA-256 hex digest. An empty stored value never matches.
func VerifyPassword(stored, plain string) bool {
	switch {
	case stored == "":
		return false
	case strings.HasPrefix(stored, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	case len(stored) == legacyDigestLen:
		sum := sha256.Sum256([]byte(plain))
		want := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(want)) == 1
	default:
		return false
	}
}
