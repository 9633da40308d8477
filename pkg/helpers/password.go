package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

const hashLen = 32

// PasswordHasher produces a keyed one-way hash of a plaintext credential.
// The key is fixed for the lifetime of the hasher and supplied by configuration,
// so hashes stay verifiable across restarts.
type PasswordHasher struct {
	key        []byte
	iterations int
}

func NewPasswordHasher(key string, iterations int) *PasswordHasher {
	if iterations <= 0 {
		iterations = 4096
	}
	return &PasswordHasher{key: []byte(key), iterations: iterations}
}

// Hash derives a PBKDF2 (HMAC-SHA256) digest of the plaintext and returns it
// base64-encoded. The plaintext is never stored.
func (h *PasswordHasher) Hash(plain string) string {
	sum := pbkdf2.Key([]byte(plain), h.key, h.iterations, hashLen, sha256.New)
	return base64.StdEncoding.EncodeToString(sum)
}

// Verify reports whether the stored hash matches the plaintext under this
// hasher's key.
func (h *PasswordHasher) Verify(hash, plain string) bool {
	stored, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	sum := pbkdf2.Key([]byte(plain), h.key, h.iterations, hashLen, sha256.New)
	return hmac.Equal(stored, sum)
}
