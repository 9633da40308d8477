package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasherNeverEmitsPlaintext(t *testing.T) {
	h := NewPasswordHasher("unit-test-key", 64)

	hash := h.Hash("hunter2secret")
	assert.NotEmpty(t, hash)
	assert.False(t, strings.Contains(hash, "hunter2secret"))
	assert.NotEqual(t, "hunter2secret", hash)
}

func TestPasswordHasherDeterministicUnderFixedKey(t *testing.T) {
	first := NewPasswordHasher("fixed-key", 64)
	second := NewPasswordHasher("fixed-key", 64)

	assert.Equal(t, first.Hash("password123"), second.Hash("password123"))
}

func TestPasswordHasherDiffersAcrossKeys(t *testing.T) {
	a := NewPasswordHasher("key-a", 64)
	b := NewPasswordHasher("key-b", 64)

	assert.NotEqual(t, a.Hash("password123"), b.Hash("password123"))
}

func TestPasswordHasherVerify(t *testing.T) {
	h := NewPasswordHasher("fixed-key", 64)
	hash := h.Hash("password123")

	assert.True(t, h.Verify(hash, "password123"))
	assert.False(t, h.Verify(hash, "password124"))
	assert.False(t, h.Verify("not-base64!!!", "password123"))
}
