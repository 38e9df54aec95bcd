package users

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

var errBadHash = errors.New("malformed password hash")

// verifyPassword checks password against a hash from HashPassword. Nothing
// authenticates users yet, so it only backs the hashing tests.
func verifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errBadHash
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, errBadHash
	}
	var (
		memory  uint32
		iters   uint32
		threads uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iters, &threads); err != nil {
		return false, errBadHash
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errBadHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, errBadHash
	}
	got := argon2.IDKey([]byte(password), salt, iters, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}


func TestHashPassword(t *testing.T) {
	h, err := HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$"))
	assert.NotContains(t, h, "password123")

	ok, err := verifyPassword("password123", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword("password124", h)
	require.NoError(t, err)
	assert.False(t, ok)

	h2, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, h, h2, "salt differs per hash")
}

func TestHashPassword_LongInput(t *testing.T) {
	long := strings.Repeat("p", 100)
	h, err := HashPassword(long)
	require.NoError(t, err)

	ok, err := verifyPassword(long, h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword(long[:72], h)
	require.NoError(t, err)
	assert.False(t, ok, "no truncation at 72 bytes")
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, enc := range []string{"", "plaintext", "$bcrypt$x$y$z$w", "$argon2id$v=19$m=x$a$b"} {
		_, err := verifyPassword("secret", enc)
		assert.ErrorIs(t, err, errBadHash, enc)
	}
}
