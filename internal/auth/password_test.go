package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedOutput(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Fresh salt per call, so the encodings differ
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$argon2id$"))

	// But both verify against the original plaintext
	for _, encoded := range []string{first, second} {
		ok, err := VerifyPassword(encoded, "secret123")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	encoded, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", encoded)
	assert.NotContains(t, encoded, "secret123")
}

func TestHashPassword_EmptyInput(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	encoded, err := HashPassword("secret123")
	require.NoError(t, err)

	ok, err := VerifyPassword(encoded, "secret124")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_EmptyPassword(t *testing.T) {
	encoded, err := HashPassword("secret123")
	require.NoError(t, err)

	_, err = VerifyPassword(encoded, "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plainly-not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"bad version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"bad params", "$argon2id$v=19$nope$c2FsdA$a2V5"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5"},
		{"missing key", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VerifyPassword(tc.encoded, "secret123")
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
