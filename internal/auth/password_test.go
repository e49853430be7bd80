package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Light parameters to keep the tests fast; production values come from
// configuration.
const (
	testArgon2Time    = 1
	testArgon2Memory  = 8 * 1024
	testArgon2Threads = 1

	testPBKDF2Iterations = 1000
)

func TestHashArgon2id(t *testing.T) {
	encoded, err := HashArgon2id("secret password", testArgon2Time, testArgon2Memory, testArgon2Threads)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.True(t, VerifyArgon2id("secret password", encoded))
	assert.False(t, VerifyArgon2id("wrong password", encoded))
}

func TestHashArgon2id_UniqueSalts(t *testing.T) {
	first, err := HashArgon2id("same password", testArgon2Time, testArgon2Memory, testArgon2Threads)
	require.NoError(t, err)
	second, err := HashArgon2id("same password", testArgon2Time, testArgon2Memory, testArgon2Threads)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyArgon2id("same password", first))
	assert.True(t, VerifyArgon2id("same password", second))
}

func TestVerifyArgon2id_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not a hash", encoded: "plaintext"},
		{name: "wrong algorithm", encoded: "$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "wrong version", encoded: "$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "bad parameters", encoded: "$argon2id$v=19$bogus$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
		{name: "bad hash encoding", encoded: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$!!!"},
		{name: "missing segments", encoded: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyArgon2id("whatever", tt.encoded))
		})
	}
}

func TestHashPBKDF2(t *testing.T) {
	encoded, salt, err := HashPBKDF2("secret password", testPBKDF2Iterations)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "pbkdf2_sha256$1000$"))
	assert.Len(t, salt, pbkdf2SaltLen*2) // hex

	assert.True(t, VerifyPBKDF2("secret password", encoded, salt))
	assert.False(t, VerifyPBKDF2("wrong password", encoded, salt))
}

func TestVerifyPBKDF2_Malformed(t *testing.T) {
	encoded, salt, err := HashPBKDF2("secret", testPBKDF2Iterations)
	require.NoError(t, err)

	assert.False(t, VerifyPBKDF2("secret", "garbage", salt))
	assert.False(t, VerifyPBKDF2("secret", "pbkdf2_sha256$0$deadbeef", salt))
	assert.False(t, VerifyPBKDF2("secret", "pbkdf2_sha256$-1$deadbeef", salt))
	assert.False(t, VerifyPBKDF2("secret", encoded, "not-hex"))
	assert.False(t, VerifyPBKDF2("secret", encoded, ""))
}

func TestVerifyPBKDF2_WrongSalt(t *testing.T) {
	encoded, _, err := HashPBKDF2("secret", testPBKDF2Iterations)
	require.NoError(t, err)
	_, otherSalt, err := HashPBKDF2("secret", testPBKDF2Iterations)
	require.NoError(t, err)

	assert.False(t, VerifyPBKDF2("secret", encoded, otherSalt))
}
