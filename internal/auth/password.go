package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Algorithm tags stored with each credential record. Verification always
// follows the stored tag, so records created under one preference keep
// verifying after the configuration changes.
const (
	AlgoArgon2 = "argon2"
	AlgoPBKDF2 = "pbkdf2"
)

const (
	argon2KeyLen  = 32
	argon2SaltLen = 16

	pbkdf2KeyLen  = 32
	pbkdf2SaltLen = 16
)

// HashArgon2id hashes a password with Argon2id and encodes the result in
// PHC string format: $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>.
// The salt is embedded in the string, so no separate salt is stored.
func HashArgon2id(password string, time, memory uint32, threads uint8) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, time, memory, threads, argon2KeyLen)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, time, threads, encodedSalt, encodedHash), nil
}

// VerifyArgon2id checks a password against a PHC-encoded Argon2id hash.
// Parameters are read back from the string, so hashes created under
// different cost settings still verify. Malformed input verifies false.
func VerifyArgon2id(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false
	}
	if parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	if len(hash) == 0 || len(hash) > argon2KeyLen*2 {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, computed) == 1
}

// HashPBKDF2 hashes a password with PBKDF2-HMAC-SHA256 and a fresh
// random salt. The derived key is returned as "pbkdf2_sha256$<iter>$<hex>"
// with the hex salt alongside for separate storage.
func HashPBKDF2(password string, iterations int) (encoded, salt string, err error) {
	rawSalt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), rawSalt, iterations, pbkdf2KeyLen, sha256.New)

	encoded = fmt.Sprintf("pbkdf2_sha256$%d$%s", iterations, hex.EncodeToString(key))
	return encoded, hex.EncodeToString(rawSalt), nil
}

// VerifyPBKDF2 recomputes the derived key from the stored salt and the
// iteration count embedded in the encoded hash, comparing in constant
// time. Malformed input verifies false.
func VerifyPBKDF2(password, encodedHash, saltHex string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 3 || parts[0] != "pbkdf2_sha256" {
		return false
	}

	var iterations int
	if _, err := fmt.Sscanf(parts[1], "%d", &iterations); err != nil || iterations <= 0 {
		return false
	}

	key, err := hex.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, iterations, len(key), sha256.New)

	return subtle.ConstantTimeCompare(key, computed) == 1
}
