package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for hashing emailed one-time codes. Codes are
// low-entropy (a handful of digits), so a memory-hard hash is used at
// rest rather than a plain digest.
const (
	codeHashIterations  uint32 = 3
	codeHashMemory      uint32 = 64 * 1024
	codeHashParallelism uint8  = 2
	codeHashSaltLength         = 16
	codeHashKeyLength   uint32 = 32
)

// ErrCodeMismatch reports that a presented code does not match the
// stored hash.
var ErrCodeMismatch = errors.New("cryptox: code mismatch")

// HashCode generates a PHC-format Argon2id hash string, including salt
// and parameters, for a one-time code.
func HashCode(code string) (string, error) {
	salt := make([]byte, codeHashSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey(
		[]byte(code),
		salt,
		codeHashIterations,
		codeHashMemory,
		codeHashParallelism,
		codeHashKeyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		codeHashMemory,
		codeHashIterations,
		codeHashParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyCode compares a plaintext code against a PHC-style Argon2id
// hash in constant time. Returns nil on match, ErrCodeMismatch when the
// code is wrong, and a descriptive error for malformed hashes.
func VerifyCode(code, encodedHash string) error {
	parts := splitPHC(encodedHash)

	// Expected structure: ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}

	actual := argon2.IDKey([]byte(code), salt, iters, mem, par, uint32(len(expected)))

	if subtle.ConstantTimeCompare(expected, actual) != 1 {
		return ErrCodeMismatch
	}
	return nil
}

func splitPHC(s string) []string {
	parts := make([]string, 0, 6)
	start := 0
	for i := range len(s) {
		if s[i] == '$' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
