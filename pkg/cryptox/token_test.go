package cryptox_test

import (
	"testing"

	"github.com/lodgeworks/gatehouse/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("produces URL-safe tokens of expected length", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		// 32 bytes -> 43 chars of base64url without padding
		require.Len(t, token, 43)
		require.NotContains(t, token, "+")
		require.NotContains(t, token, "/")
		require.NotContains(t, token, "=")
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			token := cryptox.MustGenerateToken(cryptox.TokenSize256)
			_, dup := seen[token]
			require.False(t, dup)
			seen[token] = struct{}{}
		}
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
		_, err = cryptox.GenerateToken(-1)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := cryptox.FingerprintToken("some-token")
	b := cryptox.FingerprintToken("some-token")
	c := cryptox.FingerprintToken("other-token")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 43)
}

func TestGenerateDigitCode(t *testing.T) {
	t.Parallel()

	t.Run("fixed length, digits only", func(t *testing.T) {
		for range 50 {
			code, err := cryptox.GenerateDigitCode(6)
			require.NoError(t, err)
			require.Len(t, code, 6)
			for _, r := range code {
				require.True(t, r >= '0' && r <= '9')
			}
		}
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := cryptox.GenerateDigitCode(0)
		require.Error(t, err)
	})
}

func TestRandomInt(t *testing.T) {
	t.Parallel()

	for range 100 {
		n, err := cryptox.RandomInt(1, 20)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 20)
	}

	n, err := cryptox.RandomInt(7, 7)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	_, err = cryptox.RandomInt(5, 1)
	require.Error(t, err)
}

func TestCodeHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashCode("123456")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$")

	require.NoError(t, cryptox.VerifyCode("123456", hash))
	require.ErrorIs(t, cryptox.VerifyCode("654321", hash), cryptox.ErrCodeMismatch)

	// Same code hashed twice yields different salts and hashes.
	again, err := cryptox.HashCode("123456")
	require.NoError(t, err)
	require.NotEqual(t, hash, again)

	require.Error(t, cryptox.VerifyCode("123456", "not-a-phc-hash"))
}
