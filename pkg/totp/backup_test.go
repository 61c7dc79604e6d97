package totp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushboard/credkit/pkg/totp"
)

func TestGenerateBackupCodes(t *testing.T) {
	t.Parallel()

	t.Run("generates requested count", func(t *testing.T) {
		t.Parallel()
		codes, err := totp.GenerateBackupCodes(totp.BackupCodeCount)
		require.NoError(t, err)
		require.Len(t, codes, totp.BackupCodeCount)

		seen := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			assert.Len(t, code, totp.BackupCodeLength)
			assert.Equal(t, strings.ToUpper(code), code)
			seen[code] = struct{}{}
		}
		assert.Len(t, seen, len(codes), "codes must be distinct")
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateBackupCodes(0)
		assert.ErrorIs(t, err, totp.ErrInvalidBackupCodeCount)
	})
}

func TestConsumeBackupCode(t *testing.T) {
	t.Parallel()

	codes, err := totp.GenerateBackupCodes(3)
	require.NoError(t, err)
	salt, err := totp.GenerateBackupSalt()
	require.NoError(t, err)
	hashed := totp.HashBackupCodes(codes, salt)
	require.Len(t, hashed, 3)

	t.Run("valid code consumed exactly once", func(t *testing.T) {
		t.Parallel()
		remaining, err := totp.ConsumeBackupCode(codes[1], salt, hashed)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)

		// Same code again must fail against the reduced list.
		_, err = totp.ConsumeBackupCode(codes[1], salt, remaining)
		assert.ErrorIs(t, err, totp.ErrInvalidBackupCode)
	})

	t.Run("matching is case and whitespace insensitive", func(t *testing.T) {
		t.Parallel()
		remaining, err := totp.ConsumeBackupCode("  "+strings.ToLower(codes[0])+" ", salt, hashed)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})

	t.Run("unknown code rejected", func(t *testing.T) {
		t.Parallel()
		_, err := totp.ConsumeBackupCode("NOPENOPE22", salt, hashed)
		assert.ErrorIs(t, err, totp.ErrInvalidBackupCode)
	})

	t.Run("wrong salt rejected", func(t *testing.T) {
		t.Parallel()
		otherSalt, err := totp.GenerateBackupSalt()
		require.NoError(t, err)
		_, err = totp.ConsumeBackupCode(codes[0], otherSalt, hashed)
		assert.ErrorIs(t, err, totp.ErrInvalidBackupCode)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		t.Parallel()
		_, err := totp.ConsumeBackupCode(codes[0], salt, nil)
		assert.ErrorIs(t, err, totp.ErrInvalidBackupCode)
	})
}

func TestCipherRoundTrip(t *testing.T) {
	t.Parallel()

	key, err := totp.GenerateEncryptionKey()
	require.NoError(t, err)
	cipher, err := totp.NewCipher(key)
	require.NoError(t, err)

	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt(secret)
	require.NoError(t, err)
	assert.NotEqual(t, secret, encrypted)

	decrypted, err := cipher.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, secret, decrypted)

	t.Run("distinct nonces per encryption", func(t *testing.T) {
		t.Parallel()
		again, err := cipher.Encrypt(secret)
		require.NoError(t, err)
		assert.NotEqual(t, encrypted, again)
	})

	t.Run("wrong key fails to decrypt", func(t *testing.T) {
		t.Parallel()
		otherKey, err := totp.GenerateEncryptionKey()
		require.NoError(t, err)
		other, err := totp.NewCipher(otherKey)
		require.NoError(t, err)
		_, err = other.Decrypt(encrypted)
		assert.ErrorIs(t, err, totp.ErrFailedToDecryptSecret)
	})

	t.Run("short key rejected", func(t *testing.T) {
		t.Parallel()
		_, err := totp.NewCipher([]byte("short"))
		assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)
	})

	t.Run("truncated ciphertext rejected", func(t *testing.T) {
		t.Parallel()
		_, err := cipher.Decrypt("AAAA")
		assert.ErrorIs(t, err, totp.ErrFailedToDecryptSecret)
	})
}
