package credstore_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushboard/credkit/pkg/bruteforce"
	"github.com/hushboard/credkit/pkg/credstore"
	"github.com/hushboard/credkit/pkg/passpolicy"
	"github.com/hushboard/credkit/pkg/recovery"
	"github.com/hushboard/credkit/pkg/totp"
)

const goodPassphrase = "correcthorsebattery"

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1756380000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(t *testing.T, opts ...credstore.Option) (*credstore.Store, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	loginGuard := bruteforce.New(bruteforce.DefaultConfig(),
		bruteforce.WithClock(clock.Now), bruteforce.WithCleanupInterval(0))
	creationGuard := bruteforce.New(bruteforce.CreationConfig(),
		bruteforce.WithClock(clock.Now), bruteforce.WithCleanupInterval(0))

	opts = append([]credstore.Option{
		credstore.WithClock(clock.Now),
		credstore.WithLoginGuard(loginGuard),
		credstore.WithCreationGuard(creationGuard),
	}, opts...)

	store, err := credstore.New(credstore.NewMemoryStorage(), opts...)
	require.NoError(t, err)
	return store, clock
}

func TestStore_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns sanitized record and recovery words", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		record, words, err := store.Create(ctx, "Alice_1", goodPassphrase, "", credstore.Profile{Bio: "hi"})
		require.NoError(t, err)

		assert.Equal(t, "Alice_1", record.Username)
		assert.Equal(t, "alice_1", record.UsernameLower)
		assert.Equal(t, "hi", record.Profile.Bio)
		assert.Nil(t, record.PassphraseHash)
		assert.Nil(t, record.Salt)
		assert.Empty(t, record.RecoveryHash)

		require.Len(t, words, recovery.PhraseLength)
		for _, w := range words {
			assert.Equal(t, strings.ToLower(w), w)
		}
	})

	t.Run("rejects duplicate username case-insensitively", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "Alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		_, _, err = store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		assert.ErrorIs(t, err, credstore.ErrUsernameTaken)

		_, _, err = store.Create(ctx, "ALICE", goodPassphrase, "", credstore.Profile{})
		assert.ErrorIs(t, err, credstore.ErrUsernameTaken)
	})

	t.Run("validates username shape and length", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		testCases := []struct {
			name     string
			username string
			wantErr  error
		}{
			{"too short", "ab", credstore.ErrUsernameTooShort},
			{"too long", strings.Repeat("a", 31), credstore.ErrUsernameTooLong},
			{"leading digit", "1abc", credstore.ErrInvalidUsername},
			{"leading underscore", "_abc", credstore.ErrInvalidUsername},
			{"contains space", "a bc", credstore.ErrInvalidUsername},
			{"contains dash", "a-bc", credstore.ErrInvalidUsername},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := store.Create(ctx, tc.username, goodPassphrase, "", credstore.Profile{})
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("rejects weak passphrase with policy reason", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "bob_1", "short", "", credstore.Profile{})
		assert.ErrorIs(t, err, credstore.ErrWeakPassphrase)
		assert.ErrorIs(t, err, passpolicy.ErrTooShort)
	})

	t.Run("throttles repeated creations from one source", func(t *testing.T) {
		t.Parallel()

		store, clock := newTestStore(t)
		_, _, err := store.Create(ctx, "carol_1", goodPassphrase, "203.0.113.7", credstore.Profile{})
		require.NoError(t, err)

		_, _, err = store.Create(ctx, "carol_2", goodPassphrase, "203.0.113.7", credstore.Profile{})
		assert.ErrorIs(t, err, credstore.ErrRateLimited)

		// Other sources are unaffected.
		_, _, err = store.Create(ctx, "carol_3", goodPassphrase, "203.0.113.8", credstore.Profile{})
		require.NoError(t, err)

		clock.Advance(24*time.Hour + time.Second)
		_, _, err = store.Create(ctx, "carol_2", goodPassphrase, "203.0.113.7", credstore.Profile{})
		require.NoError(t, err)
	})
}

func TestStore_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("accepts correct passphrase", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "Alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		record, err := store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", record.Username)
		assert.Nil(t, record.PassphraseHash)
	})

	t.Run("unknown user and wrong passphrase fail identically", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		_, errWrong := store.Authenticate(ctx, "alice", "not the passphrase", "198.51.100.2")
		_, errUnknown := store.Authenticate(ctx, "nobody_here", goodPassphrase, "198.51.100.2")

		assert.ErrorIs(t, errWrong, credstore.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, credstore.ErrInvalidCredentials)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})

	t.Run("locks out a source after repeated failures", func(t *testing.T) {
		t.Parallel()

		store, clock := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			_, err := store.Authenticate(ctx, "alice", "wrong passphrase", "198.51.100.3")
			assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
		}

		// Correct credentials are refused while the source is limited.
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.3")
		assert.ErrorIs(t, err, credstore.ErrTooManyAttempts)

		// A different source is not affected.
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.4")
		require.NoError(t, err)

		clock.Advance(61 * time.Second)
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.3")
		require.NoError(t, err)
	})

	t.Run("failures against unknown usernames also count", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		for i := 0; i < 5; i++ {
			_, err := store.Authenticate(ctx, "ghost_user", "whatever passphrase", "198.51.100.5")
			assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
		}

		_, err := store.Authenticate(ctx, "ghost_user", "whatever passphrase", "198.51.100.5")
		assert.ErrorIs(t, err, credstore.ErrTooManyAttempts)
	})

	t.Run("success clears the failure streak", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		for i := 0; i < 4; i++ {
			_, err := store.Authenticate(ctx, "alice", "wrong passphrase", "198.51.100.6")
			assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
		}
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.6")
		require.NoError(t, err)

		// The streak restarted, so four more failures do not lock out.
		for i := 0; i < 4; i++ {
			_, err := store.Authenticate(ctx, "alice", "wrong passphrase", "198.51.100.6")
			assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
		}
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.6")
		require.NoError(t, err)
	})
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("requires the current passphrase", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{Bio: "old"})
		require.NoError(t, err)

		bio := "new"
		_, err = store.Update(ctx, "alice", "wrong passphrase", credstore.ProfileUpdate{Bio: &bio})
		assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)

		record, err := store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.7")
		require.NoError(t, err)
		assert.Equal(t, "old", record.Profile.Bio)
	})

	t.Run("applies only the provided fields", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{
			Bio:      "old bio",
			Location: "somewhere",
		})
		require.NoError(t, err)

		bio := "new bio"
		links := []string{"https://example.com"}
		record, err := store.Update(ctx, "alice", goodPassphrase, credstore.ProfileUpdate{
			Bio:   &bio,
			Links: &links,
		})
		require.NoError(t, err)

		assert.Equal(t, "new bio", record.Profile.Bio)
		assert.Equal(t, "somewhere", record.Profile.Location)
		assert.Equal(t, links, record.Profile.Links)
	})
}

func TestStore_Recover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("wrong words are rejected", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, words, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		wrong := make([]string, len(words))
		copy(wrong, words)
		wrong[0], wrong[1] = wrong[1], wrong[0]
		if wrong[0] == wrong[1] {
			wrong[0] = wrong[0] + "x"
		}

		_, err = store.Recover(ctx, "alice", wrong, "replacement passphrase 1")
		assert.ErrorIs(t, err, credstore.ErrInvalidRecoveryPhrase)
	})

	t.Run("rotates passphrase and phrase, old phrase dies", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, words, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		newWords, err := store.Recover(ctx, "alice", words, "replacement passphrase 1")
		require.NoError(t, err)
		require.Len(t, newWords, recovery.PhraseLength)
		assert.NotEqual(t, words, newWords)

		// Old passphrase is gone, the new one works.
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.8")
		assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
		_, err = store.Authenticate(ctx, "alice", "replacement passphrase 1", "198.51.100.8")
		require.NoError(t, err)

		// The redeemed phrase never works a second time.
		_, err = store.Recover(ctx, "alice", words, "replacement passphrase 2")
		assert.ErrorIs(t, err, credstore.ErrInvalidRecoveryPhrase)
	})

	t.Run("weak replacement passphrase leaves the record untouched", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, words, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		_, err = store.Recover(ctx, "alice", words, "short")
		assert.ErrorIs(t, err, credstore.ErrWeakPassphrase)

		// Neither credential rotated.
		_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.9")
		require.NoError(t, err)
		_, err = store.Recover(ctx, "alice", words, "replacement passphrase 1")
		require.NoError(t, err)
	})

	t.Run("unknown user reports not found", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t)
		_, err := store.Recover(ctx, "nobody", []string{"a"}, "replacement passphrase 1")
		assert.ErrorIs(t, err, credstore.ErrRecordNotFound)
	})
}

// wrongCode derives a six-digit code guaranteed to differ from valid.
func wrongCode(valid string) string {
	next := byte('0')
	if valid[0] < '9' {
		next = valid[0] + 1
	}
	return string(next) + valid[1:]
}

func TestStore_TOTPLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("full enrollment and verification", func(t *testing.T) {
		t.Parallel()

		store, clock := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		_, err = store.VerifyTOTP(ctx, "alice", "123456")
		assert.ErrorIs(t, err, credstore.ErrTOTPNotEnabled)

		_, _, _, err = store.SetupTOTP(ctx, "alice", "wrong passphrase")
		assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)

		secret, backupCodes, uri, err := store.SetupTOTP(ctx, "alice", goodPassphrase)
		require.NoError(t, err)
		assert.NotEmpty(t, secret)
		require.Len(t, backupCodes, totp.BackupCodeCount)
		assert.True(t, strings.HasPrefix(uri, "otpauth://totp/"))
		assert.Contains(t, uri, "Hushboard")

		// Pending setup does not change the effective state.
		_, err = store.VerifyTOTP(ctx, "alice", "123456")
		assert.ErrorIs(t, err, credstore.ErrTOTPNotEnabled)

		valid, err := totp.GenerateTOTPAt(secret, clock.Now())
		require.NoError(t, err)

		// A failed confirm leaves the pending setup intact.
		err = store.ConfirmTOTP(ctx, "alice", goodPassphrase, wrongCode(valid))
		assert.ErrorIs(t, err, credstore.ErrInvalidTOTPCode)
		err = store.ConfirmTOTP(ctx, "alice", goodPassphrase, valid)
		require.NoError(t, err)

		// Enrollment is single-shot.
		err = store.ConfirmTOTP(ctx, "alice", goodPassphrase, valid)
		assert.ErrorIs(t, err, credstore.ErrNoPendingTOTP)
		_, _, _, err = store.SetupTOTP(ctx, "alice", goodPassphrase)
		assert.ErrorIs(t, err, credstore.ErrTOTPAlreadyEnabled)

		result, err := store.VerifyTOTP(ctx, "alice", valid)
		require.NoError(t, err)
		assert.False(t, result.BackupCodeUsed)

		_, err = store.VerifyTOTP(ctx, "alice", wrongCode(valid))
		assert.ErrorIs(t, err, credstore.ErrInvalidTOTPCode)
	})

	t.Run("backup codes are single use", func(t *testing.T) {
		t.Parallel()

		store, clock := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		secret, backupCodes, _, err := store.SetupTOTP(ctx, "alice", goodPassphrase)
		require.NoError(t, err)
		valid, err := totp.GenerateTOTPAt(secret, clock.Now())
		require.NoError(t, err)
		require.NoError(t, store.ConfirmTOTP(ctx, "alice", goodPassphrase, valid))

		result, err := store.VerifyTOTP(ctx, "alice", backupCodes[0])
		require.NoError(t, err)
		assert.True(t, result.BackupCodeUsed)
		assert.Equal(t, totp.BackupCodeCount-1, result.RemainingBackupCodes)

		_, err = store.VerifyTOTP(ctx, "alice", backupCodes[0])
		assert.ErrorIs(t, err, credstore.ErrInvalidTOTPCode)

		result, err = store.VerifyTOTP(ctx, "alice", backupCodes[1])
		require.NoError(t, err)
		assert.True(t, result.BackupCodeUsed)
		assert.Equal(t, totp.BackupCodeCount-2, result.RemainingBackupCodes)
	})

	t.Run("disable requires both factors", func(t *testing.T) {
		t.Parallel()

		store, clock := newTestStore(t)
		_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		secret, _, _, err := store.SetupTOTP(ctx, "alice", goodPassphrase)
		require.NoError(t, err)
		valid, err := totp.GenerateTOTPAt(secret, clock.Now())
		require.NoError(t, err)
		require.NoError(t, store.ConfirmTOTP(ctx, "alice", goodPassphrase, valid))

		err = store.DisableTOTP(ctx, "alice", "wrong passphrase", valid)
		assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
		err = store.DisableTOTP(ctx, "alice", goodPassphrase, wrongCode(valid))
		assert.ErrorIs(t, err, credstore.ErrInvalidTOTPCode)

		require.NoError(t, store.DisableTOTP(ctx, "alice", goodPassphrase, valid))
		_, err = store.VerifyTOTP(ctx, "alice", valid)
		assert.ErrorIs(t, err, credstore.ErrTOTPNotEnabled)
	})

	t.Run("secret survives an encrypt-at-rest round trip", func(t *testing.T) {
		t.Parallel()

		key, err := totp.GenerateEncryptionKey()
		require.NoError(t, err)
		cipher, err := totp.NewCipher(key)
		require.NoError(t, err)

		store, clock := newTestStore(t, credstore.WithCipher(cipher))
		_, _, err = store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
		require.NoError(t, err)

		secret, _, _, err := store.SetupTOTP(ctx, "alice", goodPassphrase)
		require.NoError(t, err)
		valid, err := totp.GenerateTOTPAt(secret, clock.Now())
		require.NoError(t, err)
		require.NoError(t, store.ConfirmTOTP(ctx, "alice", goodPassphrase, valid))

		result, err := store.VerifyTOTP(ctx, "alice", valid)
		require.NoError(t, err)
		assert.False(t, result.BackupCodeUsed)
	})
}

func TestStore_DeleteAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, _, err = store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
	require.NoError(t, err)
	_, _, err = store.Create(ctx, "bob_1", goodPassphrase, "", credstore.Profile{})
	require.NoError(t, err)

	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, store.Delete(ctx, "ALICE"))
	assert.ErrorIs(t, store.Delete(ctx, "alice"), credstore.ErrRecordNotFound)

	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.10")
	assert.ErrorIs(t, err, credstore.ErrInvalidCredentials)
}

func TestStore_ConcurrentMutations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	_, _, err := store.Create(ctx, "alice", goodPassphrase, "", credstore.Profile{})
	require.NoError(t, err)

	// Concurrent profile updates must all land; the per-user lock prevents
	// lost writes.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bio := strings.Repeat("x", i+1)
			_, err := store.Update(ctx, "alice", goodPassphrase, credstore.ProfileUpdate{Bio: &bio})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	record, err := store.Authenticate(ctx, "alice", goodPassphrase, "198.51.100.11")
	require.NoError(t, err)
	assert.NotEmpty(t, record.Profile.Bio)
}
