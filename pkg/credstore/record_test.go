package credstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushboard/credkit/pkg/credstore"
)

func TestNormalizeUsername(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alice_1", credstore.NormalizeUsername("Alice_1"))
	assert.Equal(t, "alice", credstore.NormalizeUsername("  ALICE  "))
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("get returns deep copies", func(t *testing.T) {
		t.Parallel()

		storage := credstore.NewMemoryStorage()
		require.NoError(t, storage.Put(ctx, "alice", &credstore.Record{
			Username:        "alice",
			UsernameLower:   "alice",
			TOTPBackupCodes: []string{"h1", "h2"},
		}))

		got, err := storage.Get(ctx, "alice")
		require.NoError(t, err)
		got.TOTPBackupCodes[0] = "tampered"

		again, err := storage.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "h1", again.TOTPBackupCodes[0])
	})

	t.Run("missing keys report not found", func(t *testing.T) {
		t.Parallel()

		storage := credstore.NewMemoryStorage()
		_, err := storage.Get(ctx, "nobody")
		assert.ErrorIs(t, err, credstore.ErrRecordNotFound)
		assert.ErrorIs(t, storage.Delete(ctx, "nobody"), credstore.ErrRecordNotFound)
	})

	t.Run("fold visits every record", func(t *testing.T) {
		t.Parallel()

		storage := credstore.NewMemoryStorage()
		for _, name := range []string{"a1", "b2", "c3"} {
			require.NoError(t, storage.Put(ctx, name, &credstore.Record{UsernameLower: name}))
		}

		acc, err := storage.Fold(ctx, []string(nil), func(acc any, r *credstore.Record) any {
			return append(acc.([]string), r.UsernameLower)
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a1", "b2", "c3"}, acc)
	})
}
