// Package storagetest holds the behaviour every storage.ProfileStore backend must pass.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/youshallpass/internal/storage"
)

// Digests used by the suite, 64-char lowercase hex like real ones
const (
	DigestA = "4c8b3ef7d8c54b7b4d5c1e2a9f0d6b3e8a7c2d1f0e9b8a7c6d5e4f3a2b1c0d9e"
	DigestB = "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0"
)

// Factory returns a fresh, empty store. The suite closes it.
type Factory func(t *testing.T) storage.ProfileStore

// Run executes the ProfileStore behaviour suite against newStore
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("empty store", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		defer closeStore(t, store)

		ok, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		_, found, err := store.FindByAccount(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("insert and find", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		defer closeStore(t, store)

		require.NoError(t, store.Insert(ctx, "alice", DigestA))
		require.NoError(t, store.Insert(ctx, "bob", DigestB))

		ok, err := store.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		profile, found, err := store.FindByAccount(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "alice", profile.Account)
		assert.Equal(t, DigestA, profile.Digest)

		profile, found, err = store.FindByAccount(ctx, "bob")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, DigestB, profile.Digest)

		// Имена чувствительны к регистру
		_, found, err = store.FindByAccount(ctx, "Alice")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("duplicate account", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		defer closeStore(t, store)

		require.NoError(t, store.Insert(ctx, "alice", DigestA))
		assert.ErrorIs(t, store.Insert(ctx, "alice", DigestB), storage.ErrDuplicateAccount)

		// Исходная запись не изменилась
		profile, found, err := store.FindByAccount(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, DigestA, profile.Digest)
	})

	t.Run("concurrent insert of one account", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		defer closeStore(t, store)

		const workers = 16
		results := make(chan error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- store.Insert(ctx, "alice", DigestA)
			}()
		}
		wg.Wait()
		close(results)

		var successes, duplicates int
		for err := range results {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, storage.ErrDuplicateAccount):
				duplicates++
			default:
				t.Errorf("unexpected insert error: %v", err)
			}
		}

		assert.Equal(t, 1, successes)
		assert.Equal(t, workers-1, duplicates)
	})

	t.Run("closed store", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		require.NoError(t, store.Close())

		_, err := store.Exists(ctx)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		_, _, err = store.FindByAccount(ctx, "alice")
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		assert.ErrorIs(t, store.Insert(ctx, "alice", DigestA), storage.ErrStorageClosed)
	})
}

func closeStore(t *testing.T, store storage.ProfileStore) {
	t.Helper()
	assert.NoError(t, store.Close())
}
