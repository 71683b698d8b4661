package account

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStores(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	stores := map[string]CredentialStore{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Lookup(ctx, "jane@example.com")
			assert.ErrorIs(t, err, ErrUnknownAccount)

			require.NoError(t, store.Save(ctx, "jane@example.com", []byte("first")))
			hash, err := store.Lookup(ctx, "jane@example.com")
			require.NoError(t, err)
			assert.Equal(t, []byte("first"), hash)

			require.NoError(t, store.Save(ctx, "jane@example.com", []byte("second")))
			hash, err = store.Lookup(ctx, "jane@example.com")
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), hash)

			_, err = store.Lookup(ctx, "JANE@example.com")
			assert.ErrorIs(t, err, ErrUnknownAccount)
		})
	}
}

func TestRedisStore_KeyLayout(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, NewRedisStore(rdb).Save(context.Background(), "a@b.co", []byte("hash")))

	mr.CheckGet(t, "storefront:credentials:a@b.co", "hash")
	assert.Zero(t, mr.TTL("storefront:credentials:a@b.co"))
}

func TestRedisStore_Outage(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	_, err := NewRedisStore(rdb).Lookup(context.Background(), "a@b.co")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownAccount)
}

func TestMemoryStore_CopiesHash(t *testing.T) {
	store := NewMemoryStore()
	hash := []byte("abc")
	require.NoError(t, store.Save(context.Background(), "a@b.co", hash))
	hash[0] = 'x'

	got, err := store.Lookup(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
