// ABOUTME: Tests for the Redis session store using a fake client
// ABOUTME: Covers key prefixing, TTL propagation, and the redis.Nil mapping

package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements RedisClient over a plain map. TTLs are recorded
// but not enforced; expiry is Redis's job, not the store's.
type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			delete(f.ttls, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisStore_CreateAndRead(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, 24*time.Hour)

	ctx := context.Background()
	id, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	userID, err := store.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// Keys are namespaced and carry the configured TTL
	key := "hatchboard:session:" + id
	assert.Contains(t, client.values, key)
	assert.Equal(t, 24*time.Hour, client.ttls[key])
}

func TestRedisStore_ReadUnknown(t *testing.T) {
	store := NewRedisStore(newFakeRedis(), time.Hour)

	_, err := store.Read(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Destroy(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, time.Hour)

	ctx := context.Background()
	id, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))

	_, err = store.Read(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Close(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, time.Hour)

	require.NoError(t, store.Close())
	assert.True(t, client.closed)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, time.Hour)

	id, err := store.Create(context.Background(), "user-1")
	require.NoError(t, err)

	for key := range client.values {
		assert.True(t, strings.HasPrefix(key, "hatchboard:session:"), "key %q missing prefix", key)
	}
	assert.Equal(t, "hatchboard:session:"+id, store.key(id))
}
