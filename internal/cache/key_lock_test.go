package cache_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-room/internal/cache"
	"go-gin-event-room/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyLocker(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redis.Client, cache.KeyLocker) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client, cache.NewRedisKeyLocker(client, ttl)
}

func newKey() model.EventRoomKey {
	return model.EventRoomKey{EventID: uuid.New(), RoomID: uuid.New()}
}

func TestRedisKeyLocker_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mr, _, locker := setupKeyLocker(t, 5*time.Second)
		key := newKey()

		release, ok, err := locker.Acquire(ctx, key)

		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, release)
		lockKey := "event_room:" + key.EventID.String() + ":" + key.RoomID.String() + ":lock"
		assert.True(t, mr.Exists(lockKey))
		assert.Equal(t, 5*time.Second, mr.TTL(lockKey))

		release()
		assert.False(t, mr.Exists(lockKey))
	})

	t.Run("Failed - already held", func(t *testing.T) {
		_, _, locker := setupKeyLocker(t, 5*time.Second)
		key := newKey()

		release, ok, err := locker.Acquire(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		defer release()

		second, ok, err := locker.Acquire(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, second)
	})

	t.Run("Success - different keys do not collide", func(t *testing.T) {
		_, _, locker := setupKeyLocker(t, 5*time.Second)

		r1, ok1, err := locker.Acquire(ctx, newKey())
		require.NoError(t, err)
		r2, ok2, err := locker.Acquire(ctx, newKey())
		require.NoError(t, err)

		assert.True(t, ok1)
		assert.True(t, ok2)
		r1()
		r2()
	})

	t.Run("Success - reacquire after release", func(t *testing.T) {
		_, _, locker := setupKeyLocker(t, 5*time.Second)
		key := newKey()

		release, ok, err := locker.Acquire(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		release()
		release()

		again, ok, err := locker.Acquire(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		again()
	})

	t.Run("Success - expired lock is not released by old holder", func(t *testing.T) {
		mr, _, locker := setupKeyLocker(t, time.Second)
		key := newKey()

		stale, ok, err := locker.Acquire(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)

		current, ok, err := locker.Acquire(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)

		stale()

		_, ok, err = locker.Acquire(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "lock of the current holder must survive the stale release")
		current()
	})

	t.Run("Failed - redis unavailable", func(t *testing.T) {
		mr, _, locker := setupKeyLocker(t, time.Second)
		mr.Close()

		_, ok, err := locker.Acquire(ctx, newKey())

		assert.Error(t, err)
		assert.False(t, ok)
	})
}
