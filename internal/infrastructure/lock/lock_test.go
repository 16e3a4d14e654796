package lock

import (
	"context"
	"testing"
	"time"

	"pagalotodo/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLock(t *testing.T) (*RedisLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisLock(rdb, DefaultCloseLockKey, time.Minute), mr
}

func TestRedisLock_SingleFlight(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	token, err := l.Acquire(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, time.Minute, mr.TTL(DefaultCloseLockKey))

	_, err = l.Acquire(ctx)
	assert.ErrorIs(t, err, interfaces.ErrCloseInProgress)

	holder, err := l.Holder(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, holder.Token)

	require.NoError(t, l.Release(ctx, token))
	assert.False(t, mr.Exists(DefaultCloseLockKey))

	_, err = l.Acquire(ctx)
	assert.NoError(t, err)
}

func TestRedisLock_ReleaseWithForeignToken(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	_, err := l.Acquire(ctx)
	require.NoError(t, err)

	err = l.Release(ctx, "someone-else")
	assert.ErrorIs(t, err, ErrLockNotHeld)
	assert.True(t, mr.Exists(DefaultCloseLockKey))
}

func TestRedisLock_ExpiresAfterTTL(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	token, err := l.Acquire(ctx)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = l.Acquire(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Release(ctx, token), ErrLockNotHeld)
}

func TestLocalLock(t *testing.T) {
	l := NewLocalLock()
	ctx := context.Background()

	token, err := l.Acquire(ctx)
	require.NoError(t, err)

	_, err = l.Acquire(ctx)
	assert.ErrorIs(t, err, interfaces.ErrCloseInProgress)

	assert.ErrorIs(t, l.Release(ctx, "other"), ErrLockNotHeld)
	require.NoError(t, l.Release(ctx, token))
	assert.ErrorIs(t, l.Release(ctx, token), ErrLockNotHeld)

	_, err = l.Acquire(ctx)
	assert.NoError(t, err)
}
