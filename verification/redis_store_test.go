package verification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_ConsumeMatchingCode(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, "ann@x.com", "1234", time.Minute))
	assert.True(t, mr.Exists("verification:ann@x.com"))

	ok, err := store.Consume(ctx, "ann@x.com", "0000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, mr.Exists("verification:ann@x.com"))

	ok, err = store.Consume(ctx, "ann@x.com", "1234")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, mr.Exists("verification:ann@x.com"))

	ok, err = store.Consume(ctx, "ann@x.com", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, "ann@x.com", "1234", time.Minute))
	mr.FastForward(2 * time.Minute)

	ok, err := store.Consume(ctx, "ann@x.com", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_NoTTLWhenZero(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, "ann@x.com", "1234", 0))
	assert.Equal(t, time.Duration(0), mr.TTL("verification:ann@x.com"))
}

func TestRedisStore_WithLedger(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)
	l := NewLedger(store, &recordingSender{}, time.Minute, nil)
	l.generate = sequence("1111", "2222")

	require.NoError(t, l.RequestCode(ctx, "ann@x.com"))
	require.NoError(t, l.RequestCode(ctx, "ann@x.com"))
	assert.ErrorIs(t, l.VerifyCode(ctx, "ann@x.com", "1111"), ErrInvalidCode)
	assert.NoError(t, l.VerifyCode(ctx, "ann@x.com", "2222"))
}
