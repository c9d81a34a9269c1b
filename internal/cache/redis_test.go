package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestEventCache_RoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	c := NewEventCache(rdb, 30*time.Second, newTestLogger(t))
	ctx := context.Background()

	_, version, ok := c.GetPublished(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(0), version)

	events := []*domain.Event{{
		ID:          "e1",
		Name:        "Concert",
		Category:    domain.CategoryMusic,
		Date:        time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC),
		IsPublished: true,
		TicketTypes: []domain.TicketType{{Name: "VIP", Price: 99.5, Quantity: 3}},
	}}
	c.SetPublished(ctx, version, events)
	assert.Equal(t, 30*time.Second, rdb.ttl[dataKey(0)])

	got, _, ok := c.GetPublished(ctx)
	require.True(t, ok)
	assert.Equal(t, events, got)

	c.Invalidate(ctx)
	_, version, ok = c.GetPublished(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(1), version)
}

// Читатель взял список из БД до обновления, а записал его в кэш после инвалидации.
// Устаревший список не должен стать видимым.
func TestEventCache_StaleWriteAfterInvalidateIsIgnored(t *testing.T) {
	rdb := newFakeRedis()
	c := NewEventCache(rdb, time.Minute, newTestLogger(t))
	ctx := context.Background()

	_, readerVersion, ok := c.GetPublished(ctx)
	require.False(t, ok)

	c.Invalidate(ctx)
	c.SetPublished(ctx, readerVersion, []*domain.Event{{ID: "stale"}})

	_, _, ok = c.GetPublished(ctx)
	assert.False(t, ok)

	_, freshVersion, _ := c.GetPublished(ctx)
	c.SetPublished(ctx, freshVersion, []*domain.Event{{ID: "fresh"}})

	got, _, ok := c.GetPublished(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestEventCache_EmptyListIsHit(t *testing.T) {
	c := NewEventCache(newFakeRedis(), 0, newTestLogger(t))

	c.SetPublished(context.Background(), 0, nil)

	got, _, ok := c.GetPublished(context.Background())
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestEventCache_DefaultTTL(t *testing.T) {
	rdb := newFakeRedis()
	c := NewEventCache(rdb, 0, newTestLogger(t))

	c.SetPublished(context.Background(), 0, []*domain.Event{})

	assert.Equal(t, DefaultTTL, rdb.ttl[dataKey(0)])
}

func TestEventCache_ErrorsAreMisses(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	c := NewEventCache(rdb, time.Minute, newTestLogger(t))
	ctx := context.Background()

	c.Invalidate(ctx)
	_, version, ok := c.GetPublished(ctx)

	assert.False(t, ok)
	assert.Equal(t, noVersion, version)

	// с неизвестной версией запись пропускается
	rdb.err = nil
	c.SetPublished(ctx, version, []*domain.Event{{ID: "e1"}})
	assert.Empty(t, rdb.data)
}

func TestEventCache_CorruptValueIsMiss(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data[dataKey(0)] = "{not json"
	c := NewEventCache(rdb, time.Minute, newTestLogger(t))

	_, _, ok := c.GetPublished(context.Background())

	assert.False(t, ok)
}
