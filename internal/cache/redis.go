package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const (
	publishedEventsKey = "events:published"
	versionKey         = publishedEventsKey + ":version"
	DefaultTTL         = time.Minute
	pingTimeout        = 5 * time.Second
)

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// noVersion: версия неизвестна, такой список в кэш не пишется.
const noVersion int64 = -1

// EventCache кэширует список опубликованных событий в Redis.
// Ошибки Redis логируются и трактуются как промах.
//
// Список хранится под ключом с номером версии. Invalidate увеличивает версию,
// поэтому список, прочитанный из БД до инвалидации, попадает под старый ключ
// и больше никем не читается.
type EventCache struct {
	client redisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewEventCache(client redisClient, ttl time.Duration, log logger.Logger) *EventCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &EventCache{client: client, ttl: ttl, logger: log}
}

// Connect создаёт клиента Redis и проверяет соединение.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

func dataKey(version int64) string {
	return publishedEventsKey + ":" + strconv.FormatInt(version, 10)
}

func (c *EventCache) version(ctx context.Context) int64 {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0
		}
		c.logger.Warn("cache version read failed",
			logger.String("key", versionKey),
			logger.String("error", err.Error()),
		)
		return noVersion
	}
	return v
}

// GetPublished возвращает список и версию, под которой его нужно записать при промахе.
func (c *EventCache) GetPublished(ctx context.Context) ([]*domain.Event, int64, bool) {
	version := c.version(ctx)
	if version == noVersion {
		return nil, noVersion, false
	}

	key := dataKey(version)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return nil, version, false
	}

	var events []*domain.Event
	if err = json.Unmarshal(data, &events); err != nil {
		c.logger.Warn("cache decode failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return nil, version, false
	}

	return events, version, true
}

func (c *EventCache) SetPublished(ctx context.Context, version int64, events []*domain.Event) {
	if version < 0 {
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}

	data, err := json.Marshal(events)
	if err != nil {
		c.logger.Warn("cache encode failed", logger.String("error", err.Error()))
		return
	}

	key := dataKey(version)
	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (c *EventCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Warn("cache invalidate failed",
			logger.String("key", versionKey),
			logger.String("error", err.Error()),
		)
	}
}
