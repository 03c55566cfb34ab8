package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/authcorp/libs/go/tiger/codec"
	"github.com/authcorp/libs/go/tiger/option"
)

// RedisConfig holds Redis client configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
	Prefix   string
}

// RedisStore reads and writes optional values in Redis.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore wraps an existing client. Keys are prefixed with prefix.
// A nil logger disables miss logging.
func NewRedisStore(rdb *redis.Client, prefix string, logger *slog.Logger) *RedisStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RedisStore{rdb: rdb, prefix: prefix, logger: logger}
}

// DialRedis parses cfg.URL, connects and pings the server.
func DialRedis(ctx context.Context, cfg RedisConfig, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	opt.DB = cfg.DB

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(rdb, cfg.Prefix, logger), nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// Get returns the string stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) (option.Option[string], error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Result()
	o, err := FromResult(val, err, redis.Nil)
	if err != nil {
		return o, fmt.Errorf("redis get %s: %w", key, err)
	}
	if o.IsNone() {
		s.logger.DebugContext(ctx, "redis miss", slog.String("key", s.prefix+key))
	}
	return o, nil
}

// Set stores the value of o under key. None deletes the key.
func (s *RedisStore) Set(ctx context.Context, key string, o option.Option[string], ttl time.Duration) error {
	var err error
	if v, ok := o.Get(); ok {
		err = s.rdb.Set(ctx, s.prefix+key, v, ttl).Err()
	} else {
		err = s.rdb.Del(ctx, s.prefix+key).Err()
	}
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// TTL returns the remaining time to live of key. Keys that do not exist or
// never expire are None.
func (s *RedisStore) TTL(ctx context.Context, key string) (option.Option[time.Duration], error) {
	ttl, err := s.rdb.TTL(ctx, s.prefix+key).Result()
	if err != nil {
		return option.None[time.Duration](), fmt.Errorf("redis ttl %s: %w", key, err)
	}
	return option.Some(ttl).Filter(func(d time.Duration) bool { return d > 0 }), nil
}

// HealthCheck checks Redis connectivity.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// GetJSON decodes the JSON document stored under key.
func GetJSON[T any](ctx context.Context, s *RedisStore, key string) (option.Option[T], error) {
	raw, err := s.Get(ctx, key)
	if err != nil || raw.IsNone() {
		return option.None[T](), err
	}
	o, err := codec.DecodeOption[T](codec.NewJSONCodec(), []byte(raw.Value()))
	if err != nil {
		return o, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return o, nil
}

// SetJSON stores o as a JSON document. None deletes the key.
func SetJSON[T any](ctx context.Context, s *RedisStore, key string, o option.Option[T], ttl time.Duration) error {
	if o.IsNone() {
		return s.Set(ctx, key, option.None[string](), ttl)
	}
	data, err := codec.EncodeOption(codec.NewJSONCodec(), o)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	return s.Set(ctx, key, option.Some(string(data)), ttl)
}
