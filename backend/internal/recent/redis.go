package recent

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	backend "github.com/redis/go-redis/v9"

	apperrors "aitools/backend/pkg/errors"
)

const redisBackend = "redis"

// RedisStore keeps lists as JSON strings, one key per client
type RedisStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore
type RedisOption func(*RedisStore)

// WithTTL sets the expiration of each list. Zero keeps lists forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore connects to a redis server
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(rdb, opts...)
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	store := &RedisStore{
		client: client,
		prefix: "aitools:recent:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *RedisStore) key(clientID string) string {
	return s.prefix + clientID
}

// Ping checks connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return apperrors.NewStorageFailed(redisBackend, "ping", err)
	}
	return nil
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, clientID string) ([]string, error) {
	val, err := s.client.Get(ctx, s.key(clientID)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return []string{}, nil
		}
		return nil, apperrors.NewStorageFailed(redisBackend, "get", err)
	}

	ids := []string{}
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, apperrors.NewStorageFailed(redisBackend, "decode", err)
	}
	return ids, nil
}

func (s *RedisStore) Set(ctx context.Context, clientID string, ids []string) error {
	if len(ids) == 0 {
		if err := s.client.Del(ctx, s.key(clientID)).Err(); err != nil {
			return apperrors.NewStorageFailed(redisBackend, "delete", err)
		}
		return nil
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return apperrors.NewStorageFailed(redisBackend, "encode", err)
	}
	if err := s.client.Set(ctx, s.key(clientID), data, s.ttl).Err(); err != nil {
		return apperrors.NewStorageFailed(redisBackend, "set", err)
	}
	return nil
}
