package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// tokenKeyPrefix namespaces token entries so Clear can wipe every key
	// belonging to this store without touching unrelated data.
	tokenKeyPrefix = "admin_token:"

	// defaultTokenTTL bounds how long an untouched token survives in redis.
	defaultTokenTTL = 30 * 24 * time.Hour
)

// Redis persists the token in redis for shared console deployments where
// more than one host serves the same operator identity.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis constructs a redis-backed token store scoped to the given
// identity key (typically the operator login or hostname).
func NewRedis(client *redis.Client, identity string) *Redis {
	return &Redis{
		client: client,
		key:    tokenKeyPrefix + identity,
		ttl:    defaultTokenTTL,
	}
}

func (r *Redis) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load token from redis: %w", err)
	}
	return token, nil
}

func (r *Redis) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("save token to redis: %w", err)
	}
	return nil
}

// Clear removes every key under the store's prefix, not just the current
// identity, matching the wholesale wipe on logout.
func (r *Redis) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, tokenKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("clear token keys: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan token keys: %w", err)
	}
	return nil
}
