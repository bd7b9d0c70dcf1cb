package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/cybernetic-labs/cyberauth/core"
)

// Store backs the key-value port with a redis client. Values are stored
// without expiry; the engine owns the lifecycle of its two keys.
type Store struct {
	client *redis.Client
}

var _ core.KeyValueStore = (*Store)(nil)

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(key string) (string, error) {
	ctx := context.Background()

	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", core.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	ctx := context.Background()
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *Store) Remove(key string) error {
	ctx := context.Background()
	return s.client.Del(ctx, key).Err()
}
