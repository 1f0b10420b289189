package output

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const elementKeyPrefix = "out:"

// RedisTarget keeps the element text in Redis so that separate processes
// (the probe CLI and the page server) share one element.
type RedisTarget struct {
	client  *redis.Client
	element string
}

func NewRedisTarget(client *redis.Client, element string) *RedisTarget {
	if element == "" {
		element = ElementID
	}
	return &RedisTarget{
		client:  client,
		element: element,
	}
}

func (r *RedisTarget) key() string {
	return elementKeyPrefix + r.element
}

func (r *RedisTarget) Text(ctx context.Context) (string, bool, error) {
	s, err := r.client.Get(ctx, r.key()).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("output: get %s: %w", r.key(), err)
	}
	return s, true, nil
}

func (r *RedisTarget) SetText(ctx context.Context, text string) error {
	if err := r.client.Set(ctx, r.key(), text, 0).Err(); err != nil {
		return fmt.Errorf("output: set %s: %w", r.key(), err)
	}
	return nil
}
