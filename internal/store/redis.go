// redis.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"valentine.share/internal/models"
)

var _ Store = (*RedisStore)(nil)

// RedisStore keeps one JSON document per surprise under "surprise:<id>".
// Documents have no TTL; records persist indefinitely.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(options *redis.Options) (*RedisStore, error) {
	client := redis.NewClient(options)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Save(ctx context.Context, s *models.Surprise) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := r.client.Set(ctx, surpriseKey(s.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func (r *RedisStore) FindByID(ctx context.Context, id string) (*models.Surprise, error) {
	data, err := r.client.Get(ctx, surpriseKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var s models.Surprise
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding surprise %s: %w", id, err)
	}
	return &s, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func surpriseKey(id string) string {
	return "surprise:" + id
}
