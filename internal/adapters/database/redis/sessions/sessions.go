// Package sessions stores scs session data in redis.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

func (s *Storage) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

func (s *Storage) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

func (s *Storage) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	b, err := s.redis.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// CommitCtx stores the session until expiry; redis drops it afterwards.
func (s *Storage) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return s.DeleteCtx(ctx, token)
	}
	return s.redis.Set(ctx, keyPrefix+token, b, ttl).Err()
}

func (s *Storage) DeleteCtx(ctx context.Context, token string) error {
	return s.redis.Del(ctx, keyPrefix+token).Err()
}

func (s *Storage) Close() error {
	return s.redis.Close()
}
