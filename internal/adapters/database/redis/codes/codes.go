package codes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
)

const (
	keyPrefix      = "login_code:"
	attemptsPrefix = "login_attempts:"
)

type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Get(ctx context.Context, email string) (dto.LoginCode, error) {
	codeData, err := s.redis.Get(ctx, key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.LoginCode{}, errorz.ErrInvalidCode
		}
		return dto.LoginCode{}, err
	}
	code, fullName, _ := strings.Cut(codeData, ":")
	if code == "" {
		return dto.LoginCode{}, errorz.ErrInvalidCode
	}
	return dto.LoginCode{
		Code:     code,
		FullName: fullName,
	}, nil
}

// Set stores a new code and resets the failed attempts counted against the
// previous one.
func (s *Storage) Set(ctx context.Context, email string, code dto.LoginCode, expiration time.Duration) error {
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key(email), code.Code+":"+code.FullName, expiration)
		pipe.Del(ctx, attemptsKey(email))
		return nil
	})
	return err
}

// Fail counts a wrong guess for email and returns the total so far. The
// counter expires with the code it guards.
func (s *Storage) Fail(ctx context.Context, email string, expiration time.Duration) (int64, error) {
	attempts, err := s.redis.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return 0, err
	}
	if attempts == 1 {
		if err = s.redis.Expire(ctx, attemptsKey(email), expiration).Err(); err != nil {
			return 0, err
		}
	}
	return attempts, nil
}

func (s *Storage) Clear(ctx context.Context, email string) error {
	return s.redis.Del(ctx, key(email), attemptsKey(email)).Err()
}

func (s *Storage) Close() error {
	return s.redis.Close()
}

func key(email string) string {
	return keyPrefix + strings.ToLower(email)
}

func attemptsKey(email string) string {
	return attemptsPrefix + strings.ToLower(email)
}
