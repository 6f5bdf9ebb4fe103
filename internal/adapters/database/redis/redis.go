package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Badsnus/club-directory/internal/adapters/database/redis/codes"
	"github.com/Badsnus/club-directory/internal/adapters/database/redis/sessions"
)

type Client struct {
	Codes    *codes.Storage
	Sessions *sessions.Storage
}

type Options struct {
	Host     string
	Port     int
	Password string
}

func New(ctx context.Context, opts Options) (*Client, error) {
	codeStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := codeStorage.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping codes storage: %w", err)
	}

	sessionStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       1,
	})
	if err := sessionStorage.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping sessions storage: %w", err)
	}

	return &Client{
		Codes:    codes.NewStorage(codeStorage),
		Sessions: sessions.NewStorage(sessionStorage),
	}, nil
}

func (c *Client) Close() error {
	if err := c.Codes.Close(); err != nil {
		return err
	}
	return c.Sessions.Close()
}
