package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects the Redis endpoint. Zero timeouts use the package defaults.
type Options struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (o Options) client() (*redis.Options, error) {
	addr := strings.TrimSpace(o.Addr)
	if addr == "" {
		return nil, errors.New("redis: addr is empty")
	}
	if o.DB < 0 {
		return nil, errors.New("redis: db index must not be negative")
	}

	return &redis.Options{
		Addr:         addr,
		Password:     o.Password,
		DB:           o.DB,
		PoolSize:     o.PoolSize,
		DialTimeout:  orDefault(o.DialTimeout, 5*time.Second),
		ReadTimeout:  orDefault(o.ReadTimeout, 3*time.Second),
		WriteTimeout: orDefault(o.WriteTimeout, 3*time.Second),
	}, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// NewRedisClient builds a go-redis client and checks it with PING within
// the dial timeout.
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	ro, err := opts.client()
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(ro)

	pingCtx, cancel := context.WithTimeout(ctx, ro.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", ro.Addr, err)
	}
	return client, nil
}
