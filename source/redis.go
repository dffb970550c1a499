package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/uts-harness/runconfig/framework"
)

const defaultRedisAddress = "localhost:6379"

// RedisGetter is the part of the Redis client API that a redis source uses. *redis.Client
// implements it.
type RedisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisSource struct {
	location string
	key      string
	client   RedisGetter
	logger   framework.Logger
}

func newRedisSource(u *url.URL, opts openOptions) (*redisSource, error) {
	key, err := keyFromPath(u)
	if err != nil {
		return nil, err
	}
	client := opts.redis
	if client == nil {
		options := &redis.Options{Addr: u.Host}
		if options.Addr == "" {
			options.Addr = defaultRedisAddress
		}
		if u.User != nil {
			options.Username = u.User.Username()
			options.Password, _ = u.User.Password()
		}
		if db := u.Query().Get("db"); db != "" {
			n, err := strconv.Atoi(db)
			if err != nil {
				return nil, fmt.Errorf("invalid Redis database number %q", db)
			}
			options.DB = n
		}
		client = redis.NewClient(options)
	}
	return &redisSource{location: redactLocation(u), key: key, client: client, logger: opts.logger}, nil
}

func (s *redisSource) Location() string { return s.location }

func (s *redisSource) Read(ctx context.Context) ([]byte, error) {
	s.logger.Printf("reading Redis key %q", s.key)
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: no Redis key %q", ErrNotFound, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("Redis get of %q failed: %w", s.key, err)
	}
	return data, nil
}
