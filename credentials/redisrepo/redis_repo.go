package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials"
	"github.com/redis/go-redis/v9"
)

const opTimeout = 3 * time.Second

var _ credentials.Repo = (*RedisRepo)(nil)

// RedisRepo shares credentials between processes through Redis. Keys are
// namespaced with a prefix so Clear only touches this repo's keys.
type RedisRepo struct {
	client redis.UniversalClient
	prefix string
}

var ErrEmptyPrefix = errors.New("redis key prefix must not be empty")

func New(client redis.UniversalClient, prefix string) (*RedisRepo, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	return &RedisRepo{client: client, prefix: prefix}, nil
}

// Connect builds a client for addr and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *RedisRepo) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", credentials.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("[redisrepo Get] %w", err)
	}
	return value, nil
}

func (r *RedisRepo) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("[redisrepo Set] %w", err)
	}
	return nil
}

func (r *RedisRepo) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("[redisrepo Delete] %w", err)
	}
	return nil
}

// Clear collects every prefixed key and removes them with a single DEL.
func (r *RedisRepo) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var keys []string
	iter := r.client.Scan(ctx, 0, globEscaper.Replace(r.prefix)+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("[redisrepo Clear] scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("[redisrepo Clear] delete: %w", err)
	}
	return nil
}

// globEscaper quotes the SCAN MATCH metacharacters so a prefix matches literally.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
