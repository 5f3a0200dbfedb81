package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	Client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedis(cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// AddExpiring adds member to the sorted set at key, scored by now+ttl, drops
// members that expired before now and lets the whole key expire with the
// newest member.
func (r *Redis) AddExpiring(ctx context.Context, key, member string, now time.Time, ttl time.Duration) error {
	expiresAt := now.Add(ttl)
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(expiresAt.UnixMilli()), Member: member})
		pipe.ZRemRangeByScore(ctx, key, "-inf", scoreMax(now))
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// LiveMembers returns the members of the sorted set at key whose expiry is
// after now, ordered by expiry.
func (r *Redis) LiveMembers(ctx context.Context, key string, now time.Time) ([]string, error) {
	return r.Client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: "(" + scoreMax(now),
		Max: "+inf",
	}).Result()
}

func scoreMax(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
