package repository

import (
	"context"
	"sort"
	"time"

	"github.com/aouiniamine/sofia-ops/internal/cache"
)

const keyPrefix = "sofia:sessions:"

// SessionRepository tracks which identities hold a live token for a room.
// Entries expire together with the token they describe.
type SessionRepository interface {
	Record(ctx context.Context, room, identity string, ttl time.Duration) error
	ListIdentities(ctx context.Context, room string) ([]string, error)
	Ping(ctx context.Context) error
}

type sessionRepository struct {
	cache *cache.Redis
	now   func() time.Time
}

func New(c *cache.Redis) SessionRepository {
	return &sessionRepository{cache: c, now: time.Now}
}

func (r *sessionRepository) Record(ctx context.Context, room, identity string, ttl time.Duration) error {
	return r.cache.AddExpiring(ctx, RoomKey(room), identity, r.now(), ttl)
}

func (r *sessionRepository) ListIdentities(ctx context.Context, room string) ([]string, error) {
	identities, err := r.cache.LiveMembers(ctx, RoomKey(room), r.now())
	if err != nil {
		return nil, err
	}
	sort.Strings(identities)
	return identities, nil
}

func (r *sessionRepository) Ping(ctx context.Context) error {
	return r.cache.Ping(ctx)
}

// RoomKey is the sorted set holding one room's sessions. Each room has its own
// key, so room names are never matched as patterns.
func RoomKey(room string) string {
	return keyPrefix + room
}
