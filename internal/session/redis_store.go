package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rahadian/member-portal/pkg/helpers"
)

const keyPrefix = "session:"

// RedisStore keeps session records as JSON values under session:<id> with
// a per-record TTL. Expiry is Redis's own: expired keys simply stop
// resolving, no active invalidation.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	found, err := helpers.RedisGetJSON(ctx, s.rdb, keyPrefix+id, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, rec *Record, ttl time.Duration) error {
	return helpers.RedisSetJSON(ctx, s.rdb, keyPrefix+id, rec, ttl)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return helpers.RedisDel(ctx, s.rdb, keyPrefix+id)
}

var _ Store = (*RedisStore)(nil)
