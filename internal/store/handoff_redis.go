package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
	"github.com/practice-drill/backend/internal/id"
)

// RedisHandoff keeps sessions in Redis with a sliding TTL. Keys carry a
// prefix generated per process, so a restarted server never sees the
// sessions of its predecessor.
type RedisHandoff struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ HandoffStore = (*RedisHandoff)(nil)

func NewRedisHandoff(client *redis.Client, ttl time.Duration) *RedisHandoff {
	return &RedisHandoff{
		client: client,
		prefix: "practice:" + id.GenerateID() + ":session:",
		ttl:    ttl,
	}
}

func (r *RedisHandoff) key(id string) string {
	return r.prefix + id
}

func (r *RedisHandoff) SaveSession(ctx context.Context, s practicesession.PracticeSession) error {
	data, err := encodeSession(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err()
}

func (r *RedisHandoff) GetSession(ctx context.Context, id string) (practicesession.PracticeSession, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return practicesession.PracticeSession{}, ErrNotFound
	}
	if err != nil {
		return practicesession.PracticeSession{}, err
	}

	if r.ttl > 0 {
		if err := r.client.Expire(ctx, r.key(id), r.ttl).Err(); err != nil {
			return practicesession.PracticeSession{}, err
		}
	}

	return decodeSession(data)
}

func (r *RedisHandoff) DeleteSession(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}
