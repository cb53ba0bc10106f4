package redis

import (
	"context"
	"strconv"
	"time"

	"socialfeed/internal/core/session"
	sessionPort "socialfeed/internal/ports/session"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// SessionRepositoryRedis keeps each session as a hash that expires with the
// session itself.
type SessionRepositoryRedis struct {
	Client *redis.Client
}

func NewSessionRepositoryRedis(client *redis.Client) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{
		Client: client,
	}
}

func (r *SessionRepositoryRedis) Save(ctx context.Context, s *session.Session, ttl time.Duration) error {
	key := sessionKeyPrefix + s.ID
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"user_id":    s.UserID,
			"expires_at": s.ExpiresAt.Unix(),
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (r *SessionRepositoryRedis) Find(ctx context.Context, id string) (*session.Session, error) {
	fields, err := r.Client.HGetAll(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	// HGETALL on a missing key is an empty map, not redis.Nil
	if len(fields) == 0 || fields["user_id"] == "" {
		return nil, sessionPort.ErrSessionNotFound
	}

	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, sessionPort.ErrSessionNotFound
	}
	return &session.Session{
		ID:        id,
		UserID:    fields["user_id"],
		ExpiresAt: time.Unix(expiresAt, 0),
	}, nil
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+id).Err()
}
