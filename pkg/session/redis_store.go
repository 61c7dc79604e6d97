package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of Redis. Each session lives under its
// token key with a native TTL, and a per-user set indexes tokens so
// DeleteByUsername does not scan the keyspace. Because Redis expires keys
// itself, a token presented long after expiry reports ErrSessionNotFound
// rather than ErrSessionExpired; the Manager treats both as terminal.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store. The prefix namespaces
// keys so several subsystems can share one database.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "credkit:session"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) tokenKey(token string) string {
	return fmt.Sprintf("%s:t:%s", r.prefix, token)
}

func (r *RedisStore) userKey(username string) string {
	return fmt.Sprintf("%s:u:%s", r.prefix, username)
}

// Create stores a new session under its token key and indexes it by user.
func (r *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrInvalidSession
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenKey(session.Token), data, ttl)
	pipe.SAdd(ctx, r.userKey(session.Username), session.Token)
	// The index outlives individual sessions slightly; stale members are
	// dropped during DeleteByUsername.
	pipe.Expire(ctx, r.userKey(session.Username), ttl+time.Hour)
	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves a session by token.
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, r.tokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Update replaces an existing session and resets its TTL.
func (r *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	exists, err := r.client.Exists(ctx, r.tokenKey(session.Token)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrInvalidSession
	}

	return r.client.Set(ctx, r.tokenKey(session.Token), data, ttl).Err()
}

// Delete removes a session by token and its user-index entry.
func (r *RedisStore) Delete(ctx context.Context, token string) error {
	sess, err := r.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.tokenKey(token))
	pipe.SRem(ctx, r.userKey(sess.Username), token)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteExpired is a no-op for Redis, which expires token keys natively.
func (r *RedisStore) DeleteExpired(ctx context.Context, now time.Time) error {
	return nil
}

// DeleteByUsername removes every live session for the user.
func (r *RedisStore) DeleteByUsername(ctx context.Context, username string) (int, error) {
	tokens, err := r.client.SMembers(ctx, r.userKey(username)).Result()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, token := range tokens {
		// Only count tokens that were still live; expired members linger
		// in the set until this sweep.
		exists, err := r.client.Exists(ctx, r.tokenKey(token)).Result()
		if err != nil {
			return count, err
		}
		if exists > 0 {
			if err := r.client.Del(ctx, r.tokenKey(token)).Err(); err != nil {
				return count, err
			}
			count++
		}
	}

	if err := r.client.Del(ctx, r.userKey(username)).Err(); err != nil {
		return count, err
	}

	return count, nil
}
