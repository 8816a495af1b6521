package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AdminSession is the server-side record behind an opaque admin token.
// Tokens are stored by hash so a dump of the session store cannot be
// replayed as credentials.
type AdminSession struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

var ErrSessionNotFound = errors.New("admin session not found")

// Store holds admin sessions. Student sessions are not kept here: those are
// issued and verified by the external identity collaborator.
type Store interface {
	Create(ctx context.Context, sess AdminSession) (token string, err error)
	Get(ctx context.Context, token string) (*AdminSession, error)
	Delete(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(token string) string {
	return "admin_session:" + HashToken(token)
}

func (s *redisStore) Create(ctx context.Context, sess AdminSession) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*AdminSession, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess AdminSession
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
