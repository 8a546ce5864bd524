package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *redisStore {
	return &redisStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *redisStore) Create(ctx context.Context, sess Session) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, sessionKey(token), payload, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sess := &Session{}
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
