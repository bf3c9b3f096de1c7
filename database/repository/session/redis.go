package sessionRepo

import (
	"context"
	"encoding/json"
	"time"

	"bizbuddy/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration // 0 means sessions never expire
}

// NewRedisSessionStore returns a Store backed by Redis. A zero ttl keeps
// sessions until confirm or overwrite.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) Store {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Get(ctx context.Context, customerID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+customerID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Put(ctx context.Context, customerID string, session *models.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+customerID, b, s.ttl).Err()
}

func (s *redisSessionStore) Delete(ctx context.Context, customerID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+customerID).Err()
}
