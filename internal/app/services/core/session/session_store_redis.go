package session

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type redisSessionStore struct {
	RedisRepository contracts.RedisRepository
}

func NewRedisSessionStore(redisRepository contracts.RedisRepository) contracts.SessionStore {
	return &redisSessionStore{
		RedisRepository: redisRepository,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionRedisKeyPrefix + sessionID
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (s *redisSessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
