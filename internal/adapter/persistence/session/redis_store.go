package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"autopaint_quotation/internal/domain/wizard"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "wizard:session:"

// RedisStore shares wizard sessions between service instances. Each session
// is one JSON value whose expiry is refreshed on every save.
type RedisStore struct {
	rc  *redis.Client
	ttl time.Duration
}

var _ interfaces.IWizardSessionStore = (*RedisStore)(nil)

func NewRedisStore(rc *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rc: rc, ttl: ttl}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*wizard.Wizard, error) {
	bs, err := s.rc.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var w wizard.Wizard
	if err := json.Unmarshal(bs, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *RedisStore) Save(ctx context.Context, w *wizard.Wizard) error {
	bs, err := json.Marshal(w)
	if err != nil {
		return err
	}
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	return s.rc.Set(ctx, redisKey(w.ID), bs, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rc.Del(ctx, redisKey(id)).Err()
}
