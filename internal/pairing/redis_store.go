package pairing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"home-inventory/internal/models"
)

// Codes are kept in redis past their logical expiry so an expired code can
// be reported as expired rather than unknown.
const tombstoneGrace = 24 * time.Hour

// RedisStore keeps pairing codes in redis with a TTL.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(rdb *redis.Client, ctx context.Context) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: ctx}
}

func key(code string) string {
	return "paircode:" + code
}

func (s *RedisStore) Save(code models.PairingCode) error {
	// Drop the installation's previous code so only one is active.
	if old, err := s.rdb.Get(s.ctx, "paircode:inst:"+code.InstallationID.String()).Result(); err == nil {
		s.rdb.Del(s.ctx, key(old))
	}

	data, err := json.Marshal(code)
	if err != nil {
		return err
	}

	ttl := time.Until(code.ExpiresAt) + tombstoneGrace
	if err := s.rdb.Set(s.ctx, key(code.Code), data, ttl).Err(); err != nil {
		return err
	}
	return s.rdb.Set(s.ctx, "paircode:inst:"+code.InstallationID.String(), code.Code, ttl).Err()
}

func (s *RedisStore) Find(code string) (models.PairingCode, error) {
	data, err := s.rdb.Get(s.ctx, key(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PairingCode{}, ErrCodeNotFound
	}
	if err != nil {
		return models.PairingCode{}, err
	}

	var pc models.PairingCode
	if err := json.Unmarshal(data, &pc); err != nil {
		return models.PairingCode{}, err
	}
	if time.Now().After(pc.ExpiresAt) {
		return models.PairingCode{}, ErrCodeExpired
	}
	return pc, nil
}
