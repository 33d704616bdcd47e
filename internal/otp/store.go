// Package otp stores short-lived phone verification codes in redis.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCodeMismatch = errors.New("otp code mismatch")
	ErrCodeExpired  = errors.New("otp code expired or never sent")
)

// Store is the code store consumed by the profile service.
type Store interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Verify(ctx context.Context, userID uint, code string) error
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(userID uint) string {
	return fmt.Sprintf("otp:%d", userID)
}

// Issue generates a fresh 6-digit code and stores it with a TTL,
// replacing any earlier unexpired code for the same user.
func (s *RedisStore) Issue(ctx context.Context, userID uint) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.rdb.Set(ctx, key(userID), code, s.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify compares and consumes the stored code. A code verifies at most
// once; the GETDEL keeps two concurrent verifies from both succeeding.
func (s *RedisStore) Verify(ctx context.Context, userID uint, code string) error {
	stored, err := s.rdb.GetDel(ctx, key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCodeExpired
		}
		return err
	}
	if stored != code {
		return ErrCodeMismatch
	}
	return nil
}
