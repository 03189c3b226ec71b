package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// CodeRepository stores verification codes keyed by phone. Writing a new
// code for a phone replaces any previous one; entries evict at TTL.
type CodeRepository interface {
	SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error
	// GetCode returns "" when no live code exists for the phone.
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error
}

const codeKeyPrefix = "sms_code:"

type redisCodeRepository struct {
	rdb *redis.Client
}

func NewRedisCodeRepository(rdb *redis.Client) CodeRepository {
	return &redisCodeRepository{rdb: rdb}
}

func (r *redisCodeRepository) SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	return r.rdb.Set(ctx, codeKeyPrefix+phone, code, ttl).Err()
}

func (r *redisCodeRepository) GetCode(ctx context.Context, phone string) (string, error) {
	code, err := r.rdb.Get(ctx, codeKeyPrefix+phone).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return code, nil
}

func (r *redisCodeRepository) DeleteCode(ctx context.Context, phone string) error {
	return r.rdb.Del(ctx, codeKeyPrefix+phone).Err()
}

// memoryCodeRepository backs dev setups and tests where no redis is
// configured. Expiry is checked lazily on read.
type memoryCodeRepository struct {
	mu    sync.Mutex
	codes map[string]memoryCode
}

type memoryCode struct {
	code      string
	expiresAt time.Time
}

func NewMemoryCodeRepository() CodeRepository {
	return &memoryCodeRepository{codes: make(map[string]memoryCode)}
}

func (r *memoryCodeRepository) SaveCode(_ context.Context, phone, code string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[phone] = memoryCode{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (r *memoryCodeRepository) GetCode(_ context.Context, phone string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.codes[phone]
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(r.codes, phone)
		return "", nil
	}
	return entry.code, nil
}

func (r *memoryCodeRepository) DeleteCode(_ context.Context, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, phone)
	return nil
}
