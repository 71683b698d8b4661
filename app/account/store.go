package account

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrUnknownAccount is returned by a CredentialStore that holds nothing for an email.
var ErrUnknownAccount = errors.New("unknown account")

// CredentialStore keeps one password hash per email address.
type CredentialStore interface {
	Save(ctx context.Context, email string, passwordHash []byte) error
	Lookup(ctx context.Context, email string) ([]byte, error)
}

// MemoryStore is a process-local CredentialStore.
type MemoryStore struct {
	mu     sync.RWMutex
	hashes map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{hashes: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, email string, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[email] = append([]byte(nil), passwordHash...)
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, email string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.hashes[email]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return append([]byte(nil), hash...), nil
}

const redisKeyPrefix = "storefront:credentials:"

// RedisStore is a CredentialStore shared by every instance talking to the same redis.
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, email string, passwordHash []byte) error {
	return s.rdb.Set(ctx, redisKeyPrefix+email, passwordHash, 0).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, email string) ([]byte, error) {
	hash, err := s.rdb.Get(ctx, redisKeyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrUnknownAccount
	}
	return hash, err
}
