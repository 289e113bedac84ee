package verification

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ReferenceTTL bounds how long a vendor reference ID stays usable. The
// vendor's OTPs expire well within this window.
const ReferenceTTL = 10 * time.Minute

// ReferenceStore keeps the vendor reference ID issued for a verification
// attempt, keyed by wizard session.
type ReferenceStore interface {
	Put(ctx context.Context, sessionID, refID string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

const refKeyPrefix = "verification:ref:"

// RedisReferenceStore backs ReferenceStore with Redis and the shared TTL.
type RedisReferenceStore struct {
	client *redis.Client
}

func NewRedisReferenceStore(client *redis.Client) *RedisReferenceStore {
	return &RedisReferenceStore{client: client}
}

func (s *RedisReferenceStore) Put(ctx context.Context, sessionID, refID string) error {
	return s.client.Set(ctx, refKeyPrefix+sessionID, refID, ReferenceTTL).Err()
}

func (s *RedisReferenceStore) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, refKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisReferenceStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, refKeyPrefix+sessionID).Err()
}

// MemoryReferenceStore is an in-process ReferenceStore used in tests.
type MemoryReferenceStore struct {
	mu   sync.Mutex
	refs map[string]memoryRef
}

type memoryRef struct {
	refID   string
	expires time.Time
}

func NewMemoryReferenceStore() *MemoryReferenceStore {
	return &MemoryReferenceStore{refs: make(map[string]memoryRef)}
}

func (s *MemoryReferenceStore) Put(_ context.Context, sessionID, refID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs[sessionID] = memoryRef{refID: refID, expires: time.Now().Add(ReferenceTTL)}
	return nil
}

func (s *MemoryReferenceStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, ok := s.refs[sessionID]
	if !ok || time.Now().After(ref.expires) {
		delete(s.refs, sessionID)
		return "", nil
	}
	return ref.refID, nil
}

func (s *MemoryReferenceStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refs, sessionID)
	return nil
}
