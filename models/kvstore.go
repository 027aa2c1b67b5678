package models

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Client-side preference keys. These mirror what the storefront persists per
// visitor: bookmark flags, one vote per FAQ, capped search history and the
// legal-document bookmark list.
func FAQBookmarkKey(clientID string, faqID int) string {
	return fmt.Sprintf("%s:faq-bookmark-%d", clientID, faqID)
}

func FAQVoteKey(clientID string, faqID int) string {
	return fmt.Sprintf("%s:faq-vote-%d", clientID, faqID)
}

func FAQSearchHistoryKey(clientID string) string {
	return fmt.Sprintf("%s:faq-search-history", clientID)
}

func LegalBookmarksKey(clientID string) string {
	return fmt.Sprintf("%s:legalBookmarks", clientID)
}

// KVStore is the storage behind visitor preferences. All operations are
// best-effort: callers log failures and fall back to defaults instead of
// surfacing errors to the storefront.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type RedisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// MemoryKVStore backs preferences when redis is unavailable, and tests.
type MemoryKVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{data: map[string]string{}}
}

func (s *MemoryKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok, nil
}

func (s *MemoryKVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryKVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// NewKVStore picks redis when connected, otherwise an in-process map.
func NewKVStore() KVStore {
	if RedisClient != nil {
		return NewRedisKVStore(RedisClient)
	}
	log.Println("Preference store running in-memory (redis unavailable)")
	return NewMemoryKVStore()
}
