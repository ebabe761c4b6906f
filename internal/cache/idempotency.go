package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrInFlight = errors.New("request with this idempotency key is in progress")
	ErrNotFound = errors.New("idempotency key not found")
)

// StoredResponse is a completed response replayed for a repeated key.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

const pendingMarker = "pending"

// IdempotencyStore reserves a key before the request runs and saves the
// response after. A reserved key without a response reports ErrInFlight.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve returns true if the caller now owns the key.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKey(key), pendingMarker, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*StoredResponse, error) {
	raw, err := s.client.Get(ctx, idempotencyKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}
	if string(raw) == pendingMarker {
		return nil, ErrInFlight
	}

	var resp StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode stored response: %w", err)
	}
	return &resp, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, resp *StoredResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode stored response: %w", err)
	}
	if err := s.client.Set(ctx, idempotencyKey(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save idempotency key: %w", err)
	}
	return nil
}

// Release drops a reservation whose request failed before producing a response.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, idempotencyKey(key)).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

type entry struct {
	resp    *StoredResponse
	expires time.Time
}

type MemoryIdempotencyStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
	now   func() time.Time
}

func NewMemoryIdempotencyStore(ttl time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{ttl: ttl, items: make(map[string]entry), now: time.Now}
}

func (s *MemoryIdempotencyStore) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.items[key]; ok && s.now().Before(e.expires) {
		return false, nil
	}
	s.items[key] = entry{expires: s.now().Add(s.ttl)}
	return true, nil
}

func (s *MemoryIdempotencyStore) Get(_ context.Context, key string) (*StoredResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok || !s.now().Before(e.expires) {
		return nil, ErrNotFound
	}
	if e.resp == nil {
		return nil, ErrInFlight
	}
	cp := *e.resp
	return &cp, nil
}

func (s *MemoryIdempotencyStore) Save(_ context.Context, key string, resp *StoredResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *resp
	s.items[key] = entry{resp: &cp, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
