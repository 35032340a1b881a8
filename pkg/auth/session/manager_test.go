package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return redislib.Nil
	}
	return nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) SessionKey(sessionID string) string {
	return fmt.Sprintf("sess:%s", sessionID)
}

func TestManagerCreateAndResolve(t *testing.T) {
	store := newMockStore()
	manager := &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}

	ctx := context.Background()
	userID := uuid.New()
	sessionID, err := manager.Create(ctx, userID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored := store.data[store.SessionKey(sessionID)]; stored != userID.String() {
		t.Fatalf("expected stored user id %q, got %q", userID, stored)
	}

	resolved, err := manager.Resolve(ctx, sessionID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != userID {
		t.Fatalf("expected user %s, got %s", userID, resolved)
	}

	if _, err := manager.Resolve(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestManagerRevoke(t *testing.T) {
	store := newMockStore()
	manager := &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}

	ctx := context.Background()
	sessionID, err := manager.Create(ctx, uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := manager.Revoke(ctx, sessionID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := manager.Resolve(ctx, sessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session not found after revoke, got %v", err)
	}
}

func TestManagerCreateRejectsNilUser(t *testing.T) {
	store := newMockStore()
	manager := &Manager{store: store, keyer: store, ttl: time.Hour}

	if _, err := manager.Create(context.Background(), uuid.Nil); err == nil {
		t.Fatal("expected error for nil user id")
	}
}
