package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the credential in process memory only. It is used when
// no storage path is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = token, true
	return nil
}

func (m *MemoryStore) Load(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set || m.token == "" {
		return "", false
	}
	return m.token, true
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = "", false
	return nil
}

func (m *MemoryStore) CurrentIdentity(ctx context.Context) (string, bool) {
	token, ok := m.Load(ctx)
	if !ok {
		return "", false
	}
	return DecodeIdentity(token)
}
