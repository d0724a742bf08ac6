package resultstore

import (
	"context"
	"sync"

	"golden-key-funnel/internal/domain/activation"
	"golden-key-funnel/internal/pkg/errs"
)

// KeyFunc picks the scope identifier a store is keyed by.
type KeyFunc func(activation.Scope) string

func BySession(s activation.Scope) string { return s.SessionID }

func ByVisitor(s activation.Scope) string { return s.VisitorID }

// MemoryStore keeps activations in process memory. It backs either scope when the
// external backend is disabled.
type MemoryStore struct {
	key KeyFunc

	mu      sync.RWMutex
	entries map[string]activation.PersistedActivation
}

func NewMemoryStore(key KeyFunc) *MemoryStore {
	return &MemoryStore{
		key:     key,
		entries: make(map[string]activation.PersistedActivation),
	}
}

func (m *MemoryStore) Save(_ context.Context, scope activation.Scope, a activation.PersistedActivation) error {
	id := m.key(scope)
	if id == "" {
		return errs.Mark(errs.New("memory store: empty scope id"), errs.ErrStorageWrite)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = a
	return nil
}

func (m *MemoryStore) Load(_ context.Context, scope activation.Scope) (activation.PersistedActivation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.entries[m.key(scope)]
	if !ok {
		return activation.PersistedActivation{}, errs.ErrActivationNotFound
	}
	return a, nil
}
