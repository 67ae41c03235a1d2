package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. It is durable only for the
// lifetime of the process and is meant for tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = clone(value)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, w Writer) error) error {
	w := &stagedWriter{}
	if err := fn(ctx, w); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range w.ops {
		if o.delete {
			delete(m.data, o.key)
			continue
		}
		m.data[o.key] = o.value
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
