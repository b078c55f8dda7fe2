package store

import (
	"sync"

	forth "github.com/jcorbin/goforth"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu   sync.Mutex
	defs []forth.Definition
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Append records a definition.
func (m *Memory) Append(def forth.Definition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs = append(m.defs, def)
	return nil
}

// Definitions returns a copy of all recorded definitions.
func (m *Memory) Definitions() ([]forth.Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defs := make([]forth.Definition, len(m.defs))
	copy(defs, m.defs)
	return defs, nil
}

// Reset discards all recorded definitions.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs = nil
	return nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error { return nil }
