package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-memory Store for tests. It round-trips documents
// through JSON so tests observe the same field behavior as the file
// store, and it can be told to fail reads or writes.
type Memory struct {
	mu   sync.Mutex
	data []byte

	FailLoad error // when set, Load returns this error
	FailSave error // when set, Save returns this error
}

// NewMemory creates an empty in-memory store. Load returns ErrNotExist
// until the first Save.
func NewMemory() *Memory { return &Memory{} }

// Load unmarshals the stored document into dest.
func (m *Memory) Load(_ context.Context, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad != nil {
		return m.FailLoad
	}
	if m.data == nil {
		return ErrNotExist
	}
	if err := json.Unmarshal(m.data, dest); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// Save marshals src and replaces the stored document.
func (m *Memory) Save(_ context.Context, src any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	m.data = data
	return nil
}

// Bytes returns the currently persisted document, or nil if none.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
