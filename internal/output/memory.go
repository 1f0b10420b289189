package output

import (
	"context"
	"sync"
)

type Memory struct {
	mu   sync.RWMutex
	text string
	set  bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Text(ctx context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text, m.set, nil
}

func (m *Memory) SetText(ctx context.Context, text string) error {
	m.mu.Lock()
	m.text = text
	m.set = true
	m.mu.Unlock()
	return nil
}
