package store

import (
	"context"
	"sync"

	"github.com/saxenaaman628/proposal-voting-system/internal/models"
)

var _ Store = (*Memory)(nil)

type Memory struct {
	mu    sync.RWMutex
	rows  map[string]models.Proposal
	order []string
}

func NewMemory() *Memory {
	return &Memory{rows: make(map[string]models.Proposal)}
}

func (m *Memory) Get(_ context.Context, id string) (models.Proposal, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.rows[id]
	if !ok {
		return models.Proposal{}, false, nil
	}
	return p.Clone(), true, nil
}

func (m *Memory) Insert(_ context.Context, p models.Proposal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; !ok {
		m.order = append(m.order, p.ID)
	}
	m.rows[p.ID] = p.Clone()
	return nil
}

func (m *Memory) Remove(_ context.Context, id string) (models.Proposal, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return models.Proposal{}, false, nil
	}
	delete(m.rows, id)
	for i, k := range m.order {
		if k == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return p, true, nil
}

func (m *Memory) Values(_ context.Context) ([]models.Proposal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Proposal, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rows[id].Clone())
	}
	return out, nil
}
