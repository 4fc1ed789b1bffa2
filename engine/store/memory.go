// Package store provides ProfileStore implementations.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/horizonplan/income-engine/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	streams map[string]map[string]engine.IncomeStream
	rates   map[string]engine.BenefitRates
}

func NewMemory() *Memory {
	return &Memory{
		streams: make(map[string]map[string]engine.IncomeStream),
		rates:   make(map[string]engine.BenefitRates),
	}
}

func (m *Memory) SaveStream(_ context.Context, personID string, s engine.IncomeStream) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.streams[personID] == nil {
		m.streams[personID] = make(map[string]engine.IncomeStream)
	}
	m.streams[personID][s.ID] = s
	return nil
}

func (m *Memory) ListStreams(_ context.Context, personID string) ([]engine.IncomeStream, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byID := m.streams[personID]
	result := make([]engine.IncomeStream, 0, len(byID))
	for _, s := range byID {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) DeleteStream(_ context.Context, personID, streamID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byID := m.streams[personID]
	if _, ok := byID[streamID]; !ok {
		return fmt.Errorf("delete %s/%s: %w", personID, streamID, engine.ErrStreamNotFound)
	}
	delete(byID, streamID)
	return nil
}

func (m *Memory) SaveBenefitRates(_ context.Context, personID string, r engine.BenefitRates) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates[personID] = r
	if m.streams[personID] == nil {
		m.streams[personID] = make(map[string]engine.IncomeStream)
	}
	return nil
}

func (m *Memory) BenefitRates(_ context.Context, personID string) (engine.BenefitRates, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rates[personID], nil
}

func (m *Memory) ListPersons(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.streams))
	for id := range m.streams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *Memory) LoadProfile(ctx context.Context) ([]engine.PersonInput, error) {
	ids, err := m.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	persons := make([]engine.PersonInput, 0, len(ids))
	for _, id := range ids {
		streams, err := m.ListStreams(ctx, id)
		if err != nil {
			return nil, err
		}
		rates, err := m.BenefitRates(ctx, id)
		if err != nil {
			return nil, err
		}
		persons = append(persons, engine.PersonInput{ID: id, Streams: streams, Benefits: rates})
	}
	return persons, nil
}

var _ engine.ProfileStore = (*Memory)(nil)
