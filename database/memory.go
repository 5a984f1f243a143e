package database

import (
	"context"
	"sync"

	"kucukaslan/eventlab/domain"
)

// MemorySummaryCache is the process-local summary cache used when Redis is
// disabled. Once full, the oldest entry is evicted first.
type MemorySummaryCache struct {
	mu       sync.Mutex
	capacity int
	order    []string
	entries  map[string]domain.KPISummary
}

func NewMemorySummaryCache(capacity int) *MemorySummaryCache {
	if capacity < 1 {
		capacity = 1
	}
	return &MemorySummaryCache{
		capacity: capacity,
		entries:  make(map[string]domain.KPISummary, capacity),
	}
}

func (m *MemorySummaryCache) GetSummary(_ context.Context, fingerprint string) (*domain.KPISummary, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	summary, ok := m.entries[fingerprint]
	if !ok {
		return nil, false, nil
	}
	return &summary, true, nil
}

func (m *MemorySummaryCache) SetSummary(_ context.Context, fingerprint string, summary domain.KPISummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[fingerprint]; !ok {
		if len(m.order) == m.capacity {
			delete(m.entries, m.order[0])
			m.order = m.order[1:]
		}
		m.order = append(m.order, fingerprint)
	}
	m.entries[fingerprint] = summary
	return nil
}

// Len is the number of cached summaries.
func (m *MemorySummaryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
