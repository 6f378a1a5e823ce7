package storage

import (
	"context"
	"sync"

	"max.ks1230/currconv/internal/entity/currency"
)

// InMemStorage keeps the snapshot for the lifetime of the process.
type InMemStorage struct {
	mu       sync.RWMutex
	snapshot *currency.Snapshot
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{}
}

func (s *InMemStorage) GetSnapshot(_ context.Context) (*currency.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, nil
	}
	return copySnapshot(*s.snapshot), nil
}

func (s *InMemStorage) SaveSnapshot(_ context.Context, snapshot currency.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = copySnapshot(snapshot)
	return nil
}

func copySnapshot(src currency.Snapshot) *currency.Snapshot {
	rates := make(map[string]float64, len(src.Rates))
	for k, v := range src.Rates {
		rates[k] = v
	}
	return &currency.Snapshot{Rates: rates, Timestamp: src.Timestamp}
}
