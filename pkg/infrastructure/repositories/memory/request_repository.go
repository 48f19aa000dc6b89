package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// RequestStore is an in-memory persistence collaborator. It assigns durable
// uuid identifiers on save; records are stored by value and never mutated
// after insertion.
type RequestStore struct {
	mu    sync.RWMutex
	byID  map[string]entities.MaterialRequest
	order []string
}

// NewRequestStore creates an empty in-memory request store.
func NewRequestStore() *RequestStore {
	return &RequestStore{byID: make(map[string]entities.MaterialRequest)}
}

// Save persists the record and returns its durable identifier.
func (s *RequestStore) Save(ctx context.Context, req entities.MaterialRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.byID[id] = req
	s.order = append(s.order, id)
	return id, nil
}

// Get returns the record stored under a durable identifier.
func (s *RequestStore) Get(ctx context.Context, id string) (entities.MaterialRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.byID[id]
	if !ok {
		return entities.MaterialRequest{}, fmt.Errorf("request not found: %s", id)
	}
	return req, nil
}

// List returns persisted records in insertion order.
func (s *RequestStore) List(ctx context.Context) ([]entities.MaterialRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.MaterialRequest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}
