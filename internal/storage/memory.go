package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the default backend: a mutex-guarded map plus an insertion
// order index. Contents live for the process lifetime only.
type MemoryStore[E Record[E], P Patch[E]] struct {
	mu    sync.RWMutex
	items map[string]E
	order []string
}

func NewMemoryStore[E Record[E], P Patch[E]]() *MemoryStore[E, P] {
	return &MemoryStore[E, P]{items: make(map[string]E)}
}

func (s *MemoryStore[E, P]) Create(_ context.Context, input E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := input.WithID(uuid.NewString())
	s.items[rec.RecordID()] = rec
	s.order = append(s.order, rec.RecordID())
	return rec, nil
}

func (s *MemoryStore[E, P]) GetAll(_ context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]E, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemoryStore[E, P]) GetByID(_ context.Context, id string) (E, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	return rec, ok, nil
}

func (s *MemoryStore[E, P]) GetByField(_ context.Context, field, value string) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []E{}
	for _, id := range s.order {
		doc, err := marshalRecord(s.items[id])
		if err != nil {
			return nil, err
		}
		match, err := fieldMatches(doc, field, value)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, s.items[id])
		}
	}
	return out, nil
}

func (s *MemoryStore[E, P]) Update(_ context.Context, id string, patch P) (E, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[id]
	if !ok {
		var zero E
		return zero, false, nil
	}
	updated := patch.Apply(rec)
	s.items[id] = updated
	return updated, true, nil
}

func (s *MemoryStore[E, P]) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Reset empties the store. Intended for tests and reseeding.
func (s *MemoryStore[E, P]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]E)
	s.order = nil
}
