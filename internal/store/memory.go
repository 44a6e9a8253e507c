package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// MemoryStore implements Store in process memory. Contents are lost when the
// process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	ids    *IDAllocator
	phones map[int64]domain.Phone
	order  []int64
}

// NewMemoryStore creates an empty MemoryStore that draws ids from ids. A nil
// allocator gets a fresh one.
func NewMemoryStore(ids *IDAllocator) *MemoryStore {
	if ids == nil {
		ids = NewIDAllocator()
	}
	return &MemoryStore{
		ids:    ids,
		phones: make(map[int64]domain.Phone),
	}
}

// Ping always succeeds; there is no connection to lose.
func (*MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreatePhone validates p, assigns it an id and stores a copy.
// p is left untouched when validation fails.
func (s *MemoryStore) CreatePhone(_ context.Context, p *domain.Phone) error {
	candidate := *p
	candidate.ApplyDefaults()
	if err := candidate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = s.ids.Next()
	s.insert(&candidate)
	*p = candidate
	return nil
}

// CreatePhones validates the whole batch before storing any of it.
// The slice is left untouched when any phone fails validation.
func (s *MemoryStore) CreatePhones(_ context.Context, phones []domain.Phone) error {
	batch := slices.Clone(phones)
	for i := range batch {
		batch[i].ApplyDefaults()
		if err := batch[i].Validate(); err != nil {
			return fmt.Errorf("phone %d: %w", i+1, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range batch {
		batch[i].ID = s.ids.Next()
		s.insert(&batch[i])
	}
	copy(phones, batch)
	return nil
}

// insert must be called with mu held.
func (s *MemoryStore) insert(p *domain.Phone) {
	s.phones[p.ID] = *p
	s.order = append(s.order, p.ID)
}

// GetPhone returns a copy of the phone with the given id.
func (s *MemoryStore) GetPhone(_ context.Context, id int64) (*domain.Phone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.phones[id]
	if !ok {
		return nil, fmt.Errorf("getting phone %d: %w", id, ErrNotFound)
	}
	return &p, nil
}

// ListPhones returns a page of matching phones in insertion order and the
// total number of matches.
func (s *MemoryStore) ListPhones(_ context.Context, q *PhoneQuery) ([]domain.Phone, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Phone, 0, len(s.order))
	for _, id := range s.order {
		p := s.phones[id]
		if q.Matches(&p) {
			matched = append(matched, p)
		}
	}

	start, end := q.window(len(matched))
	return matched[start:end], len(matched), nil
}

// DeletePhone removes the phone with the given id.
func (s *MemoryStore) DeletePhone(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phones[id]; !ok {
		return fmt.Errorf("deleting phone %d: %w", id, ErrNotFound)
	}

	delete(s.phones, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
