package session

import (
	"context"
	"sync"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

// MemoryStore keeps carts in process memory. Carts are deep-copied on the
// way in and out so callers can never mutate stored state through a
// retained pointer.
type MemoryStore struct {
	mu       sync.RWMutex
	carts    map[string]*models.Cart
	seedDemo bool
}

func NewMemoryStore(seedDemo bool) *MemoryStore {
	return &MemoryStore{
		carts:    make(map[string]*models.Cart),
		seedDemo: seedDemo,
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	_ = ctx

	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return cart.Clone(), nil
	}

	fresh := defaultCart(s.seedDemo)
	s.mu.Lock()
	if existing, raced := s.carts[sessionID]; raced {
		fresh = existing
	} else {
		s.carts[sessionID] = fresh
	}
	s.mu.Unlock()
	return fresh.Clone(), nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID string, cart *models.Cart) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
