package service

import (
	"sync"

	"arogyamix-server/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore holds one cart ledger per user, in process memory only. Carts
// are session-scoped: a server restart discards them.
type CartStore struct {
	mu      sync.Mutex
	ledgers map[uuid.UUID]entity.Ledger
}

func NewCartStore() *CartStore {
	return &CartStore{
		ledgers: make(map[uuid.UUID]entity.Ledger),
	}
}

// Adjust applies a quantity delta to the user's cart and returns the new
// quantity for the product.
func (s *CartStore) Adjust(userID uuid.UUID, productID, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[userID]
	if !ok {
		ledger = entity.NewLedger()
		s.ledgers[userID] = ledger
	}

	quantity := ledger.Adjust(productID, delta)
	if ledger.IsEmpty() {
		delete(s.ledgers, userID)
	}
	return quantity
}

// Ledger returns a snapshot of the user's cart. Mutating the returned
// ledger does not affect the store.
func (s *CartStore) Ledger(userID uuid.UUID) entity.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[userID]
	if !ok {
		return entity.NewLedger()
	}
	return ledger.Clone()
}

// Clear discards the user's cart.
func (s *CartStore) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ledgers, userID)
}
