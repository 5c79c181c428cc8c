package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartStoreIsolatesUsers(t *testing.T) {
	store := NewCartStore()
	alice := uuid.New()
	bob := uuid.New()

	store.Adjust(alice, 1, 2)
	store.Adjust(bob, 1, 5)

	assert.Equal(t, 2, store.Ledger(alice).Quantity(1))
	assert.Equal(t, 5, store.Ledger(bob).Quantity(1))
}

func TestCartStoreSnapshotIsDetached(t *testing.T) {
	store := NewCartStore()
	userID := uuid.New()
	store.Adjust(userID, 1, 1)

	snapshot := store.Ledger(userID)
	snapshot.Adjust(1, 10)

	assert.Equal(t, 1, store.Ledger(userID).Quantity(1))
}

func TestCartStoreClear(t *testing.T) {
	store := NewCartStore()
	userID := uuid.New()
	store.Adjust(userID, 1, 3)

	store.Clear(userID)

	assert.True(t, store.Ledger(userID).IsEmpty())
}

func TestCartStoreEmptyLedgerDropsUser(t *testing.T) {
	store := NewCartStore()
	userID := uuid.New()

	store.Adjust(userID, 1, 2)
	store.Adjust(userID, 1, -2)

	assert.True(t, store.Ledger(userID).IsEmpty())
}

func TestCartStoreConcurrentAdjust(t *testing.T) {
	store := NewCartStore()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Adjust(userID, 1, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Ledger(userID).Quantity(1))
}
