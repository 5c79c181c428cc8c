package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerAdjustAccumulates(t *testing.T) {
	ledger := NewLedger()

	assert.Equal(t, 1, ledger.Adjust(1, 1))
	assert.Equal(t, 3, ledger.Adjust(1, 2))
	assert.Equal(t, 3, ledger.Quantity(1))
	assert.Equal(t, 3, ledger.TotalItems())
}

func TestLedgerAdjustClampsAtZero(t *testing.T) {
	ledger := NewLedger()
	ledger.Adjust(1, 2)

	assert.Equal(t, 0, ledger.Adjust(1, -5))
	assert.Equal(t, 0, ledger.Quantity(1))
	assert.True(t, ledger.IsEmpty())
}

func TestLedgerZeroQuantityRemovesEntry(t *testing.T) {
	ledger := NewLedger()
	ledger.Adjust(1, 1)
	ledger.Adjust(1, -1)

	_, exists := ledger[1]
	assert.False(t, exists)
}

func TestLedgerNegativeDeltaOnAbsentEntry(t *testing.T) {
	ledger := NewLedger()

	assert.Equal(t, 0, ledger.Adjust(42, -3))
	assert.True(t, ledger.IsEmpty())
}

func TestLedgerCloneIsIndependent(t *testing.T) {
	ledger := NewLedger()
	ledger.Adjust(1, 2)

	clone := ledger.Clone()
	clone.Adjust(1, 5)

	assert.Equal(t, 2, ledger.Quantity(1))
	assert.Equal(t, 7, clone.Quantity(1))
}
