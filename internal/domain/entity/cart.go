package entity

// Ledger is a cart: product id mapped to desired quantity. Quantities are
// always positive; an adjustment that would drop a quantity to zero or
// below removes the entry instead, so no zero-quantity entries persist.
type Ledger map[int]int

// NewLedger returns an empty cart.
func NewLedger() Ledger {
	return make(Ledger)
}

// Adjust applies a quantity delta for a product. The new quantity is
// clamped at zero and zero-quantity entries are deleted.
func (l Ledger) Adjust(productID, delta int) int {
	quantity := l[productID] + delta
	if quantity <= 0 {
		delete(l, productID)
		return 0
	}
	l[productID] = quantity
	return quantity
}

// Quantity returns the quantity for a product, zero if absent.
func (l Ledger) Quantity(productID int) int {
	return l[productID]
}

// TotalItems returns the summed quantity across all entries.
func (l Ledger) TotalItems() int {
	total := 0
	for _, quantity := range l {
		total += quantity
	}
	return total
}

// IsEmpty reports whether the cart has no entries.
func (l Ledger) IsEmpty() bool {
	return len(l) == 0
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	copied := make(Ledger, len(l))
	for id, quantity := range l {
		copied[id] = quantity
	}
	return copied
}
