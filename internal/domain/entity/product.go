package entity

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry. The catalog is curated by hand
// and shipped with the binary; products are not persisted or editable.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	FarmerName  string          `json:"farmer_name,omitempty"`
	Location    string          `json:"location,omitempty"`
	InStock     bool            `json:"in_stock"`
}

// Catalog categories
const (
	CategoryMillets   = "millets"
	CategoryGrains    = "grains"
	CategoryDryFruits = "dryfruits"
)
