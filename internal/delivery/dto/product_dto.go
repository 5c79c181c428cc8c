package dto

import "github.com/shopspring/decimal"

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	FarmerName  string          `json:"farmer_name,omitempty"`
	Location    string          `json:"location,omitempty"`
	InStock     bool            `json:"in_stock"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}
