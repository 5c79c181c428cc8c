package dto

import "github.com/shopspring/decimal"

// Request DTOs

// AdjustCartRequest applies a quantity delta to one product. Negative
// deltas decrement; an entry reaching zero is removed.
type AdjustCartRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Delta     int `json:"delta"`
}

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PhoneNumber     string `json:"phone_number" validate:"required,phone,min=10,max=20"`
	PaymentMethod   string `json:"payment_method" validate:"omitempty,oneof=cod online"`
	Notes           string `json:"notes" validate:"omitempty,max=500"`
}

// Response DTOs

type CartItemResponse struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	TotalItems  int                `json:"total_items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	DeliveryFee decimal.Decimal    `json:"delivery_fee"`
	Total       decimal.Decimal    `json:"total"`
}

type CheckoutResponse struct {
	Message       string          `json:"message"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
}
