package handler

import (
	"encoding/json"
	"net/http"

	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/delivery/http/middleware"
	"arogyamix-server/internal/usecase"
	"arogyamix-server/pkg/response"
	"arogyamix-server/pkg/validator"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
	validator   *validator.CustomValidator
}

func NewCartHandler(cartUsecase usecase.CartUsecase, validator *validator.CustomValidator) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
		validator:   validator,
	}
}

// Get returns the caller's cart summary
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	cart, err := h.cartUsecase.Get(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get cart")
		return
	}

	response.Success(w, http.StatusOK, "Cart retrieved successfully", cart)
}

// Adjust applies a quantity delta to one cart item
func (h *CartHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.AdjustCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.Adjust(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		case usecase.ErrProductOutOfStock:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update cart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cart updated successfully", cart)
}

// Checkout places a simulated order from the caller's cart
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.cartUsecase.Checkout(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCartEmpty, usecase.ErrAddressRequired, usecase.ErrPhoneTooShort:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to place order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order placed successfully", result)
}
