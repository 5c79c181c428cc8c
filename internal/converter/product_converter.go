package converter

import (
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its response DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Description: product.Description,
		FarmerName:  product.FarmerName,
		Location:    product.Location,
		InStock:     product.InStock,
	}
}

// ProductsToListResponse converts a catalog slice to a list response
func ProductsToListResponse(products []entity.Product) *dto.ProductListResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Products: responses,
		Total:    len(responses),
	}
}
