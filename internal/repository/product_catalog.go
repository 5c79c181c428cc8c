package repository

import (
	"context"
	"strings"

	"arogyamix-server/internal/domain/entity"
	domainRepo "arogyamix-server/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// productCatalog is an in-memory ProductRepository. The store sells a
// curated set of products whose entries are immutable, so the catalog is
// compiled in rather than persisted.
type productCatalog struct {
	products []entity.Product
}

func NewProductCatalog() domainRepo.ProductRepository {
	return &productCatalog{products: catalogProducts}
}

func (r *productCatalog) FindAll(ctx context.Context, category, query string) ([]entity.Product, error) {
	results := make([]entity.Product, 0, len(r.products))
	query = strings.ToLower(strings.TrimSpace(query))
	for _, product := range r.products {
		if category != "" && product.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		results = append(results, product)
	}
	return results, nil
}

func (r *productCatalog) FindByID(ctx context.Context, id int) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, nil
}

// catalogProducts is the storefront inventory. Prices are in whole rupees.
var catalogProducts = []entity.Product{
	{
		ID:          1,
		Name:        "Organic Foxtail Millet",
		Category:    entity.CategoryMillets,
		Price:       decimal.NewFromInt(180),
		Description: "Premium quality foxtail millet, rich in protein and fiber",
		FarmerName:  "Ravi Kumar",
		Location:    "Andhra Pradesh",
		InStock:     true,
	},
	{
		ID:          2,
		Name:        "Himalayan Almonds",
		Category:    entity.CategoryDryFruits,
		Price:       decimal.NewFromInt(850),
		Description: "Premium Himalayan almonds, naturally sweet and nutritious",
		FarmerName:  "Suresh Patel",
		Location:    "Kashmir",
		InStock:     true,
	},
	{
		ID:          3,
		Name:        "Organic Brown Rice",
		Category:    entity.CategoryGrains,
		Price:       decimal.NewFromInt(120),
		Description: "Organically grown brown rice with complete nutrition",
		FarmerName:  "Lakshmi Devi",
		Location:    "Tamil Nadu",
		InStock:     true,
	},
	{
		ID:          4,
		Name:        "Premium Dates",
		Category:    entity.CategoryDryFruits,
		Price:       decimal.NewFromInt(400),
		Description: "Medjool dates - natural sweetener packed with nutrients",
		FarmerName:  "Ahmed Khan",
		Location:    "Rajasthan",
		InStock:     false,
	},
	{
		ID:          5,
		Name:        "Finger Millet (Ragi)",
		Category:    entity.CategoryMillets,
		Price:       decimal.NewFromInt(160),
		Description: "Calcium-rich finger millet for strong bones",
		FarmerName:  "Geetha Rao",
		Location:    "Karnataka",
		InStock:     true,
	},
	{
		ID:          6,
		Name:        "Mixed Dry Fruits",
		Category:    entity.CategoryDryFruits,
		Price:       decimal.NewFromInt(1200),
		Description: "Premium mix of almonds, cashews, walnuts, and raisins",
		FarmerName:  "Collective",
		Location:    "Multiple States",
		InStock:     true,
	},
}
