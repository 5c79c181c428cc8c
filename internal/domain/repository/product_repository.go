package repository

import (
	"context"

	"arogyamix-server/internal/domain/entity"
)

// ProductRepository serves the immutable product catalog. It takes no
// database handle: the catalog is not persisted.
type ProductRepository interface {
	FindAll(ctx context.Context, category, query string) ([]entity.Product, error)
	FindByID(ctx context.Context, id int) (*entity.Product, error)
}
