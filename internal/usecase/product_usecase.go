package usecase

import (
	"context"

	"arogyamix-server/internal/converter"
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ProductUsecase interface {
	List(ctx context.Context, category, query string) (*dto.ProductListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ProductResponse, error)
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) List(ctx context.Context, category, query string) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.FindAll(ctx, category, query)
	if err != nil {
		u.log.Warnf("Failed to list products: %v", err)
		return nil, err
	}

	return converter.ProductsToListResponse(products), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}
