package repository

import (
	"context"
	"testing"

	"arogyamix-server/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCatalogFindAll(t *testing.T) {
	repo := NewProductCatalog()
	ctx := context.Background()

	t.Run("no filters returns everything", func(t *testing.T) {
		products, err := repo.FindAll(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := repo.FindAll(ctx, entity.CategoryMillets, "")
		require.NoError(t, err)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, entity.CategoryMillets, p.Category)
		}
	})

	t.Run("name search is case-insensitive", func(t *testing.T) {
		products, err := repo.FindAll(ctx, "", "ALMOND")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Himalayan Almonds", products[0].Name)
	})

	t.Run("category and query combined", func(t *testing.T) {
		products, err := repo.FindAll(ctx, entity.CategoryDryFruits, "dates")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 4, products[0].ID)
	})

	t.Run("no matches", func(t *testing.T) {
		products, err := repo.FindAll(ctx, "", "quinoa")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductCatalogFindByID(t *testing.T) {
	repo := NewProductCatalog()
	ctx := context.Background()

	product, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Organic Foxtail Millet", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(180)))

	missing, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
