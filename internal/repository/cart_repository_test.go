package repository

import (
	"context"
	"testing"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/kvstore"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCartItem(id int, price float64, qty int) model.CartItem {
	return model.CartItem{
		Product: model.Product{
			ID:       id,
			Name:     "Test Product",
			Price:    price,
			Category: model.CategoryOrganic,
			InStock:  true,
		},
		Quantity: qty,
	}
}

func TestCartRepository_GetMissingCartIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(kvstore.NewMemoryStore(), zerolog.Nop())

	items, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepository_SaveGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(kvstore.NewMemoryStore(), zerolog.Nop())

	items := []model.CartItem{testCartItem(1, 25, 2), testCartItem(2, 35, 1)}
	require.NoError(t, repo.Save(ctx, "c1", items))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCartRepository_CartsAreScopedByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(kvstore.NewMemoryStore(), zerolog.Nop())

	require.NoError(t, repo.Save(ctx, "c1", []model.CartItem{testCartItem(1, 25, 1)}))

	other, err := repo.Get(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCartRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(kvstore.NewMemoryStore(), zerolog.Nop())

	require.NoError(t, repo.Save(ctx, "c1", []model.CartItem{testCartItem(1, 25, 1)}))
	require.NoError(t, repo.Clear(ctx, "c1"))

	items, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
