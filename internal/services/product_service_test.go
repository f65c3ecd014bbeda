package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/domain"
	"shopdesk/internal/services"
	"shopdesk/internal/store"
)

func newProductSvc() *services.ProductService {
	return services.NewProductService(store.New[string, domain.Product](), services.NoDelay)
}

func TestProductCreateThenGet(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, services.ProductForm{
		Name: "Game Boy Color", Description: "Handheld console", Price: 129.99, Stock: 8,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	got, ok, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestProductCreateAssignsDistinctIDs(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p, err := svc.Create(ctx, services.ProductForm{Name: "Widget", Price: 1})
		require.NoError(t, err)
		require.False(t, seen[p.ID], "id %s assigned twice", p.ID)
		seen[p.ID] = true
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	_, err := svc.Create(ctx, services.ProductForm{Name: "  ", Price: -5, Stock: -1})
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"name", "price", "stock"}, ve.Fields)
}

func TestProductUpdateMergesPatch(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, services.ProductForm{
		Name: "NES Console", Description: "Classic 8-bit console", Price: 199, Stock: 4,
	})
	require.NoError(t, err)

	newPrice := 179.5
	upd, err := svc.Update(ctx, p.ID, services.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 179.5, upd.Price)
	assert.Equal(t, p.Name, upd.Name)
	assert.Equal(t, p.Description, upd.Description)
	assert.Equal(t, p.Stock, upd.Stock)
	assert.Equal(t, p.CreatedAt, upd.CreatedAt)
	assert.True(t, upd.UpdatedAt.After(p.UpdatedAt), "UpdatedAt must strictly advance")

	got, ok, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, upd, got)
}

func TestProductUpdateUnknownID(t *testing.T) {
	svc := newProductSvc()
	name := "X"
	_, err := svc.Update(context.Background(), "ghost", services.ProductPatch{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, services.ProductForm{Name: "Radio", Price: 349.5, Stock: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, ok, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// second delete fails, it is not idempotent
	require.ErrorIs(t, svc.Delete(ctx, p.ID), domain.ErrNotFound)
}

func TestProductGetAllIsIdempotentWithoutMutation(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	for _, n := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, services.ProductForm{Name: n, Price: 1})
		require.NoError(t, err)
	}

	first, err := svc.GetAll(ctx)
	require.NoError(t, err)
	second, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProductSearch(t *testing.T) {
	svc := newProductSvc()
	ctx := context.Background()

	gb, err := svc.Create(ctx, services.ProductForm{Name: "Game Boy Color", Description: "Handheld console", Price: 129.99, Stock: 8})
	require.NoError(t, err)
	nes, err := svc.Create(ctx, services.ProductForm{Name: "NES Console", Description: "Classic 8-bit", Price: 199, Stock: 0})
	require.NoError(t, err)

	// case-insensitive name match
	out, err := svc.Search(ctx, "game boy")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, gb.ID, out[0].ID)

	// substring shared by both descriptions/names
	out, err = svc.Search(ctx, "CONSOLE")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// numeric fields are searchable through their fixed-point text form
	out, err = svc.Search(ctx, "129.99")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, gb.ID, out[0].ID)

	// every hit actually contains the query in some field
	out, err = svc.Search(ctx, "8")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	for _, p := range out {
		assert.Contains(t, []string{gb.ID, nes.ID}, p.ID)
	}

	out, err = svc.Search(ctx, "no-such-thing")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOperationsHonorCanceledContext(t *testing.T) {
	svc := services.NewProductService(store.New[string, domain.Product](), services.Fixed(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetAll(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = svc.Create(ctx, services.ProductForm{Name: "X", Price: 1})
	require.ErrorIs(t, err, context.Canceled)
}
