package repositories

import (
	"context"
	"errors"
	"testing"

	"resto-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCategoryStoreSortsByDisplayOrder(t *testing.T) {
	store := NewMemoryCategoryStore()
	ctx := context.Background()

	for _, c := range []models.Category{
		{Name: "Drinks", DisplayOrder: 3},
		{Name: "Mains", DisplayOrder: 1},
		{Name: "Desserts", DisplayOrder: 2},
	} {
		category := c
		require.NoError(t, store.Create(ctx, &category))
	}

	out, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Mains", out[0].Name)
	assert.Equal(t, "Desserts", out[1].Name)
	assert.Equal(t, "Drinks", out[2].Name)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryTableStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, &models.Table{ID: 1}), models.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 1), models.ErrNotFound)
}

func TestMemoryOrderStoreReturnsCopies(t *testing.T) {
	store := NewMemoryOrderStore()
	ctx := context.Background()

	order := &models.Order{
		OrderNumber:  "ORD-000001",
		CustomerName: "Budi",
		TableNumber:  "T-1",
		Status:       models.OrderStatusReceived,
		Items:        []models.OrderItem{{MenuItemID: 1, MenuItemName: "Sate", Quantity: 1, Price: 35000}},
	}
	require.NoError(t, store.Create(ctx, order))

	got, err := store.GetByID(ctx, order.ID)
	require.NoError(t, err)
	got.Items[0].Quantity = 99
	got.CustomerName = "changed"

	fresh, err := store.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Items[0].Quantity)
	assert.Equal(t, "Budi", fresh.CustomerName)
}

func TestFailNextWritesRecovers(t *testing.T) {
	store := NewMemoryCategoryStore()
	ctx := context.Background()

	boom := errors.New("boom")
	store.FailNextWrites(2, boom)

	assert.ErrorIs(t, store.Create(ctx, &models.Category{Name: "A"}), boom)
	assert.ErrorIs(t, store.Create(ctx, &models.Category{Name: "B"}), boom)
	assert.NoError(t, store.Create(ctx, &models.Category{Name: "C"}))
}

func TestFailWritesPersists(t *testing.T) {
	store := NewMemoryMenuItemStore()
	ctx := context.Background()

	boom := errors.New("boom")
	store.FailWrites(boom)

	assert.ErrorIs(t, store.Create(ctx, &models.MenuItem{Name: "Sate"}), boom)
	assert.ErrorIs(t, store.Create(ctx, &models.MenuItem{Name: "Sate"}), boom)
}

func TestMemoryUserStoreFindByEmail(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	user := &models.User{Email: "Dewi@Example.com", FullName: "Dewi", Role: "staff"}
	require.NoError(t, store.Create(ctx, user))

	found, err := store.FindByEmail(ctx, "dewi@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
