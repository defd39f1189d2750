package services

import (
	"context"
	"errors"
	"testing"

	"resto-admin/models"
	"resto-admin/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService() (*MenuService, *repositories.MemoryCategoryStore, *repositories.MemoryMenuItemStore) {
	categories := repositories.NewMemoryCategoryStore()
	items := repositories.NewMemoryMenuItemStore()
	return NewMenuService(categories, items, LogNotifier{}), categories, items
}

func seedCategories(t *testing.T, svc *MenuService, names ...string) []models.Category {
	t.Helper()
	for _, name := range names {
		_, err := svc.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}
	out, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	return out
}

func categoryNames(categories []models.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

func TestCreateCategoryAppendsToEnd(t *testing.T) {
	svc, _, _ := newMenuService()

	categories := seedCategories(t, svc, "Appetizers", "Mains", "Drinks")
	require.Len(t, categories, 3)
	for i, c := range categories {
		assert.Equal(t, i+1, c.DisplayOrder)
		assert.True(t, c.IsActive)
		assert.Zero(t, c.ItemCount)
	}
}

func TestReorderCategories(t *testing.T) {
	svc, _, _ := newMenuService()
	ctx := context.Background()

	seedCategories(t, svc, "Appetizers", "Mains", "Drinks", "Desserts")

	reordered, err := svc.ReorderCategories(ctx, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mains", "Drinks", "Appetizers", "Desserts"}, categoryNames(reordered))
	for i, c := range reordered {
		assert.Equal(t, i+1, c.DisplayOrder, "display order must stay contiguous")
	}

	// persisted order matches what was returned
	persisted, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categoryNames(reordered), categoryNames(persisted))
}

func TestReorderCategoriesBackward(t *testing.T) {
	svc, _, _ := newMenuService()

	seedCategories(t, svc, "Appetizers", "Mains", "Drinks", "Desserts")

	reordered, err := svc.ReorderCategories(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Appetizers", "Desserts", "Mains", "Drinks"}, categoryNames(reordered))
}

func TestReorderCategoriesRollback(t *testing.T) {
	svc, categories, _ := newMenuService()
	ctx := context.Background()

	before := seedCategories(t, svc, "Appetizers", "Mains", "Drinks")

	categories.FailNextWrites(1, errors.New("connection reset"))

	restored, err := svc.ReorderCategories(ctx, 0, 2)
	var pErr *models.PersistenceError
	require.ErrorAs(t, err, &pErr)

	// the returned list and the store both hold the pre-gesture snapshot
	assert.Equal(t, categoryNames(before), categoryNames(restored))
	after, listErr := svc.ListCategories(ctx)
	require.NoError(t, listErr)
	assert.Equal(t, categoryNames(before), categoryNames(after))
	for i, c := range after {
		assert.Equal(t, before[i].DisplayOrder, c.DisplayOrder)
	}
}

func TestReorderCategoriesOutOfRange(t *testing.T) {
	svc, _, _ := newMenuService()

	seedCategories(t, svc, "Appetizers", "Mains")

	var vErr *models.ValidationError
	_, err := svc.ReorderCategories(context.Background(), -1, 0)
	require.ErrorAs(t, err, &vErr)
	_, err = svc.ReorderCategories(context.Background(), 0, 2)
	require.ErrorAs(t, err, &vErr)
}

func TestReorderCategoriesSameIndexIsNoOp(t *testing.T) {
	svc, categories, _ := newMenuService()

	before := seedCategories(t, svc, "Appetizers", "Mains")

	// a failing store proves no write is attempted
	categories.FailWrites(errors.New("should not be called"))

	out, err := svc.ReorderCategories(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, categoryNames(before), categoryNames(out))
}

func TestDeleteCategoryWithItemsRejected(t *testing.T) {
	svc, categories, _ := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Mains")
	_, err := svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: "Rendang", CategoryID: seeded[0].ID, Price: 55000})
	require.NoError(t, err)

	// a failing store proves the guard fires before any delete is attempted
	categories.FailWrites(errors.New("should not be called"))

	err = svc.DeleteCategory(ctx, seeded[0].ID)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)

	categories.FailNextWrites(0, nil)
	remaining, listErr := svc.ListCategories(ctx)
	require.NoError(t, listErr)
	assert.Len(t, remaining, 1)
}

func TestDeleteEmptyCategory(t *testing.T) {
	svc, _, _ := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Seasonal")
	require.NoError(t, svc.DeleteCategory(ctx, seeded[0].ID))

	_, err := svc.GetCategory(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestItemCountTracksItems(t *testing.T) {
	svc, _, _ := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Drinks")
	catID := seeded[0].ID

	first, err := svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: "Es Teh", CategoryID: catID, Price: 8000})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: "Kopi Susu", CategoryID: catID, Price: 18000})
	require.NoError(t, err)

	category, err := svc.GetCategory(ctx, catID)
	require.NoError(t, err)
	assert.Equal(t, 2, category.ItemCount)

	require.NoError(t, svc.DeleteItem(ctx, first.ID))
	category, err = svc.GetCategory(ctx, catID)
	require.NoError(t, err)
	assert.Equal(t, 1, category.ItemCount)
}

func TestUpdateItemMoveRefreshesBothCategories(t *testing.T) {
	svc, _, _ := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Drinks", "Desserts")
	drinks, desserts := seeded[0].ID, seeded[1].ID

	item, err := svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: "Es Campur", CategoryID: drinks, Price: 15000})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, item.ID, models.UpdateMenuItemRequest{CategoryID: desserts})
	require.NoError(t, err)

	from, err := svc.GetCategory(ctx, drinks)
	require.NoError(t, err)
	to, err := svc.GetCategory(ctx, desserts)
	require.NoError(t, err)
	assert.Zero(t, from.ItemCount)
	assert.Equal(t, 1, to.ItemCount)
}

func TestCreateItemUnknownCategory(t *testing.T) {
	svc, _, _ := newMenuService()

	_, err := svc.CreateItem(context.Background(), models.CreateMenuItemRequest{Name: "Ghost", CategoryID: 42, Price: 1000})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestToggleAvailability(t *testing.T) {
	svc, _, _ := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Mains")
	item, err := svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: "Sate", CategoryID: seeded[0].ID, Price: 35000})
	require.NoError(t, err)
	require.True(t, item.IsAvailable)

	toggled, err := svc.ToggleAvailability(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)

	toggled, err = svc.ToggleAvailability(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsAvailable)
}

func TestBulkSetAvailabilityRollback(t *testing.T) {
	svc, _, items := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Mains")
	ids := []int{}
	for _, name := range []string{"Sate", "Rendang", "Gulai"} {
		item, err := svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: name, CategoryID: seeded[0].ID, Price: 40000})
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	items.FailNextWrites(1, errors.New("connection reset"))

	err := svc.BulkSetAvailability(ctx, ids, false)
	var pErr *models.PersistenceError
	require.ErrorAs(t, err, &pErr)

	for _, id := range ids {
		item, getErr := svc.GetItem(ctx, id)
		require.NoError(t, getErr)
		assert.True(t, item.IsAvailable, "every item must be restored after a partial failure")
	}
}

func TestBulkSetAvailability(t *testing.T) {
	svc, _, _ := newMenuService()
	ctx := context.Background()

	seeded := seedCategories(t, svc, "Mains")
	item, err := svc.CreateItem(ctx, models.CreateMenuItemRequest{Name: "Sate", CategoryID: seeded[0].ID, Price: 35000})
	require.NoError(t, err)

	require.NoError(t, svc.BulkSetAvailability(ctx, []int{item.ID}, false))
	got, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestFilterItems(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Es Teh Manis", Description: "Sweet iced tea", CategoryID: 1},
		{Name: "Kopi Susu", Description: "Milk coffee", CategoryID: 1},
		{Name: "Nasi Goreng", Description: "Fried rice with egg", CategoryID: 2},
	}

	assert.Len(t, FilterItems(items, 0, ""), 3)
	assert.Len(t, FilterItems(items, 1, ""), 2)
	assert.Len(t, FilterItems(items, 2, ""), 1)
	assert.Len(t, FilterItems(items, 0, "SUSU"), 1)
	assert.Len(t, FilterItems(items, 0, "egg"), 1)
	assert.Len(t, FilterItems(items, 1, "egg"), 0)
	assert.Empty(t, FilterItems(items, 0, "pizza"))
}
