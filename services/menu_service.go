package services

import (
	"context"
	"errors"
	"strings"

	"resto-admin/models"
	"resto-admin/repositories"

	"golang.org/x/sync/errgroup"
)

type MenuService struct {
	categories repositories.CategoryStore
	items      repositories.MenuItemStore
	notifier   Notifier
}

func NewMenuService(categories repositories.CategoryStore, items repositories.MenuItemStore, notifier Notifier) *MenuService {
	return &MenuService{categories: categories, items: items, notifier: notifier}
}

func (s *MenuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *MenuService) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *MenuService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewValidationError("name", "is required")
	}

	existing, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:         name,
		DisplayOrder: len(existing) + 1,
		ItemCount:    0,
		IsActive:     isActive,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		s.notifier.Error("Failed to create category")
		return nil, models.NewPersistenceError("create category", err)
	}

	s.notifier.Success("Category created")
	return category, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id int, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		category.Name = name
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update category")
		return nil, models.NewPersistenceError("update category", err)
	}

	s.notifier.Success("Category updated")
	return category, nil
}

// DeleteCategory refuses to delete a category that still owns menu items; the
// check happens before any persistence call.
func (s *MenuService) DeleteCategory(ctx context.Context, id int) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.items.CountByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.NewValidationError("category", "cannot delete a category that still has menu items")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		s.notifier.Error("Failed to delete category")
		return models.NewPersistenceError("delete category", err)
	}

	s.notifier.Success("Category deleted")
	return nil
}

// moveElement applies a single-element move-and-shift, the list equivalent of
// dropping a dragged row at a new index.
func moveElement(categories []models.Category, oldIndex, newIndex int) []models.Category {
	out := make([]models.Category, 0, len(categories))
	out = append(out, categories[:oldIndex]...)
	out = append(out, categories[oldIndex+1:]...)
	moved := categories[oldIndex]
	out = append(out[:newIndex], append([]models.Category{moved}, out[newIndex:]...)...)
	return out
}

// ReorderCategories applies a drag gesture: the new ordering takes effect
// immediately, every affected category is persisted in parallel, and any
// failure restores the complete pre-gesture snapshot.
func (s *MenuService) ReorderCategories(ctx context.Context, oldIndex, newIndex int) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if oldIndex < 0 || oldIndex >= len(categories) {
		return nil, models.NewValidationError("old_index", "out of range")
	}
	if newIndex < 0 || newIndex >= len(categories) {
		return nil, models.NewValidationError("new_index", "out of range")
	}
	if oldIndex == newIndex {
		return categories, nil
	}

	snapshot := make([]models.Category, len(categories))
	copy(snapshot, categories)

	reordered := moveElement(categories, oldIndex, newIndex)
	for i := range reordered {
		reordered[i].DisplayOrder = i + 1
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range reordered {
		category := reordered[i]
		g.Go(func() error {
			return s.categories.Update(gctx, &category)
		})
	}

	if err := g.Wait(); err != nil {
		for i := range snapshot {
			restored := snapshot[i]
			_ = s.categories.Update(ctx, &restored)
		}
		s.notifier.Error("Failed to reorder categories")
		return snapshot, models.NewPersistenceError("reorder categories", err)
	}

	s.notifier.Success("Categories reordered")
	return reordered, nil
}

// RefreshItemCount recomputes a category's derived item count. This runs after
// every item create, delete and category move; it is a separate call from the
// item mutation itself, so a crash in between leaves the count stale until the
// next refresh.
func (s *MenuService) RefreshItemCount(ctx context.Context, categoryID int) error {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	count, err := s.items.CountByCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	category.ItemCount = count
	return s.categories.Update(ctx, category)
}

func (s *MenuService) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.items.List(ctx)
}

func (s *MenuService) GetItem(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *MenuService) CreateItem(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, models.NewValidationError("name", "is required")
	}
	if req.CategoryID == 0 {
		return nil, models.NewValidationError("category_id", "is required")
	}
	if req.Price < 0 {
		return nil, models.NewValidationError("price", "must not be negative")
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := &models.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		IsAvailable: isAvailable,
		ImageURL:    req.ImageURL,
	}
	if err := s.items.Create(ctx, item); err != nil {
		s.notifier.Error("Failed to create menu item")
		return nil, models.NewPersistenceError("create menu item", err)
	}

	if err := s.RefreshItemCount(ctx, item.CategoryID); err != nil {
		s.notifier.Error("Item created, category count refresh failed")
		return item, nil
	}

	s.notifier.Success("Menu item created")
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousCategory := item.CategoryID

	if name := strings.TrimSpace(req.Name); name != "" {
		item.Name = name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CategoryID != 0 && req.CategoryID != item.CategoryID {
		if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = req.CategoryID
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, models.NewValidationError("price", "must not be negative")
		}
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update menu item")
		return nil, models.NewPersistenceError("update menu item", err)
	}

	if item.CategoryID != previousCategory {
		_ = s.RefreshItemCount(ctx, previousCategory)
		_ = s.RefreshItemCount(ctx, item.CategoryID)
	}

	s.notifier.Success("Menu item updated")
	return item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		s.notifier.Error("Failed to delete menu item")
		return models.NewPersistenceError("delete menu item", err)
	}

	_ = s.RefreshItemCount(ctx, item.CategoryID)

	s.notifier.Success("Menu item deleted")
	return nil
}

func (s *MenuService) ToggleAvailability(ctx context.Context, id int) (*models.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.IsAvailable = !item.IsAvailable
	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update item availability")
		return nil, models.NewPersistenceError("toggle availability", err)
	}

	if item.IsAvailable {
		s.notifier.Success("Item activated")
	} else {
		s.notifier.Success("Item deactivated")
	}
	return item, nil
}

// BulkSetAvailability toggles a set of items as one gesture: if any member
// fails to persist, the whole set is restored to its pre-gesture state.
func (s *MenuService) BulkSetAvailability(ctx context.Context, ids []int, isAvailable bool) error {
	if len(ids) == 0 {
		return models.NewValidationError("item_ids", "at least one item is required")
	}

	snapshot := make([]models.MenuItem, 0, len(ids))
	for _, id := range ids {
		item, err := s.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		snapshot = append(snapshot, *item)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, before := range snapshot {
		updated := before
		updated.IsAvailable = isAvailable
		g.Go(func() error {
			return s.items.Update(gctx, &updated)
		})
	}

	if err := g.Wait(); err != nil {
		for i := range snapshot {
			restored := snapshot[i]
			_ = s.items.Update(ctx, &restored)
		}
		s.notifier.Error("Failed to update item availability")
		return models.NewPersistenceError("bulk availability", err)
	}

	s.notifier.Success("Item availability updated")
	return nil
}

// FilterItems applies the menu search predicate: category equality (zero
// matches all) and a case-insensitive substring over name and description.
func FilterItems(items []models.MenuItem, categoryID int, search string) []models.MenuItem {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := []models.MenuItem{}
	for _, item := range items {
		if categoryID != 0 && item.CategoryID != categoryID {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(item.Name + " " + item.Description)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
