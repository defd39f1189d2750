package repositories

import (
	"context"
	"errors"
	"time"

	"resto-admin/models"

	"github.com/jackc/pgx/v5"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

const menuItemColumns = `id, name, description, category_id, price, is_available,
	COALESCE(image_url, ''), created_at, updated_at`

func scanMenuItem(row pgx.Row, item *models.MenuItem) error {
	return row.Scan(&item.ID, &item.Name, &item.Description, &item.CategoryID,
		&item.Price, &item.IsAvailable, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	var item models.MenuItem
	err := scanMenuItem(models.DB.QueryRow(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id), &item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, category_id, price, is_available, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		item.Name, item.Description, item.CategoryID, item.Price,
		item.IsAvailable, item.ImageURL, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	query := `UPDATE menu_items SET name = $1, description = $2, category_id = $3,
	          price = $4, is_available = $5, image_url = $6, updated_at = $7 WHERE id = $8`

	item.UpdatedAt = time.Now()
	tag, err := models.DB.Exec(ctx, query,
		item.Name, item.Description, item.CategoryID, item.Price,
		item.IsAvailable, item.ImageURL, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}
