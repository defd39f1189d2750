package repositories

import (
	"context"
	"errors"
	"time"

	"resto-admin/models"

	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, display_order, item_count, is_active, created_at, updated_at
	          FROM categories ORDER BY display_order ASC`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.DisplayOrder, &cat.ItemCount,
			&cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	query := `SELECT id, name, display_order, item_count, is_active, created_at, updated_at
	          FROM categories WHERE id = $1`

	var cat models.Category
	err := models.DB.QueryRow(ctx, query, id).Scan(&cat.ID, &cat.Name, &cat.DisplayOrder,
		&cat.ItemCount, &cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, display_order, item_count, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		category.Name, category.DisplayOrder, category.ItemCount, category.IsActive, now, now,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `UPDATE categories SET name = $1, display_order = $2, item_count = $3,
	          is_active = $4, updated_at = $5 WHERE id = $6`

	category.UpdatedAt = time.Now()
	tag, err := models.DB.Exec(ctx, query,
		category.Name, category.DisplayOrder, category.ItemCount,
		category.IsActive, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
