package repositories

import (
	"context"
	"errors"
	"time"

	"resto-admin/models"

	"github.com/jackc/pgx/v5"
)

type TableRepository struct{}

func NewTableRepository() *TableRepository {
	return &TableRepository{}
}

const tableColumns = `id, number, seats, shape, status, server, x, y, created_at, updated_at`

func scanTable(row pgx.Row, t *models.Table) error {
	return row.Scan(&t.ID, &t.Number, &t.Seats, &t.Shape, &t.Status, &t.Server,
		&t.X, &t.Y, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT `+tableColumns+` FROM tables ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := scanTable(rows, &t); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *TableRepository) GetByID(ctx context.Context, id int) (*models.Table, error) {
	var t models.Table
	err := scanTable(models.DB.QueryRow(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE id = $1`, id), &t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	query := `
		INSERT INTO tables (number, seats, shape, status, server, x, y, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(ctx, query,
		table.Number, table.Seats, table.Shape, table.Status, table.Server,
		table.X, table.Y, now, now,
	).Scan(&table.ID, &table.CreatedAt, &table.UpdatedAt)
}

func (r *TableRepository) Update(ctx context.Context, table *models.Table) error {
	query := `UPDATE tables SET number = $1, seats = $2, shape = $3, status = $4,
	          server = $5, x = $6, y = $7, updated_at = $8 WHERE id = $9`

	table.UpdatedAt = time.Now()
	tag, err := models.DB.Exec(ctx, query,
		table.Number, table.Seats, table.Shape, table.Status, table.Server,
		table.X, table.Y, table.UpdatedAt, table.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *TableRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
