package repositories

import (
	"context"
	"errors"

	"resto-admin/models"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		 FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	err := models.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		 FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
