package repositories

import (
	"context"
	"errors"
	"time"

	"resto-admin/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `id, order_number, customer_name, table_number, order_type, status,
	total_amount, COALESCE(special_requests, ''), customer_id, created_at, updated_at`

func scanOrder(row pgx.Row, o *models.Order) error {
	return row.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.TableNumber, &o.OrderType,
		&o.Status, &o.TotalAmount, &o.SpecialRequests, &o.CustomerID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	index := map[int]int{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		o.Items = []models.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := models.DB.Query(ctx,
		`SELECT id, order_id, menu_item_id, menu_item_name, quantity, price, COALESCE(special_requests, '')
		 FROM order_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName,
			&item.Quantity, &item.Price, &item.SpecialRequests); err != nil {
			return nil, err
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	err := scanOrder(models.DB.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	o.Items = []models.OrderItem{}
	rows, err := models.DB.Query(ctx,
		`SELECT id, order_id, menu_item_id, menu_item_name, quantity, price, COALESCE(special_requests, '')
		 FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName,
			&item.Quantity, &item.Price, &item.SpecialRequests); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	return &o, rows.Err()
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, customer_name, table_number, order_type, status,
		                    total_amount, special_requests, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.CustomerName, order.TableNumber, order.OrderType, order.Status,
		order.TotalAmount, order.SpecialRequests, order.CustomerID, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, menu_item_name, quantity, price, special_requests)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.MenuItemName, item.Quantity, item.Price, item.SpecialRequests,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Update rewrites the order row and replaces its item lines.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	order.UpdatedAt = time.Now()
	tag, err := tx.Exec(ctx, `
		UPDATE orders SET customer_name = $1, table_number = $2, order_type = $3, status = $4,
		       total_amount = $5, special_requests = $6, customer_id = $7, updated_at = $8
		WHERE id = $9`,
		order.CustomerName, order.TableNumber, order.OrderType, order.Status,
		order.TotalAmount, order.SpecialRequests, order.CustomerID, order.UpdatedAt, order.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return err
	}
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, menu_item_name, quantity, price, special_requests)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.MenuItemName, item.Quantity, item.Price, item.SpecialRequests,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
