package repositories

import (
	"context"

	"resto-admin/models"
)

// Store interfaces are the persistence ports consumed by the services. Two
// implementations exist for each: the pgx-backed repositories in this package
// and the in-memory store in memory.go, selected by DATA_BACKEND.

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int) error
}

type MenuItemStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id int) error
	CountByCategory(ctx context.Context, categoryID int) (int, error)
}

type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id int) error
}

type TableStore interface {
	List(ctx context.Context) ([]models.Table, error)
	GetByID(ctx context.Context, id int) (*models.Table, error)
	Create(ctx context.Context, table *models.Table) error
	Update(ctx context.Context, table *models.Table) error
	Delete(ctx context.Context, id int) error
}

type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id int) (*models.Customer, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int, hash string) error
	Delete(ctx context.Context, id int) error
}
