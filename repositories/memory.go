package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"resto-admin/models"
)

// Memory stores back the same ports as the pgx repositories, for offline
// development (DATA_BACKEND=memory) and for tests. Writes can be forced to
// fail through FailWrites / FailNextWrites to exercise rollback paths.

type failer struct {
	err       error
	remaining int
	always    bool
}

// FailWrites makes every subsequent write return err.
func (f *failer) FailWrites(err error) {
	f.err = err
	f.always = true
}

// FailNextWrites makes the next n writes return err, then recovers.
func (f *failer) FailNextWrites(n int, err error) {
	f.err = err
	f.remaining = n
	f.always = false
}

// callers hold the store mutex
func (f *failer) writeErr() error {
	if f.always {
		return f.err
	}
	if f.remaining > 0 {
		f.remaining--
		return f.err
	}
	return nil
}

type MemoryCategoryStore struct {
	mu       sync.Mutex
	nextID   int
	rows     map[int]models.Category
	failer
}

func NewMemoryCategoryStore() *MemoryCategoryStore {
	return &MemoryCategoryStore{nextID: 1, rows: map[int]models.Category{}}
}

func (s *MemoryCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryCategoryStore) GetByID(ctx context.Context, id int) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (s *MemoryCategoryStore) Create(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	category.ID = s.nextID
	s.nextID++
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	s.rows[category.ID] = *category
	return nil
}

func (s *MemoryCategoryStore) Update(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[category.ID]; !ok {
		return models.ErrNotFound
	}
	category.UpdatedAt = time.Now()
	s.rows[category.ID] = *category
	return nil
}

func (s *MemoryCategoryStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

type MemoryMenuItemStore struct {
	mu       sync.Mutex
	nextID   int
	rows     map[int]models.MenuItem
	failer
}

func NewMemoryMenuItemStore() *MemoryMenuItemStore {
	return &MemoryMenuItemStore{nextID: 1, rows: map[int]models.MenuItem{}}
}

func (s *MemoryMenuItemStore) List(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, 0, len(s.rows))
	for _, item := range s.rows {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *MemoryMenuItemStore) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &item, nil
}

func (s *MemoryMenuItemStore) Create(ctx context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	item.ID = s.nextID
	s.nextID++
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.rows[item.ID] = *item
	return nil
}

func (s *MemoryMenuItemStore) Update(ctx context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[item.ID]; !ok {
		return models.ErrNotFound
	}
	item.UpdatedAt = time.Now()
	s.rows[item.ID] = *item
	return nil
}

func (s *MemoryMenuItemStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *MemoryMenuItemStore) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.rows {
		if item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type MemoryOrderStore struct {
	mu       sync.Mutex
	nextID   int
	rows     map[int]models.Order
	failer
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{nextID: 1, rows: map[int]models.Order{}}
}

func copyOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (s *MemoryOrderStore) List(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.rows))
	for _, o := range s.rows {
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryOrderStore) GetByID(ctx context.Context, id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	c := copyOrder(o)
	return &c, nil
}

func (s *MemoryOrderStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	order.ID = s.nextID
	s.nextID++
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		order.Items[i].ID = i + 1
		order.Items[i].OrderID = order.ID
	}
	s.rows[order.ID] = copyOrder(*order)
	return nil
}

func (s *MemoryOrderStore) Update(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[order.ID]; !ok {
		return models.ErrNotFound
	}
	order.UpdatedAt = time.Now()
	for i := range order.Items {
		if order.Items[i].ID == 0 {
			order.Items[i].ID = i + 1
		}
		order.Items[i].OrderID = order.ID
	}
	s.rows[order.ID] = copyOrder(*order)
	return nil
}

func (s *MemoryOrderStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

type MemoryTableStore struct {
	mu       sync.Mutex
	nextID   int
	rows     map[int]models.Table
	failer
}

func NewMemoryTableStore() *MemoryTableStore {
	return &MemoryTableStore{nextID: 1, rows: map[int]models.Table{}}
}

// SeedFloorPlan loads the default six-table floor plan used in offline mode.
func (s *MemoryTableStore) SeedFloorPlan() {
	alice, bob, carol := "Alice", "Bob", "Carol"
	seed := []models.Table{
		{Number: 1, Seats: 2, Shape: models.TableShapeRound, Status: models.TableStatusAvailable, X: 100, Y: 100},
		{Number: 2, Seats: 4, Shape: models.TableShapeSquare, Status: models.TableStatusOccupied, Server: &alice, X: 250, Y: 100},
		{Number: 3, Seats: 6, Shape: models.TableShapeRectangle, Status: models.TableStatusReserved, Server: &bob, X: 400, Y: 100},
		{Number: 4, Seats: 2, Shape: models.TableShapeRound, Status: models.TableStatusCleaning, X: 100, Y: 250},
		{Number: 5, Seats: 4, Shape: models.TableShapeSquare, Status: models.TableStatusAvailable, X: 250, Y: 250},
		{Number: 6, Seats: 8, Shape: models.TableShapeRectangle, Status: models.TableStatusOccupied, Server: &carol, X: 400, Y: 250},
	}
	for i := range seed {
		_ = s.Create(context.Background(), &seed[i])
	}
}

func (s *MemoryTableStore) List(ctx context.Context) ([]models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Table, 0, len(s.rows))
	for _, t := range s.rows {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *MemoryTableStore) GetByID(ctx context.Context, id int) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &t, nil
}

func (s *MemoryTableStore) Create(ctx context.Context, table *models.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	table.ID = s.nextID
	s.nextID++
	now := time.Now()
	table.CreatedAt = now
	table.UpdatedAt = now
	s.rows[table.ID] = *table
	return nil
}

func (s *MemoryTableStore) Update(ctx context.Context, table *models.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[table.ID]; !ok {
		return models.ErrNotFound
	}
	table.UpdatedAt = time.Now()
	s.rows[table.ID] = *table
	return nil
}

func (s *MemoryTableStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

type MemoryCustomerStore struct {
	mu   sync.Mutex
	rows map[int]models.Customer
}

func NewMemoryCustomerStore() *MemoryCustomerStore {
	return &MemoryCustomerStore{rows: map[int]models.Customer{}}
}

func (s *MemoryCustomerStore) Put(customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[customer.ID] = customer
}

func (s *MemoryCustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *MemoryCustomerStore) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

type MemoryUserStore struct {
	mu       sync.Mutex
	nextID   int
	rows     map[int]models.User
	failer
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{nextID: 1, rows: map[int]models.User{}}
}

func (s *MemoryUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.rows))
	for _, u := range s.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.rows {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	user.ID = s.nextID
	s.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.rows[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) UpdatePassword(ctx context.Context, id int, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	u, ok := s.rows[id]
	if !ok {
		return models.ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = time.Now()
	s.rows[id] = u
	return nil
}

func (s *MemoryUserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr(); err != nil {
		return err
	}
	if _, ok := s.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}
