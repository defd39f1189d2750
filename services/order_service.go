package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resto-admin/models"
	"resto-admin/repositories"
)

type OrderService struct {
	orders    repositories.OrderStore
	customers repositories.CustomerStore
	notifier  Notifier
}

func NewOrderService(orders repositories.OrderStore, customers repositories.CustomerStore, notifier Notifier) *OrderService {
	return &OrderService{orders: orders, customers: customers, notifier: notifier}
}

// GenerateOrderNumber derives a display number from the last six digits of the
// current unix-millisecond timestamp.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%06d", now.UnixMilli()%1000000)
}

// OrderTotal is the derived total: sum of price times quantity over the lines.
func OrderTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func buildOrderItems(reqs []models.OrderItemRequest) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(reqs))
	for _, req := range reqs {
		if req.Quantity < 1 {
			return nil, models.NewValidationError("quantity", "must be at least 1")
		}
		if req.Price < 0 {
			return nil, models.NewValidationError("price", "must not be negative")
		}
		items = append(items, models.OrderItem{
			MenuItemID:      req.MenuItemID,
			MenuItemName:    req.MenuItemName,
			Quantity:        req.Quantity,
			Price:           req.Price,
			SpecialRequests: req.SpecialRequests,
		})
	}
	return items, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, models.NewValidationError("customer_name", "is required")
	}
	if strings.TrimSpace(req.TableNumber) == "" {
		return nil, models.NewValidationError("table_number", "is required")
	}
	if len(req.Items) == 0 {
		return nil, models.NewValidationError("items", "at least one item is required")
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = models.OrderTypeDineIn
	}
	if !models.IsOrderType(orderType) {
		return nil, models.NewValidationError("order_type", "must be dine-in, takeout or delivery")
	}

	items, err := buildOrderItems(req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:     GenerateOrderNumber(time.Now()),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		TableNumber:     strings.TrimSpace(req.TableNumber),
		OrderType:       orderType,
		Status:          models.OrderStatusReceived,
		Items:           items,
		TotalAmount:     OrderTotal(items),
		SpecialRequests: req.SpecialRequests,
		CustomerID:      req.CustomerID,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.notifier.Error("Failed to create order")
		return nil, models.NewPersistenceError("create order", err)
	}

	s.notifier.Success("Order " + order.OrderNumber + " created")
	return order, nil
}

// SetStatus moves an order to any of the four statuses. There is no transition
// guard: every status is reachable from every other.
func (s *OrderService) SetStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	if !models.IsOrderStatus(status) {
		return nil, models.NewValidationError("status", "unknown order status")
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update order status")
		return nil, models.NewPersistenceError("update order status", err)
	}

	s.notifier.Success("Order " + order.OrderNumber + " moved to " + status)
	return order, nil
}

// MoveOrder maps a board drag to a status change. Dropping a card back on its
// own column is a no-op and touches nothing.
func (s *OrderService) MoveOrder(ctx context.Context, id int, column string) (*models.Order, error) {
	if !models.IsOrderStatus(column) {
		return nil, models.NewValidationError("column", "unknown board column")
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == column {
		return order, nil
	}
	return s.SetStatus(ctx, id, column)
}

// AddItem merges a menu item into a draft line list: an existing line for the
// same menu item gains quantity, a new item appends a line with quantity 1.
func AddItem(items []models.OrderItem, menuItem models.MenuItem) []models.OrderItem {
	for i := range items {
		if items[i].MenuItemID == menuItem.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, models.OrderItem{
		MenuItemID:   menuItem.ID,
		MenuItemName: menuItem.Name,
		Quantity:     1,
		Price:        menuItem.Price,
	})
}

// SetItemQuantity sets a line's quantity; non-positive removes the line.
func SetItemQuantity(items []models.OrderItem, menuItemID, quantity int) []models.OrderItem {
	if quantity <= 0 {
		out := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			if item.MenuItemID != menuItemID {
				out = append(out, item)
			}
		}
		return out
	}
	for i := range items {
		if items[i].MenuItemID == menuItemID {
			items[i].Quantity = quantity
		}
	}
	return items
}

// UpdateItems replaces an order's lines and recomputes the total.
func (s *OrderService) UpdateItems(ctx context.Context, id int, reqs []models.OrderItemRequest) (*models.Order, error) {
	if len(reqs) == 0 {
		return nil, models.NewValidationError("items", "at least one item is required")
	}

	items, err := buildOrderItems(reqs)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items
	order.TotalAmount = OrderTotal(items)
	if err := s.orders.Update(ctx, order); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update order items")
		return nil, models.NewPersistenceError("update order items", err)
	}

	s.notifier.Success("Order " + order.OrderNumber + " updated")
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		s.notifier.Error("Failed to delete order")
		return models.NewPersistenceError("delete order", err)
	}
	s.notifier.Success("Order deleted")
	return nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// ComputeElapsed is the board timer value: time since the order's last
// mutation, never negative.
func ComputeElapsed(order models.Order, now time.Time) models.Elapsed {
	origin := order.CreatedAt
	if order.UpdatedAt.After(origin) {
		origin = order.UpdatedAt
	}
	d := now.Sub(origin)
	if d < 0 {
		d = 0
	}
	return models.Elapsed{
		Minutes: int(d / time.Minute),
		Seconds: int(d/time.Second) % 60,
	}
}

// FilterOrders applies the board search predicate: case-insensitive substring
// over order number, customer name and table number, plus a status equality
// filter that "all" bypasses. Recomputed on every call.
func FilterOrders(orders []models.Order, search, status string) []models.Order {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := []models.Order{}
	for _, o := range orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(o.OrderNumber + " " + o.CustomerName + " " + o.TableNumber)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// Board groups orders into the four status columns in presentation order.
func (s *OrderService) Board(ctx context.Context) ([]models.BoardColumn, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]models.BoardColumn, 0, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		col := models.BoardColumn{Status: status, Orders: []models.Order{}}
		for _, o := range orders {
			if o.Status == status {
				col.Orders = append(col.Orders, o)
			}
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// Stats aggregates over the full current order collection on every call.
func (s *OrderService) Stats(ctx context.Context) (*models.OrderStats, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &models.OrderStats{}
	for _, o := range orders {
		stats.Total++
		stats.TotalRevenue += o.TotalAmount

		y1, m1, d1 := o.CreatedAt.Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			stats.Today++
			stats.TodayRevenue += o.TotalAmount
		}

		switch o.Status {
		case models.OrderStatusReceived:
			stats.Pending++
		case models.OrderStatusPreparing:
			stats.Preparing++
		case models.OrderStatusReady:
			stats.Ready++
		case models.OrderStatusServed:
			stats.Completed++
		}
	}
	return stats, nil
}

func (s *OrderService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.customers.List(ctx)
}

func (s *OrderService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.customers.GetByID(ctx, id)
}
