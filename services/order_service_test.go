package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"resto-admin/models"
	"resto-admin/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService() (*OrderService, *repositories.MemoryOrderStore) {
	store := repositories.NewMemoryOrderStore()
	return NewOrderService(store, repositories.NewMemoryCustomerStore(), LogNotifier{}), store
}

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName: "Dewi",
		TableNumber:  "T-4",
		Items: []models.OrderItemRequest{
			{MenuItemID: 1, MenuItemName: "Nasi Goreng", Quantity: 2, Price: 45000},
			{MenuItemID: 2, MenuItemName: "Es Teh", Quantity: 1, Price: 8000},
		},
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	got := GenerateOrderNumber(time.UnixMilli(1699999123456))
	assert.Equal(t, "ORD-123456", got)

	pattern := regexp.MustCompile(`^ORD-\d{6}$`)
	assert.True(t, pattern.MatchString(GenerateOrderNumber(time.Now())))
	// low timestamps pad with zeros
	assert.Equal(t, "ORD-000042", GenerateOrderNumber(time.UnixMilli(42)))
}

func TestCreateOrder(t *testing.T) {
	svc, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusReceived, order.Status)
	assert.Equal(t, models.OrderTypeDineIn, order.OrderType)
	assert.Equal(t, 98000.0, order.TotalAmount)
	assert.Regexp(t, `^ORD-\d{6}$`, order.OrderNumber)
	assert.NotZero(t, order.ID)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.CreateOrderRequest)
	}{
		{"missing customer name", func(r *models.CreateOrderRequest) { r.CustomerName = "  " }},
		{"missing table number", func(r *models.CreateOrderRequest) { r.TableNumber = "" }},
		{"no items", func(r *models.CreateOrderRequest) { r.Items = nil }},
		{"unknown order type", func(r *models.CreateOrderRequest) { r.OrderType = "drive-thru" }},
		{"zero quantity", func(r *models.CreateOrderRequest) { r.Items[0].Quantity = 0 }},
		{"negative price", func(r *models.CreateOrderRequest) { r.Items[0].Price = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrderRequest()
			tc.mutate(&req)
			_, err := svc.CreateOrder(ctx, req)
			var vErr *models.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestSetStatusAnyTransition(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)

	// no transition guard: received straight to served, then back again
	updated, err := svc.SetStatus(ctx, order.ID, models.OrderStatusServed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusServed, updated.Status)

	updated, err = svc.SetStatus(ctx, order.ID, models.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReceived, updated.Status)
}

func TestSetStatusUnknown(t *testing.T) {
	svc, _ := newOrderService()

	_, err := svc.SetStatus(context.Background(), 1, "cancelled")
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetStatusNotFound(t *testing.T) {
	svc, _ := newOrderService()

	_, err := svc.SetStatus(context.Background(), 999, models.OrderStatusReady)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMoveOrderSameColumnIsNoOp(t *testing.T) {
	svc, store := newOrderService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)

	before, err := store.GetByID(ctx, order.ID)
	require.NoError(t, err)

	moved, err := svc.MoveOrder(ctx, order.ID, models.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReceived, moved.Status)

	after, err := store.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt), "same-column drop must not touch the order")
}

func TestMoveOrderToOtherColumn(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)

	moved, err := svc.MoveOrder(ctx, order.ID, models.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, moved.Status)
}

func TestAddItemMergesByMenuItem(t *testing.T) {
	soup := models.MenuItem{ID: 7, Name: "Soto Ayam", Price: 30000}
	tea := models.MenuItem{ID: 8, Name: "Es Teh", Price: 8000}

	items := AddItem(nil, soup)
	items = AddItem(items, soup)
	items = AddItem(items, tea)

	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Soto Ayam", items[0].MenuItemName)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestSetItemQuantity(t *testing.T) {
	items := []models.OrderItem{
		{MenuItemID: 1, Quantity: 2, Price: 10000},
		{MenuItemID: 2, Quantity: 1, Price: 5000},
	}

	items = SetItemQuantity(items, 1, 5)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)

	// zero or negative removes the line
	items = SetItemQuantity(items, 1, 0)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].MenuItemID)

	items = SetItemQuantity(items, 2, -3)
	assert.Empty(t, items)
}

func TestSetItemQuantityRemovalLeavesInputIntact(t *testing.T) {
	items := []models.OrderItem{
		{MenuItemID: 1, Quantity: 2, Price: 10000},
		{MenuItemID: 2, Quantity: 1, Price: 5000},
		{MenuItemID: 3, Quantity: 4, Price: 8000},
	}

	out := SetItemQuantity(items, 1, 0)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].MenuItemID)
	assert.Equal(t, 3, out[1].MenuItemID)

	// the original slice is not reshuffled under the caller
	assert.Equal(t, 1, items[0].MenuItemID)
	assert.Equal(t, 2, items[1].MenuItemID)
	assert.Equal(t, 3, items[2].MenuItemID)
}

func TestUpdateItemsRecomputesTotal(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateItems(ctx, order.ID, []models.OrderItemRequest{
		{MenuItemID: 3, MenuItemName: "Ayam Bakar", Quantity: 3, Price: 40000},
	})
	require.NoError(t, err)
	assert.Equal(t, 120000.0, updated.TotalAmount)
	require.Len(t, updated.Items, 1)
}

func TestUpdateItemsEmptyRejected(t *testing.T) {
	svc, _ := newOrderService()

	_, err := svc.UpdateItems(context.Background(), 1, nil)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))
	_, err = svc.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteOrder(ctx, order.ID), models.ErrNotFound)
}

func TestComputeElapsed(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	order := models.Order{CreatedAt: now.Add(-90 * time.Second), UpdatedAt: now.Add(-90 * time.Second)}
	assert.Equal(t, models.Elapsed{Minutes: 1, Seconds: 30}, ComputeElapsed(order, now))

	// a later update resets the timer origin
	order.UpdatedAt = now.Add(-10 * time.Second)
	assert.Equal(t, models.Elapsed{Minutes: 0, Seconds: 10}, ComputeElapsed(order, now))

	// never negative
	order.UpdatedAt = now.Add(5 * time.Second)
	assert.Equal(t, models.Elapsed{Minutes: 0, Seconds: 0}, ComputeElapsed(order, now))
}

func TestFilterOrders(t *testing.T) {
	orders := []models.Order{
		{OrderNumber: "ORD-100001", CustomerName: "Budi Santoso", TableNumber: "T-1", Status: models.OrderStatusReceived},
		{OrderNumber: "ORD-100002", CustomerName: "Siti Rahma", TableNumber: "T-2", Status: models.OrderStatusPreparing},
		{OrderNumber: "ORD-100003", CustomerName: "Budi Hartono", TableNumber: "Bar", Status: models.OrderStatusServed},
	}

	assert.Len(t, FilterOrders(orders, "", ""), 3)
	assert.Len(t, FilterOrders(orders, "", "all"), 3)
	assert.Len(t, FilterOrders(orders, "budi", ""), 2)
	assert.Len(t, FilterOrders(orders, "BAR", ""), 1)
	assert.Len(t, FilterOrders(orders, "100002", ""), 1)
	assert.Len(t, FilterOrders(orders, "", models.OrderStatusPreparing), 1)
	assert.Len(t, FilterOrders(orders, "budi", models.OrderStatusServed), 1)
	assert.Empty(t, FilterOrders(orders, "nobody", ""))
}

func TestBoardGroupsByStatus(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, second.ID, models.OrderStatusReady)
	require.NoError(t, err)

	columns, err := svc.Board(ctx)
	require.NoError(t, err)
	require.Len(t, columns, 4)

	assert.Equal(t, models.OrderStatuses, []string{columns[0].Status, columns[1].Status, columns[2].Status, columns[3].Status})
	require.Len(t, columns[0].Orders, 1)
	assert.Equal(t, first.ID, columns[0].Orders[0].ID)
	assert.Empty(t, columns[1].Orders)
	require.Len(t, columns[2].Orders, 1)
	assert.Equal(t, second.ID, columns[2].Orders[0].ID)
}

func TestStats(t *testing.T) {
	svc, _ := newOrderService()
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, validOrderRequest())
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, second.ID, models.OrderStatusServed)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, first.TotalAmount+second.TotalAmount, stats.TotalRevenue)
	assert.Equal(t, stats.TotalRevenue, stats.TodayRevenue)
}

func TestCreateOrderPersistenceFailure(t *testing.T) {
	svc, store := newOrderService()
	store.FailWrites(errors.New("disk full"))

	_, err := svc.CreateOrder(context.Background(), validOrderRequest())
	var pErr *models.PersistenceError
	require.ErrorAs(t, err, &pErr)
}
