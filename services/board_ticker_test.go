package services

import (
	"context"
	"testing"
	"time"

	"resto-admin/models"
	"resto-admin/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardTickerRefresh(t *testing.T) {
	store := repositories.NewMemoryOrderStore()
	ctx := context.Background()

	order := &models.Order{OrderNumber: "ORD-000001", CustomerName: "Budi", TableNumber: "T-1", Status: models.OrderStatusReceived}
	require.NoError(t, store.Create(ctx, order))

	ticker := NewBoardTicker(store)
	require.NoError(t, ticker.Refresh(ctx, order.UpdatedAt.Add(95*time.Second)))

	timers := ticker.Snapshot()
	require.Len(t, timers, 1)
	assert.Equal(t, models.Elapsed{Minutes: 1, Seconds: 35}, timers[order.ID])
}

func TestBoardTickerDropsDeletedOrders(t *testing.T) {
	store := repositories.NewMemoryOrderStore()
	ctx := context.Background()

	first := &models.Order{OrderNumber: "ORD-000001", CustomerName: "Budi", TableNumber: "T-1", Status: models.OrderStatusReceived}
	second := &models.Order{OrderNumber: "ORD-000002", CustomerName: "Siti", TableNumber: "T-2", Status: models.OrderStatusReceived}
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	ticker := NewBoardTicker(store)
	require.NoError(t, ticker.Refresh(ctx, time.Now()))
	require.Len(t, ticker.Snapshot(), 2)

	require.NoError(t, store.Delete(ctx, first.ID))
	require.NoError(t, ticker.Refresh(ctx, time.Now()))

	timers := ticker.Snapshot()
	require.Len(t, timers, 1)
	_, ok := timers[second.ID]
	assert.True(t, ok)
}

func TestBoardTickerStartStop(t *testing.T) {
	store := repositories.NewMemoryOrderStore()
	ctx := context.Background()

	order := &models.Order{OrderNumber: "ORD-000001", CustomerName: "Budi", TableNumber: "T-1", Status: models.OrderStatusReceived}
	require.NoError(t, store.Create(ctx, order))

	ticker := NewBoardTicker(store)
	ticker.interval = 10 * time.Millisecond
	ticker.Start(ctx)
	// second start is a no-op
	ticker.Start(ctx)

	require.Eventually(t, func() bool {
		return len(ticker.Snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	ticker.Stop()
	// stop after stop must not block or panic
	ticker.Stop()
}

func TestBoardTickerStopsOnContextCancel(t *testing.T) {
	store := repositories.NewMemoryOrderStore()
	ctx, cancel := context.WithCancel(context.Background())

	ticker := NewBoardTicker(store)
	ticker.interval = 10 * time.Millisecond
	ticker.Start(ctx)

	cancel()

	select {
	case <-ticker.done:
	case <-time.After(time.Second):
		t.Fatal("tick loop did not exit after context cancellation")
	}
}
