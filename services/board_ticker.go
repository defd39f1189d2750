package services

import (
	"context"
	"log"
	"sync"
	"time"

	"resto-admin/models"
	"resto-admin/repositories"
)

// BoardTicker recomputes the elapsed time of every live order once per second
// while the board is being served. The timer map is rebuilt from the current
// order collection on each tick, so orders deleted between ticks simply drop
// out of the next snapshot.
type BoardTicker struct {
	orders   repositories.OrderStore
	interval time.Duration

	mu     sync.RWMutex
	timers map[int]models.Elapsed

	cancel context.CancelFunc
	done   chan struct{}
}

func NewBoardTicker(orders repositories.OrderStore) *BoardTicker {
	return &BoardTicker{
		orders:   orders,
		interval: time.Second,
		timers:   map[int]models.Elapsed{},
	}
}

// Start launches the tick loop. It runs until Stop is called or ctx is
// cancelled; starting twice is a no-op.
func (t *BoardTicker) Start(ctx context.Context) {
	if t.cancel != nil {
		return
	}

	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := t.Refresh(ctx, time.Now()); err != nil {
					log.Println("Board ticker refresh failed:", err)
				}
			}
		}
	}()
}

// Stop tears the loop down and waits for the in-flight tick to finish.
func (t *BoardTicker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
}

// Refresh rebuilds the timer map from the full current order collection.
func (t *BoardTicker) Refresh(ctx context.Context, now time.Time) error {
	orders, err := t.orders.List(ctx)
	if err != nil {
		return err
	}

	timers := make(map[int]models.Elapsed, len(orders))
	for _, o := range orders {
		timers[o.ID] = ComputeElapsed(o, now)
	}

	t.mu.Lock()
	t.timers = timers
	t.mu.Unlock()
	return nil
}

// Snapshot returns the latest timer values keyed by order id.
func (t *BoardTicker) Snapshot() map[int]models.Elapsed {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[int]models.Elapsed, len(t.timers))
	for id, e := range t.timers {
		out[id] = e
	}
	return out
}
