package services

import (
	"context"
	"errors"
	"testing"

	"resto-admin/models"
	"resto-admin/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableService() (*TableService, *repositories.MemoryTableStore) {
	store := repositories.NewMemoryTableStore()
	return NewTableService(store, LogNotifier{}), store
}

func TestCreateTableAssignsNextNumber(t *testing.T) {
	svc, store := newTableService()
	store.SeedFloorPlan()

	table, err := svc.CreateTable(context.Background(), models.CreateTableRequest{Seats: 4, Shape: models.TableShapeSquare, X: 100, Y: 400})
	require.NoError(t, err)

	assert.Equal(t, 7, table.Number)
	assert.Equal(t, models.TableStatusAvailable, table.Status)
}

func TestCreateTableValidation(t *testing.T) {
	svc, _ := newTableService()
	ctx := context.Background()

	var vErr *models.ValidationError
	_, err := svc.CreateTable(ctx, models.CreateTableRequest{Seats: 0, Shape: models.TableShapeRound})
	require.ErrorAs(t, err, &vErr)
	_, err = svc.CreateTable(ctx, models.CreateTableRequest{Seats: 4, Shape: "oval"})
	require.ErrorAs(t, err, &vErr)
	_, err = svc.CreateTable(ctx, models.CreateTableRequest{Seats: 4, Shape: models.TableShapeRound, X: -10})
	require.ErrorAs(t, err, &vErr)
}

func TestMoveTableAppliesDisplacement(t *testing.T) {
	svc, _ := newTableService()
	ctx := context.Background()

	table, err := svc.CreateTable(ctx, models.CreateTableRequest{Seats: 4, Shape: models.TableShapeSquare, X: 100, Y: 100})
	require.NoError(t, err)

	moved, err := svc.MoveTable(ctx, table.ID, 50, -20)
	require.NoError(t, err)
	assert.Equal(t, 150, moved.X)
	assert.Equal(t, 80, moved.Y)

	// persisted, not just returned
	persisted, err := svc.GetTable(ctx, table.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, persisted.X)
	assert.Equal(t, 80, persisted.Y)
}

func TestMoveTableClampsAtZero(t *testing.T) {
	svc, _ := newTableService()
	ctx := context.Background()

	table, err := svc.CreateTable(ctx, models.CreateTableRequest{Seats: 2, Shape: models.TableShapeRound, X: 100, Y: 50})
	require.NoError(t, err)

	moved, err := svc.MoveTable(ctx, table.ID, -200, -100)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.X)
	assert.Equal(t, 0, moved.Y)
}

func TestMoveTableZeroDeltaIsNoOp(t *testing.T) {
	svc, store := newTableService()
	ctx := context.Background()

	table, err := svc.CreateTable(ctx, models.CreateTableRequest{Seats: 2, Shape: models.TableShapeRound, X: 100, Y: 50})
	require.NoError(t, err)

	store.FailWrites(errors.New("should not be called"))

	moved, err := svc.MoveTable(ctx, table.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, moved.X)
	assert.Equal(t, 50, moved.Y)
}

func TestMoveTableFailureLeavesPosition(t *testing.T) {
	svc, store := newTableService()
	ctx := context.Background()

	table, err := svc.CreateTable(ctx, models.CreateTableRequest{Seats: 2, Shape: models.TableShapeRound, X: 100, Y: 50})
	require.NoError(t, err)

	store.FailNextWrites(1, errors.New("connection reset"))

	_, err = svc.MoveTable(ctx, table.ID, 30, 30)
	var pErr *models.PersistenceError
	require.ErrorAs(t, err, &pErr)

	persisted, getErr := svc.GetTable(ctx, table.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 100, persisted.X)
	assert.Equal(t, 50, persisted.Y)
}

func TestSetTableStatus(t *testing.T) {
	svc, store := newTableService()
	store.SeedFloorPlan()
	ctx := context.Background()

	table, err := svc.SetStatus(ctx, 1, models.TableStatusOccupied)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusOccupied, table.Status)

	var vErr *models.ValidationError
	_, err = svc.SetStatus(ctx, 1, "broken")
	require.ErrorAs(t, err, &vErr)
}

func TestAssignAndClearServer(t *testing.T) {
	svc, store := newTableService()
	store.SeedFloorPlan()
	ctx := context.Background()

	name := "Dewi"
	table, err := svc.AssignServer(ctx, 1, &name)
	require.NoError(t, err)
	require.NotNil(t, table.Server)
	assert.Equal(t, "Dewi", *table.Server)

	table, err = svc.AssignServer(ctx, 1, nil)
	require.NoError(t, err)
	assert.Nil(t, table.Server)
}

func TestTableStats(t *testing.T) {
	svc, store := newTableService()
	store.SeedFloorPlan()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 1, stats.Reserved)
	assert.Equal(t, 1, stats.Cleaning)
}

func TestDeleteTable(t *testing.T) {
	svc, store := newTableService()
	store.SeedFloorPlan()
	ctx := context.Background()

	require.NoError(t, svc.DeleteTable(ctx, 3))
	_, err := svc.GetTable(ctx, 3)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteTable(ctx, 3), models.ErrNotFound)
}

func TestFloorPlanTemplates(t *testing.T) {
	svc, _ := newTableService()

	templates := svc.FloorPlanTemplates()
	require.Len(t, templates, 4)
	assert.Equal(t, "casual", templates[0].ID)
}
