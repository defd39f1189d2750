package services

import (
	"context"
	"errors"

	"resto-admin/models"
	"resto-admin/repositories"
)

type TableService struct {
	tables   repositories.TableStore
	notifier Notifier
}

func NewTableService(tables repositories.TableStore, notifier Notifier) *TableService {
	return &TableService{tables: tables, notifier: notifier}
}

func (s *TableService) ListTables(ctx context.Context) ([]models.Table, error) {
	return s.tables.List(ctx)
}

func (s *TableService) GetTable(ctx context.Context, id int) (*models.Table, error) {
	return s.tables.GetByID(ctx, id)
}

func (s *TableService) CreateTable(ctx context.Context, req models.CreateTableRequest) (*models.Table, error) {
	if req.Seats < 1 {
		return nil, models.NewValidationError("seats", "must be at least 1")
	}
	if !models.IsTableShape(req.Shape) {
		return nil, models.NewValidationError("shape", "must be round, square or rectangle")
	}
	if req.X < 0 || req.Y < 0 {
		return nil, models.NewValidationError("position", "coordinates must not be negative")
	}

	existing, err := s.tables.List(ctx)
	if err != nil {
		return nil, err
	}
	number := 0
	for _, t := range existing {
		if t.Number > number {
			number = t.Number
		}
	}

	table := &models.Table{
		Number: number + 1,
		Seats:  req.Seats,
		Shape:  req.Shape,
		Status: models.TableStatusAvailable,
		X:      req.X,
		Y:      req.Y,
	}
	if err := s.tables.Create(ctx, table); err != nil {
		s.notifier.Error("Failed to create table")
		return nil, models.NewPersistenceError("create table", err)
	}

	s.notifier.Success("Table added")
	return table, nil
}

func (s *TableService) UpdateTable(ctx context.Context, id int, req models.UpdateTableRequest) (*models.Table, error) {
	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Seats != 0 {
		if req.Seats < 1 {
			return nil, models.NewValidationError("seats", "must be at least 1")
		}
		table.Seats = req.Seats
	}
	if req.Shape != "" {
		if !models.IsTableShape(req.Shape) {
			return nil, models.NewValidationError("shape", "must be round, square or rectangle")
		}
		table.Shape = req.Shape
	}
	if req.Server != nil {
		table.Server = req.Server
	}

	if err := s.tables.Update(ctx, table); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update table")
		return nil, models.NewPersistenceError("update table", err)
	}

	s.notifier.Success("Table updated")
	return table, nil
}

// MoveTable applies a floor-plan drag. The new position is persisted before
// the caller sees it: unlike the category reorder there is no optimistic
// application, a failed move leaves the table where it was. Coordinates clamp
// at zero.
func (s *TableService) MoveTable(ctx context.Context, id, dx, dy int) (*models.Table, error) {
	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dx == 0 && dy == 0 {
		return table, nil
	}

	table.X = max(0, table.X+dx)
	table.Y = max(0, table.Y+dy)

	if err := s.tables.Update(ctx, table); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to move table")
		return nil, models.NewPersistenceError("move table", err)
	}
	return table, nil
}

// SetStatus is the context-menu path: persist, then report.
func (s *TableService) SetStatus(ctx context.Context, id int, status string) (*models.Table, error) {
	if !models.IsTableStatus(status) {
		return nil, models.NewValidationError("status", "unknown table status")
	}

	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	table.Status = status
	if err := s.tables.Update(ctx, table); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to update table status")
		return nil, models.NewPersistenceError("update table status", err)
	}

	s.notifier.Success("Table status updated")
	return table, nil
}

func (s *TableService) AssignServer(ctx context.Context, id int, server *string) (*models.Table, error) {
	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	table.Server = server
	if err := s.tables.Update(ctx, table); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.notifier.Error("Failed to assign server")
		return nil, models.NewPersistenceError("assign server", err)
	}

	s.notifier.Success("Server assignment updated")
	return table, nil
}

func (s *TableService) DeleteTable(ctx context.Context, id int) error {
	if err := s.tables.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		s.notifier.Error("Failed to delete table")
		return models.NewPersistenceError("delete table", err)
	}
	s.notifier.Success("Table removed")
	return nil
}

// Stats recomputes the per-status counts from the full table collection.
func (s *TableService) Stats(ctx context.Context) (*models.TableStats, error) {
	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.TableStats{}
	for _, t := range tables {
		stats.Total++
		switch t.Status {
		case models.TableStatusAvailable:
			stats.Available++
		case models.TableStatusOccupied:
			stats.Occupied++
		case models.TableStatusReserved:
			stats.Reserved++
		case models.TableStatusCleaning:
			stats.Cleaning++
		}
	}
	return stats, nil
}

// FloorPlanTemplates lists the built-in starting layouts.
func (s *TableService) FloorPlanTemplates() []models.FloorPlanTemplate {
	return []models.FloorPlanTemplate{
		{ID: "casual", Name: "Casual Dining", Tables: 12},
		{ID: "fine", Name: "Fine Dining", Tables: 8},
		{ID: "cafe", Name: "Cafe Style", Tables: 16},
		{ID: "bar", Name: "Bar & Grill", Tables: 10},
	}
}
