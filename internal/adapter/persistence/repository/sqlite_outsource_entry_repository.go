package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/infrastructure/database"
	"fleet_maintenance/internal/usecase/interfaces"
)

const outsourceEntryColumns = `id, work_order_id, vendor_name, description, planned_cost,
	actual_cost, created_by, created_at`

// OutsourceEntrySQLiteRepository implements IOutsourceEntryRepository on SQLite.
type OutsourceEntrySQLiteRepository struct {
	db database.DBTX
}

var _ interfaces.IOutsourceEntryRepository = (*OutsourceEntrySQLiteRepository)(nil)

func NewOutsourceEntrySQLiteRepository(db database.DBTX) *OutsourceEntrySQLiteRepository {
	return &OutsourceEntrySQLiteRepository{db: db}
}

func (r *OutsourceEntrySQLiteRepository) Create(ctx context.Context, e entities.OutsourceEntry) (entities.OutsourceEntry, error) {
	query := `INSERT INTO outsource_entries (` + outsourceEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkOrderID,
		e.VendorName,
		e.Description,
		nullableFloat(e.PlannedCost),
		e.ActualCost,
		e.CreatedBy,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return entities.OutsourceEntry{}, fmt.Errorf("inserting outsource entry: %w", err)
	}
	return e, nil
}

func (r *OutsourceEntrySQLiteRepository) GetByID(ctx context.Context, id string) (entities.OutsourceEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+outsourceEntryColumns+` FROM outsource_entries WHERE id = ?`, id)
	e, err := scanOutsourceEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OutsourceEntry{}, nil
	}
	return e, err
}

func (r *OutsourceEntrySQLiteRepository) Delete(ctx context.Context, id string) (entities.OutsourceEntry, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil || e.ID == "" {
		return entities.OutsourceEntry{}, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM outsource_entries WHERE id = ?`, id); err != nil {
		return entities.OutsourceEntry{}, fmt.Errorf("deleting outsource entry: %w", err)
	}
	return e, nil
}

func (r *OutsourceEntrySQLiteRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.OutsourceEntry, error) {
	query := `SELECT ` + outsourceEntryColumns + ` FROM outsource_entries
		WHERE work_order_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("listing outsource entries: %w", err)
	}
	defer rows.Close()

	var out []entities.OutsourceEntry
	for rows.Next() {
		e, err := scanOutsourceEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outsource entries: %w", err)
	}
	return out, nil
}

func scanOutsourceEntry(s rowScanner) (entities.OutsourceEntry, error) {
	var (
		e         entities.OutsourceEntry
		planned   sql.NullFloat64
		createdAt string
	)
	err := s.Scan(
		&e.ID, &e.WorkOrderID, &e.VendorName, &e.Description, &planned,
		&e.ActualCost, &e.CreatedBy, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.OutsourceEntry{}, err
		}
		return entities.OutsourceEntry{}, fmt.Errorf("scanning outsource entry: %w", err)
	}
	e.PlannedCost = floatPtr(planned)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}
