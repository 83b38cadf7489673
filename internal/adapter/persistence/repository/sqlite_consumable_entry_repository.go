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

const consumableEntryColumns = `id, work_order_id, entry_type, item_name, unit, quantity,
	unit_cost_snapshot, total_cost, notes, created_by, created_at`

// ConsumableEntrySQLiteRepository implements IConsumableEntryRepository on SQLite.
type ConsumableEntrySQLiteRepository struct {
	db database.DBTX
}

var _ interfaces.IConsumableEntryRepository = (*ConsumableEntrySQLiteRepository)(nil)

func NewConsumableEntrySQLiteRepository(db database.DBTX) *ConsumableEntrySQLiteRepository {
	return &ConsumableEntrySQLiteRepository{db: db}
}

func (r *ConsumableEntrySQLiteRepository) Create(ctx context.Context, e entities.ConsumableEntry) (entities.ConsumableEntry, error) {
	query := `INSERT INTO consumable_entries (` + consumableEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkOrderID,
		string(e.EntryType),
		e.ItemName,
		e.Unit,
		e.Quantity,
		e.UnitCostSnapshot,
		e.TotalCost,
		e.Notes,
		e.CreatedBy,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return entities.ConsumableEntry{}, fmt.Errorf("inserting consumable entry: %w", err)
	}
	return e, nil
}

func (r *ConsumableEntrySQLiteRepository) GetByID(ctx context.Context, id string) (entities.ConsumableEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+consumableEntryColumns+` FROM consumable_entries WHERE id = ?`, id)
	e, err := scanConsumableEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ConsumableEntry{}, nil
	}
	return e, err
}

func (r *ConsumableEntrySQLiteRepository) Delete(ctx context.Context, id string) (entities.ConsumableEntry, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil || e.ID == "" {
		return entities.ConsumableEntry{}, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM consumable_entries WHERE id = ?`, id); err != nil {
		return entities.ConsumableEntry{}, fmt.Errorf("deleting consumable entry: %w", err)
	}
	return e, nil
}

func (r *ConsumableEntrySQLiteRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.ConsumableEntry, error) {
	query := `SELECT ` + consumableEntryColumns + ` FROM consumable_entries
		WHERE work_order_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("listing consumable entries: %w", err)
	}
	defer rows.Close()

	var out []entities.ConsumableEntry
	for rows.Next() {
		e, err := scanConsumableEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating consumable entries: %w", err)
	}
	return out, nil
}

func scanConsumableEntry(s rowScanner) (entities.ConsumableEntry, error) {
	var (
		e                    entities.ConsumableEntry
		entryType, createdAt string
	)
	err := s.Scan(
		&e.ID, &e.WorkOrderID, &entryType, &e.ItemName, &e.Unit, &e.Quantity,
		&e.UnitCostSnapshot, &e.TotalCost, &e.Notes, &e.CreatedBy, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ConsumableEntry{}, err
		}
		return entities.ConsumableEntry{}, fmt.Errorf("scanning consumable entry: %w", err)
	}
	e.EntryType = entities.ConsumableEntryType(entryType)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}
