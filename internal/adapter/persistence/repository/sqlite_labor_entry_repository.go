package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/infrastructure/database"
	"fleet_maintenance/internal/usecase/interfaces"
)

const laborEntryColumns = `id, work_order_id, employee_id, hours_worked, hourly_rate_snapshot,
	overtime_factor, total_cost, time_source, work_date, description, created_by, created_at, updated_at`

// LaborEntrySQLiteRepository implements ILaborEntryRepository on SQLite.
type LaborEntrySQLiteRepository struct {
	db database.DBTX
}

var _ interfaces.ILaborEntryRepository = (*LaborEntrySQLiteRepository)(nil)

func NewLaborEntrySQLiteRepository(db database.DBTX) *LaborEntrySQLiteRepository {
	return &LaborEntrySQLiteRepository{db: db}
}

func (r *LaborEntrySQLiteRepository) Create(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
	query := `INSERT INTO labor_entries (` + laborEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkOrderID,
		e.EmployeeID,
		e.HoursWorked,
		e.HourlyRateSnapshot,
		e.OvertimeFactor,
		e.TotalCost,
		string(e.TimeSource),
		formatTime(e.WorkDate),
		e.Description,
		e.CreatedBy,
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return entities.LaborEntry{}, fmt.Errorf("inserting labor entry: %w", err)
	}
	return e, nil
}

func (r *LaborEntrySQLiteRepository) GetByID(ctx context.Context, id string) (entities.LaborEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+laborEntryColumns+` FROM labor_entries WHERE id = ?`, id)
	e, err := scanLaborEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.LaborEntry{}, nil
	}
	return e, err
}

func (r *LaborEntrySQLiteRepository) Update(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
	query := `UPDATE labor_entries SET hours_worked = ?, overtime_factor = ?, total_cost = ?,
		description = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.HoursWorked, e.OvertimeFactor, e.TotalCost, e.Description, formatTime(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return entities.LaborEntry{}, fmt.Errorf("updating labor entry: %w", err)
	}
	if ok, err := rowsAffected(res); err != nil || !ok {
		return entities.LaborEntry{}, err
	}
	return r.GetByID(ctx, e.ID)
}

func (r *LaborEntrySQLiteRepository) UpdateHours(ctx context.Context, id string, hours, totalCost float64, updatedAt time.Time) (entities.LaborEntry, error) {
	query := `UPDATE labor_entries SET hours_worked = ?, total_cost = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, hours, totalCost, formatTime(updatedAt), id)
	if err != nil {
		return entities.LaborEntry{}, fmt.Errorf("updating labor entry hours: %w", err)
	}
	if ok, err := rowsAffected(res); err != nil || !ok {
		return entities.LaborEntry{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *LaborEntrySQLiteRepository) Delete(ctx context.Context, id string) (entities.LaborEntry, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil || e.ID == "" {
		return entities.LaborEntry{}, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM labor_entries WHERE id = ?`, id); err != nil {
		return entities.LaborEntry{}, fmt.Errorf("deleting labor entry: %w", err)
	}
	return e, nil
}

func (r *LaborEntrySQLiteRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.LaborEntry, error) {
	return r.list(ctx, `SELECT `+laborEntryColumns+` FROM labor_entries
		WHERE work_order_id = ? ORDER BY created_at, id`, workOrderID)
}

func (r *LaborEntrySQLiteRepository) ListAutoByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.LaborEntry, error) {
	return r.list(ctx, `SELECT `+laborEntryColumns+` FROM labor_entries
		WHERE work_order_id = ? AND time_source = ? ORDER BY created_at, id`, workOrderID, string(entities.TimeSourceAuto))
}

func (r *LaborEntrySQLiteRepository) list(ctx context.Context, query string, args ...any) ([]entities.LaborEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing labor entries: %w", err)
	}
	defer rows.Close()

	var out []entities.LaborEntry
	for rows.Next() {
		e, err := scanLaborEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating labor entries: %w", err)
	}
	return out, nil
}

func scanLaborEntry(s rowScanner) (entities.LaborEntry, error) {
	var (
		e                                      entities.LaborEntry
		source, workDate, createdAt, updatedAt string
	)
	err := s.Scan(
		&e.ID, &e.WorkOrderID, &e.EmployeeID, &e.HoursWorked, &e.HourlyRateSnapshot,
		&e.OvertimeFactor, &e.TotalCost, &source, &workDate, &e.Description, &e.CreatedBy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.LaborEntry{}, err
		}
		return entities.LaborEntry{}, fmt.Errorf("scanning labor entry: %w", err)
	}
	e.TimeSource = entities.TimeSource(source)
	e.WorkDate = parseTime(workDate)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return e, nil
}
