package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/infrastructure/database"
	"fleet_maintenance/internal/usecase/interfaces"
)

const workOrderColumns = `id, code, equipment_id, title, description, status, approval_status,
	started_at, completed_at, completion_approval_status, completion_approved_by,
	completion_approved_at, completion_notes, specification, cost_summary,
	created_by, created_at, updated_at`

// WorkOrderSQLiteRepository implements IWorkOrderRepository on SQLite.
type WorkOrderSQLiteRepository struct {
	db database.DBTX
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderSQLiteRepository)(nil)

func NewWorkOrderSQLiteRepository(db database.DBTX) *WorkOrderSQLiteRepository {
	return &WorkOrderSQLiteRepository{db: db}
}

func (r *WorkOrderSQLiteRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	summary, err := costSummaryToJSON(wo.CostSummary)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("encoding cost summary: %w", err)
	}
	query := `INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		wo.ID,
		wo.Code,
		wo.EquipmentID,
		wo.Title,
		wo.Description,
		string(wo.Status),
		string(wo.ApprovalStatus),
		nullableTimeToString(wo.StartedAt),
		nullableTimeToString(wo.CompletedAt),
		string(wo.CompletionApprovalStatus),
		wo.CompletionApprovedBy,
		nullableTimeToString(wo.CompletionApprovedAt),
		wo.CompletionNotes,
		specificationValue(wo.Specification),
		summary,
		wo.CreatedBy,
		formatTime(wo.CreatedAt),
		formatTime(wo.UpdatedAt),
	)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("inserting work order: %w", err)
	}
	return wo, nil
}

func (r *WorkOrderSQLiteRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+workOrderColumns+` FROM work_orders WHERE id = ?`, id)
	wo, err := scanWorkOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	return wo, err
}

func (r *WorkOrderSQLiteRepository) ListByStatuses(ctx context.Context, statuses []entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	args := make([]any, 0, len(statuses))
	for _, s := range statuses {
		args = append(args, string(s))
	}

	query := `SELECT ` + workOrderColumns + ` FROM work_orders
		WHERE status IN (` + placeholders + `) ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work orders by status: %w", err)
	}
	defer rows.Close()

	var out []entities.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, wo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work orders: %w", err)
	}
	return out, nil
}

func (r *WorkOrderSQLiteRepository) Update(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	query := `UPDATE work_orders SET title = ?, description = ?, status = ?, approval_status = ?,
		started_at = ?, completed_at = ?, completion_approval_status = ?, completion_approved_by = ?,
		completion_approved_at = ?, completion_notes = ?, specification = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		wo.Title,
		wo.Description,
		string(wo.Status),
		string(wo.ApprovalStatus),
		nullableTimeToString(wo.StartedAt),
		nullableTimeToString(wo.CompletedAt),
		string(wo.CompletionApprovalStatus),
		wo.CompletionApprovedBy,
		nullableTimeToString(wo.CompletionApprovedAt),
		wo.CompletionNotes,
		specificationValue(wo.Specification),
		formatTime(wo.UpdatedAt),
		wo.ID,
	)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("updating work order: %w", err)
	}
	if ok, err := rowsAffected(res); err != nil || !ok {
		return entities.WorkOrder{}, err
	}
	return r.GetByID(ctx, wo.ID)
}

func (r *WorkOrderSQLiteRepository) UpdateCostSummary(ctx context.Context, id string, summary entities.CostSummary) error {
	encoded, err := costSummaryToJSON(&summary)
	if err != nil {
		return fmt.Errorf("encoding cost summary: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE work_orders SET cost_summary = ? WHERE id = ?`, encoded, id); err != nil {
		return fmt.Errorf("updating cost summary: %w", err)
	}
	return nil
}

func scanWorkOrder(s rowScanner) (entities.WorkOrder, error) {
	var (
		wo                                         entities.WorkOrder
		status, approval, completionApproval       string
		startedAt, completedAt, completionApproved sql.NullString
		specification, costSummary                 sql.NullString
		createdAt, updatedAt                       string
	)
	err := s.Scan(
		&wo.ID, &wo.Code, &wo.EquipmentID, &wo.Title, &wo.Description, &status, &approval,
		&startedAt, &completedAt, &completionApproval, &wo.CompletionApprovedBy,
		&completionApproved, &wo.CompletionNotes, &specification, &costSummary,
		&wo.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.WorkOrder{}, err
		}
		return entities.WorkOrder{}, fmt.Errorf("scanning work order: %w", err)
	}

	wo.Status = entities.WorkOrderStatus(status)
	wo.ApprovalStatus = entities.ApprovalStatus(approval)
	wo.CompletionApprovalStatus = entities.CompletionApprovalStatus(completionApproval)
	wo.StartedAt = parseNullableTime(startedAt)
	wo.CompletedAt = parseNullableTime(completedAt)
	wo.CompletionApprovedAt = parseNullableTime(completionApproved)
	wo.CreatedAt = parseTime(createdAt)
	wo.UpdatedAt = parseTime(updatedAt)
	if specification.Valid && specification.String != "" {
		wo.Specification = json.RawMessage(specification.String)
	}
	if wo.CostSummary, err = costSummaryFromJSON(costSummary); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("decoding cost summary: %w", err)
	}
	return wo, nil
}

func specificationValue(spec json.RawMessage) any {
	if len(spec) == 0 {
		return nil
	}
	return string(spec)
}
