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

const approvalColumns = `id, reference_type, reference_id, approver_id, status, notes,
	requested_by, requested_at, decided_at, cost_snapshot`

// ApprovalSQLiteRepository implements IApprovalRepository on SQLite.
type ApprovalSQLiteRepository struct {
	db database.DBTX
}

var _ interfaces.IApprovalRepository = (*ApprovalSQLiteRepository)(nil)

func NewApprovalSQLiteRepository(db database.DBTX) *ApprovalSQLiteRepository {
	return &ApprovalSQLiteRepository{db: db}
}

func (r *ApprovalSQLiteRepository) Create(ctx context.Context, a entities.Approval) (entities.Approval, error) {
	snapshot, err := costSummaryToJSON(a.CostSnapshot)
	if err != nil {
		return entities.Approval{}, fmt.Errorf("encoding cost snapshot: %w", err)
	}
	query := `INSERT INTO approvals (` + approvalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		string(a.ReferenceType),
		a.ReferenceID,
		a.ApproverID,
		string(a.Status),
		a.Notes,
		a.RequestedBy,
		formatTime(a.RequestedAt),
		nullableTimeToString(a.DecidedAt),
		snapshot,
	)
	if err != nil {
		return entities.Approval{}, fmt.Errorf("inserting approval: %w", err)
	}
	return a, nil
}

func (r *ApprovalSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Approval, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+approvalColumns+` FROM approvals WHERE id = ?`, id)
	a, err := scanApproval(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Approval{}, nil
	}
	return a, err
}

func (r *ApprovalSQLiteRepository) ListByReference(ctx context.Context, refType entities.ApprovalReferenceType, refID string) ([]entities.Approval, error) {
	query := `SELECT ` + approvalColumns + ` FROM approvals
		WHERE reference_type = ? AND reference_id = ? ORDER BY requested_at, id`
	rows, err := r.db.QueryContext(ctx, query, string(refType), refID)
	if err != nil {
		return nil, fmt.Errorf("listing approvals: %w", err)
	}
	defer rows.Close()

	var out []entities.Approval
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating approvals: %w", err)
	}
	return out, nil
}

// Decide only touches rows that are still pending.
func (r *ApprovalSQLiteRepository) Decide(ctx context.Context, a entities.Approval) (bool, error) {
	snapshot, err := costSummaryToJSON(a.CostSnapshot)
	if err != nil {
		return false, fmt.Errorf("encoding cost snapshot: %w", err)
	}
	query := `UPDATE approvals SET status = ?, approver_id = ?, notes = ?, decided_at = ?,
		cost_snapshot = COALESCE(?, cost_snapshot)
		WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(a.Status),
		a.ApproverID,
		a.Notes,
		nullableTimeToString(a.DecidedAt),
		snapshot,
		a.ID,
		string(entities.ApprovalStatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("deciding approval: %w", err)
	}
	return rowsAffected(res)
}

func scanApproval(s rowScanner) (entities.Approval, error) {
	var (
		a                            entities.Approval
		refType, status, requestedAt string
		decidedAt, snapshot          sql.NullString
	)
	err := s.Scan(
		&a.ID, &refType, &a.ReferenceID, &a.ApproverID, &status, &a.Notes,
		&a.RequestedBy, &requestedAt, &decidedAt, &snapshot,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Approval{}, err
		}
		return entities.Approval{}, fmt.Errorf("scanning approval: %w", err)
	}
	a.ReferenceType = entities.ApprovalReferenceType(refType)
	a.Status = entities.ApprovalStatus(status)
	a.RequestedAt = parseTime(requestedAt)
	a.DecidedAt = parseNullableTime(decidedAt)
	if a.CostSnapshot, err = costSummaryFromJSON(snapshot); err != nil {
		return entities.Approval{}, fmt.Errorf("decoding cost snapshot: %w", err)
	}
	return a, nil
}
