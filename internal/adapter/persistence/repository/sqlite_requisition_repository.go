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

const (
	requisitionColumns     = `id, work_order_id, requested_by, notes, status, created_at, updated_at`
	requisitionLineColumns = `id, requisition_id, line_number, part_id, description, quantity_requested,
	quantity_approved, foreman_status, foreman_reviewer_id, foreman_decided_at, foreman_remarks,
	storekeeper_status, storekeeper_reviewer_id, storekeeper_decided_at, storekeeper_remarks, updated_at`
)

// RequisitionSQLiteRepository implements IRequisitionRepository on SQLite. Writes spanning
// the header and its lines go through the unit of work.
type RequisitionSQLiteRepository struct {
	db  database.DBTX
	uow database.UnitOfWork
}

var _ interfaces.IRequisitionRepository = (*RequisitionSQLiteRepository)(nil)

func NewRequisitionSQLiteRepository(db database.DBTX, uow database.UnitOfWork) *RequisitionSQLiteRepository {
	return &RequisitionSQLiteRepository{db: db, uow: uow}
}

func (r *RequisitionSQLiteRepository) Create(ctx context.Context, req entities.Requisition) (entities.Requisition, error) {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		query := `INSERT INTO requisitions (` + requisitionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query,
			req.ID,
			req.WorkOrderID,
			req.RequestedBy,
			req.Notes,
			string(req.Status),
			formatTime(req.CreatedAt),
			formatTime(req.UpdatedAt),
		); err != nil {
			return fmt.Errorf("inserting requisition: %w", err)
		}

		lineQuery := `INSERT INTO requisition_lines (` + requisitionLineColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for _, l := range req.Lines {
			if _, err := tx.ExecContext(ctx, lineQuery,
				l.ID,
				l.RequisitionID,
				l.LineNumber,
				l.PartID,
				l.Description,
				l.QuantityRequested,
				nullableFloat(l.QuantityApproved),
				decisionStatus(l.Foreman),
				l.Foreman.ReviewerID,
				nullableTimeToString(l.Foreman.DecidedAt),
				l.Foreman.Remarks,
				decisionStatus(l.Storekeeper),
				l.Storekeeper.ReviewerID,
				nullableTimeToString(l.Storekeeper.DecidedAt),
				l.Storekeeper.Remarks,
				formatTime(l.UpdatedAt),
			); err != nil {
				return fmt.Errorf("inserting requisition line %d: %w", l.LineNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return entities.Requisition{}, err
	}
	return req, nil
}

func (r *RequisitionSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Requisition, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+requisitionColumns+` FROM requisitions WHERE id = ?`, id)
	req, err := scanRequisition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Requisition{}, nil
	}
	if err != nil {
		return entities.Requisition{}, err
	}
	if req.Lines, err = r.lines(ctx, req.ID); err != nil {
		return entities.Requisition{}, err
	}
	return req, nil
}

func (r *RequisitionSQLiteRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions WHERE work_order_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("listing requisitions: %w", err)
	}

	var out []entities.Requisition
	for rows.Next() {
		req, err := scanRequisition(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating requisitions: %w", err)
	}
	// Release the cursor before loading lines; an in-memory database has a single connection.
	rows.Close()

	for i := range out {
		if out[i].Lines, err = r.lines(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *RequisitionSQLiteRepository) GetLineByID(ctx context.Context, lineID string) (entities.RequisitionLine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+requisitionLineColumns+` FROM requisition_lines WHERE id = ?`, lineID)
	l, err := scanRequisitionLine(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RequisitionLine{}, nil
	}
	return l, err
}

// ApplyLineDecision writes the track decision only while that track is pending, then the
// requisition status, in one transaction.
func (r *RequisitionSQLiteRepository) ApplyLineDecision(
	ctx context.Context,
	line entities.RequisitionLine,
	track entities.ReviewTrack,
	status entities.RequisitionStatus,
	at time.Time,
) (bool, error) {
	lineQuery, err := lineDecisionQuery(track)
	if err != nil {
		return false, err
	}
	d := line.Decision(track)

	applied := false
	err = r.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		res, err := tx.ExecContext(ctx, lineQuery,
			string(d.Status),
			d.ReviewerID,
			nullableTimeToString(d.DecidedAt),
			d.Remarks,
			nullableFloat(line.QuantityApproved),
			formatTime(at),
			line.ID,
			string(entities.ApprovalStatusPending),
		)
		if err != nil {
			return fmt.Errorf("deciding requisition line: %w", err)
		}
		if applied, err = rowsAffected(res); err != nil || !applied {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE requisitions SET status = ?, updated_at = ? WHERE id = ?`,
			string(status), formatTime(at), line.RequisitionID,
		); err != nil {
			return fmt.Errorf("updating requisition status: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func lineDecisionQuery(track entities.ReviewTrack) (string, error) {
	var prefix string
	switch track {
	case entities.ReviewTrackForeman:
		prefix = "foreman"
	case entities.ReviewTrackStorekeeper:
		prefix = "storekeeper"
	default:
		return "", fmt.Errorf("unknown review track %q", track)
	}
	return `UPDATE requisition_lines SET ` +
		prefix + `_status = ?, ` +
		prefix + `_reviewer_id = ?, ` +
		prefix + `_decided_at = ?, ` +
		prefix + `_remarks = ?, ` +
		`quantity_approved = COALESCE(?, quantity_approved), updated_at = ?
		WHERE id = ? AND (` + prefix + `_status = ? OR ` + prefix + `_status = '')`, nil
}

func (r *RequisitionSQLiteRepository) lines(ctx context.Context, requisitionID string) ([]entities.RequisitionLine, error) {
	query := `SELECT ` + requisitionLineColumns + ` FROM requisition_lines WHERE requisition_id = ? ORDER BY line_number`
	rows, err := r.db.QueryContext(ctx, query, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("listing requisition lines: %w", err)
	}
	defer rows.Close()

	var out []entities.RequisitionLine
	for rows.Next() {
		l, err := scanRequisitionLine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requisition lines: %w", err)
	}
	return out, nil
}

func decisionStatus(d entities.LineDecision) string {
	if d.Status == "" {
		return string(entities.ApprovalStatusPending)
	}
	return string(d.Status)
}

func scanRequisition(s rowScanner) (entities.Requisition, error) {
	var (
		req                          entities.Requisition
		status, createdAt, updatedAt string
	)
	err := s.Scan(&req.ID, &req.WorkOrderID, &req.RequestedBy, &req.Notes, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Requisition{}, err
		}
		return entities.Requisition{}, fmt.Errorf("scanning requisition: %w", err)
	}
	req.Status = entities.RequisitionStatus(status)
	req.CreatedAt = parseTime(createdAt)
	req.UpdatedAt = parseTime(updatedAt)
	return req, nil
}

func scanRequisitionLine(s rowScanner) (entities.RequisitionLine, error) {
	var (
		l                                entities.RequisitionLine
		approved                         sql.NullFloat64
		foremanStatus, storekeeperStatus string
		foremanAt, storekeeperAt         sql.NullString
		updatedAt                        string
	)
	err := s.Scan(
		&l.ID, &l.RequisitionID, &l.LineNumber, &l.PartID, &l.Description, &l.QuantityRequested,
		&approved, &foremanStatus, &l.Foreman.ReviewerID, &foremanAt, &l.Foreman.Remarks,
		&storekeeperStatus, &l.Storekeeper.ReviewerID, &storekeeperAt, &l.Storekeeper.Remarks, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.RequisitionLine{}, err
		}
		return entities.RequisitionLine{}, fmt.Errorf("scanning requisition line: %w", err)
	}
	l.QuantityApproved = floatPtr(approved)
	l.Foreman.Status = entities.ApprovalStatus(foremanStatus)
	l.Foreman.DecidedAt = parseNullableTime(foremanAt)
	l.Storekeeper.Status = entities.ApprovalStatus(storekeeperStatus)
	l.Storekeeper.DecidedAt = parseNullableTime(storekeeperAt)
	l.UpdatedAt = parseTime(updatedAt)
	return l, nil
}
