package repository

import (
	"context"
	"errors"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/infrastructure/database"
	"fleet_maintenance/internal/usecase/interfaces"
)

// errNothingWritten rolls back a transaction whose guard did not hold. It never leaves
// the repository.
var errNothingWritten = errors.New("nothing written")

// WorkOrderTxSQLiteRepository implements IWorkOrderTransactionRepository with the unit of
// work: every write of a call shares one *sql.Tx.
type WorkOrderTxSQLiteRepository struct {
	uow database.UnitOfWork
}

var _ interfaces.IWorkOrderTransactionRepository = (*WorkOrderTxSQLiteRepository)(nil)

func NewWorkOrderTxSQLiteRepository(uow database.UnitOfWork) *WorkOrderTxSQLiteRepository {
	return &WorkOrderTxSQLiteRepository{uow: uow}
}

func (r *WorkOrderTxSQLiteRepository) CreateWithApproval(ctx context.Context, wo entities.WorkOrder, pending entities.Approval) (entities.WorkOrder, error) {
	var created entities.WorkOrder
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		var err error
		if created, err = NewWorkOrderSQLiteRepository(tx).Create(ctx, wo); err != nil {
			return err
		}
		_, err = NewApprovalSQLiteRepository(tx).Create(ctx, pending)
		return err
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return created, nil
}

func (r *WorkOrderTxSQLiteRepository) UpdateWithApproval(ctx context.Context, wo entities.WorkOrder, pending entities.Approval) (entities.WorkOrder, error) {
	return r.update(ctx, wo, func(ctx context.Context, tx database.DBTX) error {
		_, err := NewApprovalSQLiteRepository(tx).Create(ctx, pending)
		return err
	})
}

func (r *WorkOrderTxSQLiteRepository) UpdateWithDecision(ctx context.Context, wo entities.WorkOrder, decided entities.Approval) (entities.WorkOrder, bool, error) {
	pending := true
	updated, err := r.update(ctx, wo, func(ctx context.Context, tx database.DBTX) error {
		ok, err := NewApprovalSQLiteRepository(tx).Decide(ctx, decided)
		if err != nil {
			return err
		}
		if !ok {
			pending = false
			return errNothingWritten
		}
		return nil
	})
	if err != nil {
		return entities.WorkOrder{}, false, err
	}
	return updated, pending, nil
}

func (r *WorkOrderTxSQLiteRepository) UpdateWithLaborEntries(ctx context.Context, wo entities.WorkOrder, entries []entities.LaborEntry) (entities.WorkOrder, error) {
	return r.update(ctx, wo, func(ctx context.Context, tx database.DBTX) error {
		labor := NewLaborEntrySQLiteRepository(tx)
		for _, e := range entries {
			if _, err := labor.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// update stores wo and then runs with in the same transaction. A missing work order or
// errNothingWritten from with rolls back and yields a zero value without an error.
func (r *WorkOrderTxSQLiteRepository) update(
	ctx context.Context,
	wo entities.WorkOrder,
	with func(ctx context.Context, tx database.DBTX) error,
) (entities.WorkOrder, error) {
	var updated entities.WorkOrder
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		var err error
		if updated, err = NewWorkOrderSQLiteRepository(tx).Update(ctx, wo); err != nil {
			return err
		}
		if updated.ID == "" {
			return errNothingWritten
		}
		return with(ctx, tx)
	})
	if errors.Is(err, errNothingWritten) {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return updated, nil
}
