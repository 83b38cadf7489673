package usecase

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/domain/timeledger"
	"fleet_maintenance/internal/usecase/interfaces"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RunReport describes one reconciliation batch.
type RunReport struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	Duration       time.Duration `json:"duration_ns"`
	Skipped        bool          `json:"skipped"`
	OrdersScanned  int           `json:"orders_scanned"`
	OrdersUpdated  int           `json:"orders_updated"`
	OrdersSkipped  int           `json:"orders_skipped"`
	EntriesUpdated int           `json:"entries_updated"`
	Failures       int           `json:"failures"`
}

// IReconciliationUseCase keeps auto labor entries in line with elapsed work time.
//
// RunOnce is single-flight: a call made while another batch is running returns immediately
// with a report marked Skipped. Per-order failures are logged and counted, never returned.
type IReconciliationUseCase interface {
	RunOnce(ctx context.Context) (RunReport, error)
}

// WorkOrderReconciler brings the auto labor entries of one order up to its elapsed time
// and returns how many entries changed.
type WorkOrderReconciler interface {
	ReconcileWorkOrder(ctx context.Context, wo entities.WorkOrder) (int, error)
}

type ReconciliationUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	events     interfaces.ITimeEventRepository
	labor      interfaces.ILaborEntryRepository
	costs      CostSummarizer
	log        zerolog.Logger
	now        func() time.Time

	running atomic.Bool
}

var (
	_ IReconciliationUseCase = (*ReconciliationUseCase)(nil)
	_ WorkOrderReconciler    = (*ReconciliationUseCase)(nil)
)

func NewReconciliationUseCase(
	workOrders interfaces.IWorkOrderRepository,
	events interfaces.ITimeEventRepository,
	labor interfaces.ILaborEntryRepository,
	costs CostSummarizer,
	log zerolog.Logger,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		workOrders: workOrders,
		events:     events,
		labor:      labor,
		costs:      costs,
		log:        log.With().Str("component", "reconciliation").Logger(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type orderOutcome int

const (
	outcomeSkipped orderOutcome = iota
	outcomeUnchanged
	outcomeUpdated
)

func (u *ReconciliationUseCase) RunOnce(ctx context.Context) (RunReport, error) {
	report := RunReport{RunID: uuid.NewString(), StartedAt: u.now()}

	if !u.running.CompareAndSwap(false, true) {
		report.Skipped = true
		report.FinishedAt = report.StartedAt
		u.log.Info().Str("run_id", report.RunID).Msg("reconciliation already running, tick skipped")
		return report, nil
	}
	defer u.running.Store(false)

	orders, err := u.workOrders.ListByStatuses(ctx, entities.ActiveWorkOrderStatuses)
	if err != nil {
		u.log.Error().Err(err).Str("run_id", report.RunID).Msg("listing active work orders")
		return report, err
	}

	for _, wo := range orders {
		report.OrdersScanned++
		updated, outcome, err := u.reconcileSafely(ctx, wo)
		report.EntriesUpdated += updated
		if err != nil {
			report.Failures++
			u.log.Error().Err(err).Str("run_id", report.RunID).Str("work_order_id", wo.ID).Msg("reconciling work order")
			continue
		}
		switch outcome {
		case outcomeSkipped:
			report.OrdersSkipped++
		case outcomeUpdated:
			report.OrdersUpdated++
		}
	}

	report.FinishedAt = u.now()
	report.Duration = report.FinishedAt.Sub(report.StartedAt)
	u.log.Info().
		Str("run_id", report.RunID).
		Int("orders_scanned", report.OrdersScanned).
		Int("orders_updated", report.OrdersUpdated).
		Int("orders_skipped", report.OrdersSkipped).
		Int("entries_updated", report.EntriesUpdated).
		Int("failures", report.Failures).
		Dur("duration", report.Duration).
		Msg("reconciliation finished")
	return report, nil
}

// ReconcileWorkOrder runs the batch step for a single order. It does not take the
// single-flight guard of RunOnce.
func (u *ReconciliationUseCase) ReconcileWorkOrder(ctx context.Context, wo entities.WorkOrder) (int, error) {
	updated, _, err := u.reconcileSafely(ctx, wo)
	if err != nil {
		return updated, fmt.Errorf("reconciling work order %s: %w", wo.ID, err)
	}
	return updated, nil
}

// reconcileSafely turns a panic on one order into an error so the batch keeps going.
func (u *ReconciliationUseCase) reconcileSafely(ctx context.Context, wo entities.WorkOrder) (updated int, outcome orderOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return u.reconcile(ctx, wo)
}

func (u *ReconciliationUseCase) reconcile(ctx context.Context, wo entities.WorkOrder) (int, orderOutcome, error) {
	events, err := u.events.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return 0, outcomeSkipped, err
	}
	elapsed := timeledger.ComputeElapsed(wo.StartedAt, wo.CompletedAt, events, wo.Status, u.now())
	if elapsed.ElapsedHours == 0 {
		return 0, outcomeSkipped, nil
	}

	entries, err := u.labor.ListAutoByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return 0, outcomeSkipped, err
	}
	if len(entries) == 0 {
		return 0, outcomeSkipped, nil
	}

	// The residue of the even split lands on the last entry, so the order must be stable
	// across runs.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})

	shares := entities.SplitHours(elapsed.ElapsedHours, len(entries))
	now := u.now()
	updated := 0
	for i, e := range entries {
		next := e
		next.HoursWorked = shares[i]
		next.Recalculate()
		if next.HoursWorked == e.HoursWorked && next.TotalCost == e.TotalCost {
			continue
		}
		if _, err := u.labor.UpdateHours(ctx, e.ID, next.HoursWorked, next.TotalCost, now); err != nil {
			return updated, outcomeSkipped, err
		}
		updated++
	}

	if _, err := u.costs.Summarize(ctx, wo.ID); err != nil {
		return updated, outcomeSkipped, err
	}
	if updated == 0 {
		return 0, outcomeUnchanged, nil
	}
	return updated, outcomeUpdated, nil
}
