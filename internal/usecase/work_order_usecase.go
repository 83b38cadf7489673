package usecase

import (
	"context"
	"encoding/json"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/domain/timeledger"
	"fleet_maintenance/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidTitle           = validationErr("title is required")
	ErrInvalidEquipmentID     = validationErr("equipment_id is required")
	ErrInvalidSpecification   = validationErr("specification must be a JSON document")
	ErrInvalidTargetStatus    = validationErr("status must be in_progress, awaiting_parts or waiting_purchase")
	ErrInvalidAssignee        = validationErr("assignees need an employee_id, an hourly_rate above zero and an overtime_factor of at least 1.0")
	ErrWorkOrderNotApproved   = conflictErr("work order has not been approved")
	ErrWorkOrderAlreadyPaused = conflictErr("work order timer is already paused")
	ErrWorkOrderNotPaused     = conflictErr("work order timer is not paused")
	ErrWorkOrderClosed        = conflictErr("work order is completed or cancelled")
)

type CreateWorkOrderInput struct {
	Actor         entities.Actor
	Code          string
	EquipmentID   string
	Title         string
	Description   string
	Specification json.RawMessage
}

// Assignee is an employee auto-tracked on a work order from the moment it starts.
type Assignee struct {
	EmployeeID     string
	HourlyRate     float64
	OvertimeFactor *float64
}

type StartWorkOrderInput struct {
	Actor       entities.Actor
	WorkOrderID string
	Assignees   []Assignee
}

// IWorkOrderUseCase drives the work order lifecycle and the live timer.
//
// The timer itself is never stored: every pause, resume and blocking status change is an
// appended event, and GetElapsed replays the log.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Start(ctx context.Context, in StartWorkOrderInput) (entities.WorkOrder, error)
	Pause(ctx context.Context, actor entities.Actor, id, reason string) (entities.WorkOrder, error)
	Resume(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, actor entities.Actor, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
	ReportCompletion(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error)
	Cancel(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error)
	GetElapsed(ctx context.Context, id string) (timeledger.Elapsed, error)
}

type WorkOrderUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	tx         interfaces.IWorkOrderTransactionRepository
	events     interfaces.ITimeEventRepository
	reconciler WorkOrderReconciler
	notifier   interfaces.INotificationPublisher
	log        zerolog.Logger
	now        func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	workOrders interfaces.IWorkOrderRepository,
	tx interfaces.IWorkOrderTransactionRepository,
	events interfaces.ITimeEventRepository,
	reconciler WorkOrderReconciler,
	notifier interfaces.INotificationPublisher,
	log zerolog.Logger,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		workOrders: workOrders,
		tx:         tx,
		events:     events,
		reconciler: reconciler,
		notifier:   notifier,
		log:        log.With().Str("component", "work_order").Logger(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a work order in pending status together with its pending creation
// approval.
func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.WorkOrder{}, ErrInvalidTitle
	}
	equipmentID := strings.TrimSpace(in.EquipmentID)
	if equipmentID == "" {
		return entities.WorkOrder{}, ErrInvalidEquipmentID
	}
	if len(in.Specification) > 0 && !json.Valid(in.Specification) {
		return entities.WorkOrder{}, ErrInvalidSpecification
	}

	now := u.now()
	id := uuid.NewString()
	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = "WO-" + strings.ToUpper(id[:8])
	}
	wo := entities.WorkOrder{
		ID:                       id,
		Code:                     code,
		EquipmentID:              equipmentID,
		Title:                    title,
		Description:              strings.TrimSpace(in.Description),
		Status:                   entities.WorkOrderStatusPending,
		ApprovalStatus:           entities.ApprovalStatusPending,
		CompletionApprovalStatus: entities.CompletionApprovalNotRequested,
		Specification:            in.Specification,
		CreatedBy:                in.Actor.ID,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	created, err := u.tx.CreateWithApproval(ctx, wo, newPendingApproval(entities.ApprovalReferenceWorkOrder, id, in.Actor, now))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.notify(ctx, in.Actor, "work_order.created", created, nil)
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return loadWorkOrder(ctx, u.workOrders, id)
}

// Start moves an approved order to in_progress and opens one auto labor entry per assignee.
// The entries start at zero hours; the reconciliation job fills them from elapsed time.
func (u *WorkOrderUseCase) Start(ctx context.Context, in StartWorkOrderInput) (entities.WorkOrder, error) {
	for _, a := range in.Assignees {
		if strings.TrimSpace(a.EmployeeID) == "" || a.HourlyRate <= 0 || (a.OvertimeFactor != nil && *a.OvertimeFactor < 1) {
			return entities.WorkOrder{}, ErrInvalidAssignee
		}
	}

	wo, err := loadWorkOrder(ctx, u.workOrders, in.WorkOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Status != entities.WorkOrderStatusPending {
		return entities.WorkOrder{}, ErrInvalidStatusTransition
	}
	if wo.ApprovalStatus != entities.ApprovalStatusApproved {
		return entities.WorkOrder{}, ErrWorkOrderNotApproved
	}

	now := u.now()
	wo.Status = entities.WorkOrderStatusInProgress
	wo.StartedAt = timePtr(now)
	wo.UpdatedAt = now

	entries := make([]entities.LaborEntry, 0, len(in.Assignees))
	for _, a := range in.Assignees {
		factor := entities.DefaultOvertimeFactor
		if a.OvertimeFactor != nil {
			factor = *a.OvertimeFactor
		}
		e := entities.LaborEntry{
			ID:                 uuid.NewString(),
			WorkOrderID:        wo.ID,
			EmployeeID:         strings.TrimSpace(a.EmployeeID),
			HourlyRateSnapshot: a.HourlyRate,
			OvertimeFactor:     factor,
			TimeSource:         entities.TimeSourceAuto,
			WorkDate:           now,
			CreatedBy:          in.Actor.ID,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		e.Recalculate()
		entries = append(entries, e)
	}

	updated, err := u.tx.UpdateWithLaborEntries(ctx, wo, entries)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	u.notify(ctx, in.Actor, "work_order.started", updated, map[string]any{"assignees": len(in.Assignees)})
	return updated, nil
}

func (u *WorkOrderUseCase) Pause(ctx context.Context, actor entities.Actor, id, reason string) (entities.WorkOrder, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Status.IsBlocking() {
		return entities.WorkOrder{}, ErrWorkOrderAlreadyPaused
	}
	if wo.Status != entities.WorkOrderStatusInProgress {
		return entities.WorkOrder{}, ErrInvalidStatusTransition
	}

	events, err := u.events.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if timeledger.HasOpenPause(events) {
		return entities.WorkOrder{}, ErrWorkOrderAlreadyPaused
	}
	if err := u.appendEvent(ctx, actor, wo.ID, entities.TimeEventPause, strings.TrimSpace(reason)); err != nil {
		return entities.WorkOrder{}, err
	}

	u.notify(ctx, actor, "work_order.paused", wo, nil)
	return wo, nil
}

func (u *WorkOrderUseCase) Resume(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	// Blocked orders resume through ChangeStatus back to in_progress.
	if wo.Status != entities.WorkOrderStatusInProgress {
		return entities.WorkOrder{}, ErrInvalidStatusTransition
	}

	events, err := u.events.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !timeledger.HasOpenPause(events) {
		return entities.WorkOrder{}, ErrWorkOrderNotPaused
	}
	if err := u.appendEvent(ctx, actor, wo.ID, entities.TimeEventResume, ""); err != nil {
		return entities.WorkOrder{}, err
	}

	u.notify(ctx, actor, "work_order.resumed", wo, nil)
	return wo, nil
}

// ChangeStatus moves an active order between in_progress and the blocking statuses.
// Entering a blocking status appends a pause unless one is already open. Leaving it for
// in_progress appends a resume only for a pause the status change opened; an explicit
// pause stays open until Resume.
func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, actor entities.Actor, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	if !status.IsActive() {
		return entities.WorkOrder{}, ErrInvalidTargetStatus
	}

	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !wo.Status.IsActive() {
		return entities.WorkOrder{}, ErrInvalidStatusTransition
	}
	if wo.Status == status {
		return wo, nil
	}

	events, err := u.events.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	pause, open := timeledger.OpenPause(events)

	switch {
	case status.IsBlocking() && !open:
		err = u.appendEvent(ctx, actor, wo.ID, entities.TimeEventPause, string(status))
	case !status.IsBlocking() && wo.Status.IsBlocking() && open && entities.WorkOrderStatus(pause.Reason).IsBlocking():
		err = u.appendEvent(ctx, actor, wo.ID, entities.TimeEventResume, "")
	}
	if err != nil {
		return entities.WorkOrder{}, err
	}

	previous := wo.Status
	wo.Status = status
	wo.UpdatedAt = u.now()
	updated, err := u.save(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.notify(ctx, actor, "work_order.status_changed", updated, map[string]any{"from": string(previous), "to": string(status)})
	return updated, nil
}

// ReportCompletion freezes the timer at now and requests completion approval. A pause that
// is still open stays excluded up to the completion instant. The auto labor entries are
// then brought up to the final elapsed time.
func (u *WorkOrderUseCase) ReportCompletion(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !wo.Status.IsActive() {
		return entities.WorkOrder{}, ErrInvalidStatusTransition
	}

	now := u.now()
	wo.Status = entities.WorkOrderStatusCompleted
	wo.CompletedAt = timePtr(now)
	wo.CompletionApprovalStatus = entities.CompletionApprovalPending
	wo.UpdatedAt = now
	updated, err := u.tx.UpdateWithApproval(ctx, wo, newPendingApproval(entities.ApprovalReferenceWorkCompletion, wo.ID, actor, now))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	// Best effort: ApproveCompletion reconciles again before it snapshots costs.
	if n, err := u.reconciler.ReconcileWorkOrder(ctx, updated); err != nil {
		u.log.Warn().Err(err).Str("work_order_id", updated.ID).Msg("final reconciliation after completion failed")
	} else {
		u.log.Debug().Str("work_order_id", updated.ID).Int("entries_updated", n).Msg("final reconciliation after completion")
	}

	u.notify(ctx, actor, "work_order.completion_reported", updated, nil)
	return updated, nil
}

func (u *WorkOrderUseCase) Cancel(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error) {
	if !entities.CanDecideWorkOrders(actor.Role) {
		return entities.WorkOrder{}, ErrRoleNotAllowed
	}

	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Status.IsTerminal() {
		return entities.WorkOrder{}, ErrWorkOrderClosed
	}

	wo.Status = entities.WorkOrderStatusCancelled
	wo.UpdatedAt = u.now()
	updated, err := u.save(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.notify(ctx, actor, "work_order.cancelled", updated, nil)
	return updated, nil
}

func (u *WorkOrderUseCase) GetElapsed(ctx context.Context, id string) (timeledger.Elapsed, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return timeledger.Elapsed{}, err
	}
	events, err := u.events.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return timeledger.Elapsed{}, err
	}
	return timeledger.ComputeElapsed(wo.StartedAt, wo.CompletedAt, events, wo.Status, u.now()), nil
}

func (u *WorkOrderUseCase) save(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	updated, err := u.workOrders.Update(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

func newPendingApproval(ref entities.ApprovalReferenceType, workOrderID string, actor entities.Actor, at time.Time) entities.Approval {
	return entities.Approval{
		ID:            uuid.NewString(),
		ReferenceType: ref,
		ReferenceID:   workOrderID,
		Status:        entities.ApprovalStatusPending,
		RequestedBy:   actor.ID,
		RequestedAt:   at,
	}
}

func (u *WorkOrderUseCase) appendEvent(ctx context.Context, actor entities.Actor, workOrderID string, kind entities.TimeEventType, reason string) error {
	_, err := u.events.Append(ctx, entities.TimeTrackingEvent{
		ID:          uuid.NewString(),
		WorkOrderID: workOrderID,
		Event:       kind,
		Timestamp:   u.now(),
		Reason:      reason,
		CreatedBy:   actor.ID,
	})
	if err != nil {
		return err
	}
	u.log.Debug().Str("work_order_id", workOrderID).Str("event", string(kind)).Msg("time event appended")
	return nil
}

func (u *WorkOrderUseCase) notify(ctx context.Context, actor entities.Actor, event string, wo entities.WorkOrder, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["status"] = string(wo.Status)
	publish(ctx, u.notifier, entities.Notification{
		EventType:    event,
		ActorID:      actor.ID,
		ActorRole:    actor.Role,
		WorkOrderID:  wo.ID,
		ResourceType: "work_order",
		ResourceID:   wo.ID,
		OccurredAt:   u.now(),
		Payload:      payload,
	})
}
