package usecase

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidRequisitionID    = validationErr("invalid requisition id")
	ErrInvalidLineID           = validationErr("invalid requisition line id")
	ErrInvalidTrack            = validationErr("track must be foreman or storekeeper")
	ErrEmptyRequisition        = validationErr("a requisition needs at least one line")
	ErrInvalidPartID           = validationErr("part_id is required on every line")
	ErrInvalidApprovedQuantity = validationErr("approved quantity must be greater than zero and not exceed the requested or foreman-approved quantity")
	ErrRemarksRequired         = validationErr("remarks are required when rejecting")
	ErrRequisitionNotFound     = notFoundErr("requisition not found")
	ErrRequisitionLineNotFound = notFoundErr("requisition line not found")
	ErrNoPendingApproval       = conflictErr("no pending approval for this work order")
	ErrApprovalAlreadyDecided  = conflictErr("approval has already been decided")
	ErrCompletionNotPending    = conflictErr("work order completion is not awaiting approval")
	ErrLineAlreadyDecided      = conflictErr("requisition line has already been decided on this track")
	ErrForemanApprovalRequired = conflictErr("requisition line needs foreman approval first")
)

type RequisitionLineInput struct {
	PartID      string
	Description string
	Quantity    float64
}

type CreateRequisitionInput struct {
	Actor       entities.Actor
	WorkOrderID string
	Notes       string
	Lines       []RequisitionLineInput
}

// LineDecisionInput decides one track of a requisition line. An empty Track is resolved
// from the actor's role (storekeepers review the storekeeper track, everybody else the
// foreman track). Quantity is only read on approval.
type LineDecisionInput struct {
	Actor    entities.Actor
	LineID   string
	Track    entities.ReviewTrack
	Quantity *float64
	Remarks  string
}

// IApprovalUseCase enforces who may decide what, and when.
//
// Every decision is attributed (reviewer id, timestamp) and terminal: deciding an already
// decided approval or line track is a conflict.
type IApprovalUseCase interface {
	ApproveWorkOrder(ctx context.Context, actor entities.Actor, workOrderID, notes string) (entities.WorkOrder, entities.Approval, error)
	RejectWorkOrder(ctx context.Context, actor entities.Actor, workOrderID, notes string) (entities.WorkOrder, entities.Approval, error)
	ApproveCompletion(ctx context.Context, actor entities.Actor, workOrderID string, notes *string) (entities.WorkOrder, entities.Approval, error)
	ListApprovals(ctx context.Context, workOrderID string) ([]entities.Approval, error)

	CreateRequisition(ctx context.Context, in CreateRequisitionInput) (entities.Requisition, error)
	GetRequisition(ctx context.Context, id string) (entities.Requisition, error)
	ApproveLine(ctx context.Context, in LineDecisionInput) (entities.Requisition, error)
	RejectLine(ctx context.Context, in LineDecisionInput) (entities.Requisition, error)
}

type ApprovalUseCase struct {
	workOrders   interfaces.IWorkOrderRepository
	tx           interfaces.IWorkOrderTransactionRepository
	approvals    interfaces.IApprovalRepository
	requisitions interfaces.IRequisitionRepository
	costs        CostSummarizer
	reconciler   WorkOrderReconciler
	notifier     interfaces.INotificationPublisher
	log          zerolog.Logger
	now          func() time.Time
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(
	workOrders interfaces.IWorkOrderRepository,
	tx interfaces.IWorkOrderTransactionRepository,
	approvals interfaces.IApprovalRepository,
	requisitions interfaces.IRequisitionRepository,
	costs CostSummarizer,
	reconciler WorkOrderReconciler,
	notifier interfaces.INotificationPublisher,
	log zerolog.Logger,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		workOrders:   workOrders,
		tx:           tx,
		approvals:    approvals,
		requisitions: requisitions,
		costs:        costs,
		reconciler:   reconciler,
		notifier:     notifier,
		log:          log.With().Str("component", "approval").Logger(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *ApprovalUseCase) ApproveWorkOrder(ctx context.Context, actor entities.Actor, workOrderID, notes string) (entities.WorkOrder, entities.Approval, error) {
	return u.decideWorkOrder(ctx, actor, workOrderID, notes, entities.ApprovalStatusApproved)
}

// RejectWorkOrder records the rejection and cancels the order.
func (u *ApprovalUseCase) RejectWorkOrder(ctx context.Context, actor entities.Actor, workOrderID, notes string) (entities.WorkOrder, entities.Approval, error) {
	return u.decideWorkOrder(ctx, actor, workOrderID, notes, entities.ApprovalStatusRejected)
}

func (u *ApprovalUseCase) decideWorkOrder(ctx context.Context, actor entities.Actor, workOrderID, notes string, decision entities.ApprovalStatus) (entities.WorkOrder, entities.Approval, error) {
	if !entities.CanDecideWorkOrders(actor.Role) {
		return entities.WorkOrder{}, entities.Approval{}, ErrRoleNotAllowed
	}
	wo, err := loadWorkOrder(ctx, u.workOrders, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}
	if wo.ApprovalStatus != entities.ApprovalStatusPending {
		return entities.WorkOrder{}, entities.Approval{}, ErrApprovalAlreadyDecided
	}

	now := u.now()
	a, err := u.prepareDecision(ctx, entities.ApprovalReferenceWorkOrder, wo.ID, actor, decision, strings.TrimSpace(notes), nil, now)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}

	wo.ApprovalStatus = decision
	if decision == entities.ApprovalStatusRejected && !wo.Status.IsTerminal() {
		wo.Status = entities.WorkOrderStatusCancelled
	}
	wo.UpdatedAt = now
	updated, err := u.saveDecision(ctx, wo, a)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}

	u.notify(ctx, actor, "work_order.approval_decided", "approval", a.ID, wo.ID, map[string]any{"status": string(decision)})
	return updated, a, nil
}

// ApproveCompletion signs off a reported completion. The order is reconciled first so the
// approval keeps the final cost summary for audit.
func (u *ApprovalUseCase) ApproveCompletion(ctx context.Context, actor entities.Actor, workOrderID string, notes *string) (entities.WorkOrder, entities.Approval, error) {
	if !entities.CanDecideWorkOrders(actor.Role) {
		return entities.WorkOrder{}, entities.Approval{}, ErrRoleNotAllowed
	}
	wo, err := loadWorkOrder(ctx, u.workOrders, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}
	if wo.Status != entities.WorkOrderStatusCompleted || wo.CompletionApprovalStatus != entities.CompletionApprovalPending {
		return entities.WorkOrder{}, entities.Approval{}, ErrCompletionNotPending
	}

	if _, err := u.reconciler.ReconcileWorkOrder(ctx, wo); err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}
	summary, err := u.costs.Summarize(ctx, wo.ID)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}

	now := u.now()
	note := trimmedOrEmpty(notes)
	a, err := u.prepareDecision(ctx, entities.ApprovalReferenceWorkCompletion, wo.ID, actor, entities.ApprovalStatusApproved, note, &summary, now)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}

	wo.CompletionApprovalStatus = entities.CompletionApprovalApproved
	wo.CompletionApprovedBy = actor.ID
	wo.CompletionApprovedAt = timePtr(now)
	wo.CompletionNotes = note
	wo.CostSummary = &summary
	wo.UpdatedAt = now
	updated, err := u.saveDecision(ctx, wo, a)
	if err != nil {
		return entities.WorkOrder{}, entities.Approval{}, err
	}

	u.notify(ctx, actor, "work_order.completion_approved", "approval", a.ID, wo.ID, map[string]any{
		"total_actual_cost": summary.TotalActualCost,
		"variance_status":   string(summary.VarianceStatus),
	})
	return updated, a, nil
}

func (u *ApprovalUseCase) ListApprovals(ctx context.Context, workOrderID string) ([]entities.Approval, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, workOrderID)
	if err != nil {
		return nil, err
	}

	var out []entities.Approval
	for _, ref := range []entities.ApprovalReferenceType{entities.ApprovalReferenceWorkOrder, entities.ApprovalReferenceWorkCompletion} {
		list, err := u.approvals.ListByReference(ctx, ref, wo.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RequestedAt.Before(out[j].RequestedAt) })
	return out, nil
}

// prepareDecision finds the pending approval of the reference and fills in the decision.
// Nothing is stored until saveDecision.
func (u *ApprovalUseCase) prepareDecision(
	ctx context.Context,
	refType entities.ApprovalReferenceType,
	refID string,
	actor entities.Actor,
	decision entities.ApprovalStatus,
	notes string,
	snapshot *entities.CostSummary,
	at time.Time,
) (entities.Approval, error) {
	list, err := u.approvals.ListByReference(ctx, refType, refID)
	if err != nil {
		return entities.Approval{}, err
	}

	var pending entities.Approval
	for _, a := range list {
		if a.IsPending() {
			pending = a
			break
		}
	}
	if pending.ID == "" {
		return entities.Approval{}, ErrNoPendingApproval
	}

	pending.Status = decision
	pending.ApproverID = actor.ID
	pending.Notes = notes
	pending.DecidedAt = timePtr(at)
	pending.CostSnapshot = snapshot
	return pending, nil
}

func (u *ApprovalUseCase) CreateRequisition(ctx context.Context, in CreateRequisitionInput) (entities.Requisition, error) {
	if len(in.Lines) == 0 {
		return entities.Requisition{}, ErrEmptyRequisition
	}
	for _, l := range in.Lines {
		if strings.TrimSpace(l.PartID) == "" {
			return entities.Requisition{}, ErrInvalidPartID
		}
		if l.Quantity <= 0 {
			return entities.Requisition{}, ErrInvalidQuantity
		}
	}

	wo, err := loadWorkOrder(ctx, u.workOrders, in.WorkOrderID)
	if err != nil {
		return entities.Requisition{}, err
	}
	if wo.Status.IsTerminal() {
		return entities.Requisition{}, ErrWorkOrderClosed
	}

	now := u.now()
	r := entities.Requisition{
		ID:          uuid.NewString(),
		WorkOrderID: wo.ID,
		RequestedBy: in.Actor.ID,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      entities.RequisitionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, l := range in.Lines {
		r.Lines = append(r.Lines, entities.RequisitionLine{
			ID:                uuid.NewString(),
			RequisitionID:     r.ID,
			LineNumber:        i + 1,
			PartID:            strings.TrimSpace(l.PartID),
			Description:       strings.TrimSpace(l.Description),
			QuantityRequested: l.Quantity,
			Foreman:           entities.LineDecision{Status: entities.ApprovalStatusPending},
			Storekeeper:       entities.LineDecision{Status: entities.ApprovalStatusPending},
			UpdatedAt:         now,
		})
	}

	created, err := u.requisitions.Create(ctx, r)
	if err != nil {
		return entities.Requisition{}, err
	}

	u.notify(ctx, in.Actor, "requisition.created", "requisition", created.ID, wo.ID, map[string]any{"lines": len(created.Lines)})
	return created, nil
}

func (u *ApprovalUseCase) GetRequisition(ctx context.Context, id string) (entities.Requisition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Requisition{}, ErrInvalidRequisitionID
	}
	r, err := u.requisitions.GetByID(ctx, id)
	if err != nil {
		return entities.Requisition{}, err
	}
	if r.ID == "" {
		return entities.Requisition{}, ErrRequisitionNotFound
	}
	return r, nil
}

// ApproveLine approves one track of a line. The approved quantity defaults to the requested
// quantity on the foreman track and to the foreman-approved quantity on the storekeeper
// track, which may lower it but never raise it.
func (u *ApprovalUseCase) ApproveLine(ctx context.Context, in LineDecisionInput) (entities.Requisition, error) {
	track, line, err := u.loadLineForDecision(ctx, in)
	if err != nil {
		return entities.Requisition{}, err
	}

	ceiling := line.QuantityRequested
	if track == entities.ReviewTrackStorekeeper && line.QuantityApproved != nil {
		ceiling = *line.QuantityApproved
	}
	qty := ceiling
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty <= 0 || qty > ceiling {
		return entities.Requisition{}, ErrInvalidApprovedQuantity
	}

	line.QuantityApproved = &qty
	return u.applyLineDecision(ctx, in.Actor, line, track, entities.ApprovalStatusApproved, strings.TrimSpace(in.Remarks))
}

// RejectLine rejects one track of a line. Remarks are mandatory.
func (u *ApprovalUseCase) RejectLine(ctx context.Context, in LineDecisionInput) (entities.Requisition, error) {
	remarks := strings.TrimSpace(in.Remarks)
	if remarks == "" {
		return entities.Requisition{}, ErrRemarksRequired
	}
	track, line, err := u.loadLineForDecision(ctx, in)
	if err != nil {
		return entities.Requisition{}, err
	}
	return u.applyLineDecision(ctx, in.Actor, line, track, entities.ApprovalStatusRejected, remarks)
}

func (u *ApprovalUseCase) loadLineForDecision(ctx context.Context, in LineDecisionInput) (entities.ReviewTrack, entities.RequisitionLine, error) {
	track := in.Track
	if track == "" {
		track = entities.ReviewTrackForeman
		if in.Actor.Role == entities.RoleStorekeeper {
			track = entities.ReviewTrackStorekeeper
		}
	}
	if !track.Valid() {
		return "", entities.RequisitionLine{}, ErrInvalidTrack
	}
	if !entities.CanReviewTrack(in.Actor.Role, track) {
		return "", entities.RequisitionLine{}, ErrRoleNotAllowed
	}

	lineID := strings.TrimSpace(in.LineID)
	if lineID == "" {
		return "", entities.RequisitionLine{}, ErrInvalidLineID
	}
	line, err := u.requisitions.GetLineByID(ctx, lineID)
	if err != nil {
		return "", entities.RequisitionLine{}, err
	}
	if line.ID == "" {
		return "", entities.RequisitionLine{}, ErrRequisitionLineNotFound
	}

	if !line.Decision(track).IsPending() {
		return "", entities.RequisitionLine{}, ErrLineAlreadyDecided
	}
	if track == entities.ReviewTrackStorekeeper && line.Foreman.Status != entities.ApprovalStatusApproved {
		return "", entities.RequisitionLine{}, ErrForemanApprovalRequired
	}
	return track, line, nil
}

func (u *ApprovalUseCase) applyLineDecision(
	ctx context.Context,
	actor entities.Actor,
	line entities.RequisitionLine,
	track entities.ReviewTrack,
	decision entities.ApprovalStatus,
	remarks string,
) (entities.Requisition, error) {
	r, err := u.GetRequisition(ctx, line.RequisitionID)
	if err != nil {
		return entities.Requisition{}, err
	}

	now := u.now()
	line.SetDecision(track, entities.LineDecision{
		Status:     decision,
		ReviewerID: actor.ID,
		DecidedAt:  timePtr(now),
		Remarks:    remarks,
	})
	line.UpdatedAt = now

	for i := range r.Lines {
		if r.Lines[i].ID == line.ID {
			r.Lines[i] = line
		}
	}
	r.Status = entities.DeriveRequisitionStatus(r.Lines)
	r.UpdatedAt = now

	ok, err := u.requisitions.ApplyLineDecision(ctx, line, track, r.Status, now)
	if err != nil {
		return entities.Requisition{}, err
	}
	if !ok {
		return entities.Requisition{}, ErrLineAlreadyDecided
	}

	u.log.Info().
		Str("requisition_id", r.ID).
		Str("line_id", line.ID).
		Str("track", string(track)).
		Str("decision", string(decision)).
		Str("requisition_status", string(r.Status)).
		Msg("requisition line decided")

	u.notify(ctx, actor, "requisition_line."+string(decision), "requisition_line", line.ID, r.WorkOrderID, map[string]any{
		"requisition_id":     r.ID,
		"track":              string(track),
		"requisition_status": string(r.Status),
	})
	return r, nil
}

// saveDecision stores the order and the decided approval together.
func (u *ApprovalUseCase) saveDecision(ctx context.Context, wo entities.WorkOrder, decided entities.Approval) (entities.WorkOrder, error) {
	updated, pending, err := u.tx.UpdateWithDecision(ctx, wo, decided)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !pending {
		return entities.WorkOrder{}, ErrApprovalAlreadyDecided
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

func (u *ApprovalUseCase) notify(ctx context.Context, actor entities.Actor, event, resource, resourceID, workOrderID string, payload map[string]any) {
	publish(ctx, u.notifier, entities.Notification{
		EventType:    event,
		ActorID:      actor.ID,
		ActorRole:    actor.Role,
		WorkOrderID:  workOrderID,
		ResourceType: resource,
		ResourceID:   resourceID,
		OccurredAt:   u.now(),
		Payload:      payload,
	})
}
