package usecase

import (
	"context"
	"fleet_maintenance/internal/domain/costing"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidEntryID          = validationErr("invalid entry id")
	ErrInvalidEmployeeID       = validationErr("employee_id is required")
	ErrInvalidHours            = validationErr("provide either hours or minutes, greater than zero")
	ErrInvalidHourlyRate       = validationErr("hourly_rate must be greater than zero")
	ErrInvalidOvertimeFactor   = validationErr("overtime_factor must be at least 1.0")
	ErrNothingToUpdate         = validationErr("nothing to update")
	ErrInvalidItemName         = validationErr("item_name is required")
	ErrInvalidQuantity         = validationErr("quantity must be greater than zero")
	ErrInvalidUnitCost         = validationErr("unit_cost must not be negative")
	ErrInvalidEntryType        = validationErr("entry_type must be planned or actual")
	ErrInvalidVendor           = validationErr("vendor_name is required")
	ErrInvalidCost             = validationErr("costs must not be negative")
	ErrLaborEntryNotFound      = notFoundErr("labor entry not found")
	ErrConsumableEntryNotFound = notFoundErr("consumable entry not found")
	ErrOutsourceEntryNotFound  = notFoundErr("outsource entry not found")
)

// LaborEntryInput creates a manual labor entry. Exactly one of Hours or Minutes is set.
type LaborEntryInput struct {
	Actor          entities.Actor
	WorkOrderID    string
	EmployeeID     string
	Hours          *float64
	Minutes        *float64
	HourlyRate     float64
	OvertimeFactor *float64
	WorkDate       *time.Time
	Description    string
}

// LaborEntryPatch edits the only two fields that stay mutable after creation.
type LaborEntryPatch struct {
	Actor          entities.Actor
	EntryID        string
	OvertimeFactor *float64
	Description    *string
}

// ConsumableEntryInput creates a consumable entry. EntryType is chosen by the caller,
// usually through entities.ConsumableEntryTypeForRole.
type ConsumableEntryInput struct {
	Actor       entities.Actor
	WorkOrderID string
	EntryType   entities.ConsumableEntryType
	ItemName    string
	Unit        string
	Quantity    float64
	UnitCost    float64
	Notes       string
}

type OutsourceEntryInput struct {
	Actor       entities.Actor
	WorkOrderID string
	VendorName  string
	Description string
	PlannedCost *float64
	ActualCost  float64
}

// WorkOrderCosts is the cost view of one work order.
type WorkOrderCosts struct {
	Summary     entities.CostSummary
	Labor       []entities.LaborEntry
	Consumables []entities.ConsumableEntry
	Outsource   []entities.OutsourceEntry
}

// ICostUseCase exposes cost entry mutations and the planned-vs-actual summary.
//
// Every mutation reads the order's entries, persists the entry with its computed total and
// returns the summary of the entries as written. Once the entry is stored the call
// succeeds; the stored summary snapshot is refreshed on a best-effort basis.
type ICostUseCase interface {
	GetWorkOrderCosts(ctx context.Context, workOrderID string) (WorkOrderCosts, error)
	Summarize(ctx context.Context, workOrderID string) (entities.CostSummary, error)

	CreateLaborEntry(ctx context.Context, in LaborEntryInput) (entities.LaborEntry, entities.CostSummary, error)
	UpdateLaborEntry(ctx context.Context, in LaborEntryPatch) (entities.LaborEntry, entities.CostSummary, error)
	DeleteLaborEntry(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error)

	CreateConsumableEntry(ctx context.Context, in ConsumableEntryInput) (entities.ConsumableEntry, entities.CostSummary, error)
	DeleteConsumableEntry(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error)

	CreateOutsourceEntry(ctx context.Context, in OutsourceEntryInput) (entities.OutsourceEntry, entities.CostSummary, error)
	DeleteOutsourceEntry(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error)
}

// CostSummarizer refreshes a work order's stored summary and returns it.
type CostSummarizer interface {
	Summarize(ctx context.Context, workOrderID string) (entities.CostSummary, error)
}

type CostUseCase struct {
	workOrders  interfaces.IWorkOrderRepository
	labor       interfaces.ILaborEntryRepository
	consumables interfaces.IConsumableEntryRepository
	outsource   interfaces.IOutsourceEntryRepository
	notifier    interfaces.INotificationPublisher
	log         zerolog.Logger
	now         func() time.Time
}

var _ ICostUseCase = (*CostUseCase)(nil)

func NewCostUseCase(
	workOrders interfaces.IWorkOrderRepository,
	labor interfaces.ILaborEntryRepository,
	consumables interfaces.IConsumableEntryRepository,
	outsource interfaces.IOutsourceEntryRepository,
	notifier interfaces.INotificationPublisher,
	log zerolog.Logger,
) *CostUseCase {
	return &CostUseCase{
		workOrders:  workOrders,
		labor:       labor,
		consumables: consumables,
		outsource:   outsource,
		notifier:    notifier,
		log:         log.With().Str("component", "cost").Logger(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *CostUseCase) GetWorkOrderCosts(ctx context.Context, workOrderID string) (WorkOrderCosts, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, workOrderID)
	if err != nil {
		return WorkOrderCosts{}, err
	}

	in, err := u.loadEntries(ctx, wo.ID)
	if err != nil {
		return WorkOrderCosts{}, err
	}
	return WorkOrderCosts{
		Summary:     costing.Summarize(wo.ID, in, u.now()),
		Labor:       in.Labor,
		Consumables: in.Consumables,
		Outsource:   in.Outsource,
	}, nil
}

func (u *CostUseCase) Summarize(ctx context.Context, workOrderID string) (entities.CostSummary, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, workOrderID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	return u.refresh(ctx, wo.ID)
}

func (u *CostUseCase) CreateLaborEntry(ctx context.Context, in LaborEntryInput) (entities.LaborEntry, entities.CostSummary, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return entities.LaborEntry{}, entities.CostSummary{}, ErrInvalidEmployeeID
	}
	hours, err := laborHours(in.Hours, in.Minutes)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}
	if in.HourlyRate <= 0 {
		return entities.LaborEntry{}, entities.CostSummary{}, ErrInvalidHourlyRate
	}
	factor := entities.DefaultOvertimeFactor
	if in.OvertimeFactor != nil {
		factor = *in.OvertimeFactor
	}
	if factor < 1 {
		return entities.LaborEntry{}, entities.CostSummary{}, ErrInvalidOvertimeFactor
	}

	wo, err := u.writableWorkOrder(ctx, in.WorkOrderID)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, wo.ID)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}

	now := u.now()
	workDate := now
	if in.WorkDate != nil {
		workDate = in.WorkDate.UTC()
	}
	e := entities.LaborEntry{
		ID:                 uuid.NewString(),
		WorkOrderID:        wo.ID,
		EmployeeID:         employeeID,
		HoursWorked:        hours,
		HourlyRateSnapshot: in.HourlyRate,
		OvertimeFactor:     factor,
		TimeSource:         entities.TimeSourceManual,
		WorkDate:           workDate,
		Description:        strings.TrimSpace(in.Description),
		CreatedBy:          in.Actor.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	e.Recalculate()

	created, err := u.labor.Create(ctx, e)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}
	entries.Labor = append(entries.Labor, created)
	summary := u.store(ctx, wo.ID, entries)

	u.notify(ctx, in.Actor, "labor_entry.created", "labor_entry", created.ID, wo.ID, map[string]any{
		"employee_id": created.EmployeeID,
		"total_cost":  created.TotalCost,
	})
	return created, summary, nil
}

func (u *CostUseCase) UpdateLaborEntry(ctx context.Context, in LaborEntryPatch) (entities.LaborEntry, entities.CostSummary, error) {
	if in.OvertimeFactor == nil && in.Description == nil {
		return entities.LaborEntry{}, entities.CostSummary{}, ErrNothingToUpdate
	}
	if in.OvertimeFactor != nil && *in.OvertimeFactor < 1 {
		return entities.LaborEntry{}, entities.CostSummary{}, ErrInvalidOvertimeFactor
	}

	e, err := u.getLaborEntry(ctx, in.EntryID)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}
	if _, err := u.writableWorkOrder(ctx, e.WorkOrderID); err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, e.WorkOrderID)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}

	if in.OvertimeFactor != nil {
		e.OvertimeFactor = *in.OvertimeFactor
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	e.UpdatedAt = u.now()
	e.Recalculate()

	updated, err := u.labor.Update(ctx, e)
	if err != nil {
		return entities.LaborEntry{}, entities.CostSummary{}, err
	}
	if updated.ID == "" {
		return entities.LaborEntry{}, entities.CostSummary{}, ErrLaborEntryNotFound
	}
	if i := slices.IndexFunc(entries.Labor, func(l entities.LaborEntry) bool { return l.ID == updated.ID }); i >= 0 {
		entries.Labor[i] = updated
	} else {
		entries.Labor = append(entries.Labor, updated)
	}
	summary := u.store(ctx, updated.WorkOrderID, entries)

	u.notify(ctx, in.Actor, "labor_entry.updated", "labor_entry", updated.ID, updated.WorkOrderID, map[string]any{
		"overtime_factor": updated.OvertimeFactor,
		"total_cost":      updated.TotalCost,
	})
	return updated, summary, nil
}

func (u *CostUseCase) DeleteLaborEntry(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error) {
	e, err := u.getLaborEntry(ctx, entryID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	if _, err := u.writableWorkOrder(ctx, e.WorkOrderID); err != nil {
		return entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, e.WorkOrderID)
	if err != nil {
		return entities.CostSummary{}, err
	}

	removed, err := u.labor.Delete(ctx, e.ID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	if removed.ID == "" {
		return entities.CostSummary{}, ErrLaborEntryNotFound
	}
	entries.Labor = slices.DeleteFunc(entries.Labor, func(l entities.LaborEntry) bool { return l.ID == removed.ID })
	summary := u.store(ctx, e.WorkOrderID, entries)

	u.notify(ctx, actor, "labor_entry.deleted", "labor_entry", e.ID, e.WorkOrderID, nil)
	return summary, nil
}

func (u *CostUseCase) CreateConsumableEntry(ctx context.Context, in ConsumableEntryInput) (entities.ConsumableEntry, entities.CostSummary, error) {
	if !in.EntryType.Valid() {
		return entities.ConsumableEntry{}, entities.CostSummary{}, ErrInvalidEntryType
	}
	itemName := strings.TrimSpace(in.ItemName)
	if itemName == "" {
		return entities.ConsumableEntry{}, entities.CostSummary{}, ErrInvalidItemName
	}
	if in.Quantity <= 0 {
		return entities.ConsumableEntry{}, entities.CostSummary{}, ErrInvalidQuantity
	}
	if in.UnitCost < 0 {
		return entities.ConsumableEntry{}, entities.CostSummary{}, ErrInvalidUnitCost
	}

	wo, err := u.writableWorkOrder(ctx, in.WorkOrderID)
	if err != nil {
		return entities.ConsumableEntry{}, entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, wo.ID)
	if err != nil {
		return entities.ConsumableEntry{}, entities.CostSummary{}, err
	}

	e := entities.ConsumableEntry{
		ID:               uuid.NewString(),
		WorkOrderID:      wo.ID,
		EntryType:        in.EntryType,
		ItemName:         itemName,
		Unit:             strings.TrimSpace(in.Unit),
		Quantity:         in.Quantity,
		UnitCostSnapshot: in.UnitCost,
		Notes:            strings.TrimSpace(in.Notes),
		CreatedBy:        in.Actor.ID,
		CreatedAt:        u.now(),
	}
	e.Recalculate()

	created, err := u.consumables.Create(ctx, e)
	if err != nil {
		return entities.ConsumableEntry{}, entities.CostSummary{}, err
	}
	entries.Consumables = append(entries.Consumables, created)
	summary := u.store(ctx, wo.ID, entries)

	u.notify(ctx, in.Actor, "consumable_entry.created", "consumable_entry", created.ID, wo.ID, map[string]any{
		"entry_type": string(created.EntryType),
		"total_cost": created.TotalCost,
	})
	return created, summary, nil
}

func (u *CostUseCase) DeleteConsumableEntry(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.CostSummary{}, ErrInvalidEntryID
	}
	e, err := u.consumables.GetByID(ctx, entryID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	if e.ID == "" {
		return entities.CostSummary{}, ErrConsumableEntryNotFound
	}
	if _, err := u.writableWorkOrder(ctx, e.WorkOrderID); err != nil {
		return entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, e.WorkOrderID)
	if err != nil {
		return entities.CostSummary{}, err
	}

	removed, err := u.consumables.Delete(ctx, e.ID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	if removed.ID == "" {
		return entities.CostSummary{}, ErrConsumableEntryNotFound
	}
	entries.Consumables = slices.DeleteFunc(entries.Consumables, func(c entities.ConsumableEntry) bool { return c.ID == removed.ID })
	summary := u.store(ctx, e.WorkOrderID, entries)

	u.notify(ctx, actor, "consumable_entry.deleted", "consumable_entry", e.ID, e.WorkOrderID, nil)
	return summary, nil
}

func (u *CostUseCase) CreateOutsourceEntry(ctx context.Context, in OutsourceEntryInput) (entities.OutsourceEntry, entities.CostSummary, error) {
	vendor := strings.TrimSpace(in.VendorName)
	if vendor == "" {
		return entities.OutsourceEntry{}, entities.CostSummary{}, ErrInvalidVendor
	}
	if in.ActualCost < 0 || (in.PlannedCost != nil && *in.PlannedCost < 0) {
		return entities.OutsourceEntry{}, entities.CostSummary{}, ErrInvalidCost
	}

	wo, err := u.writableWorkOrder(ctx, in.WorkOrderID)
	if err != nil {
		return entities.OutsourceEntry{}, entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, wo.ID)
	if err != nil {
		return entities.OutsourceEntry{}, entities.CostSummary{}, err
	}

	e := entities.OutsourceEntry{
		ID:          uuid.NewString(),
		WorkOrderID: wo.ID,
		VendorName:  vendor,
		Description: strings.TrimSpace(in.Description),
		PlannedCost: in.PlannedCost,
		ActualCost:  in.ActualCost,
		CreatedBy:   in.Actor.ID,
		CreatedAt:   u.now(),
	}
	e.Recalculate()

	created, err := u.outsource.Create(ctx, e)
	if err != nil {
		return entities.OutsourceEntry{}, entities.CostSummary{}, err
	}
	entries.Outsource = append(entries.Outsource, created)
	summary := u.store(ctx, wo.ID, entries)

	u.notify(ctx, in.Actor, "outsource_entry.created", "outsource_entry", created.ID, wo.ID, map[string]any{
		"vendor_name": created.VendorName,
		"actual_cost": created.ActualCost,
	})
	return created, summary, nil
}

func (u *CostUseCase) DeleteOutsourceEntry(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.CostSummary{}, ErrInvalidEntryID
	}
	e, err := u.outsource.GetByID(ctx, entryID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	if e.ID == "" {
		return entities.CostSummary{}, ErrOutsourceEntryNotFound
	}
	if _, err := u.writableWorkOrder(ctx, e.WorkOrderID); err != nil {
		return entities.CostSummary{}, err
	}
	entries, err := u.loadEntries(ctx, e.WorkOrderID)
	if err != nil {
		return entities.CostSummary{}, err
	}

	removed, err := u.outsource.Delete(ctx, e.ID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	if removed.ID == "" {
		return entities.CostSummary{}, ErrOutsourceEntryNotFound
	}
	entries.Outsource = slices.DeleteFunc(entries.Outsource, func(o entities.OutsourceEntry) bool { return o.ID == removed.ID })
	summary := u.store(ctx, e.WorkOrderID, entries)

	u.notify(ctx, actor, "outsource_entry.deleted", "outsource_entry", e.ID, e.WorkOrderID, nil)
	return summary, nil
}

func (u *CostUseCase) getLaborEntry(ctx context.Context, id string) (entities.LaborEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborEntry{}, ErrInvalidEntryID
	}
	e, err := u.labor.GetByID(ctx, id)
	if err != nil {
		return entities.LaborEntry{}, err
	}
	if e.ID == "" {
		return entities.LaborEntry{}, ErrLaborEntryNotFound
	}
	return e, nil
}

// writableWorkOrder loads the order an entry belongs to. Cancelled orders take no new cost.
func (u *CostUseCase) writableWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	wo, err := loadWorkOrder(ctx, u.workOrders, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Status == entities.WorkOrderStatusCancelled {
		return entities.WorkOrder{}, ErrWorkOrderCancelled
	}
	return wo, nil
}

func (u *CostUseCase) loadEntries(ctx context.Context, workOrderID string) (costing.Entries, error) {
	labor, err := u.labor.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return costing.Entries{}, err
	}
	consumables, err := u.consumables.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return costing.Entries{}, err
	}
	outsource, err := u.outsource.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return costing.Entries{}, err
	}
	return costing.Entries{Labor: labor, Consumables: consumables, Outsource: outsource}, nil
}

// refresh recomputes the summary from the stored entries and writes it back as the work
// order's snapshot.
func (u *CostUseCase) refresh(ctx context.Context, workOrderID string) (entities.CostSummary, error) {
	in, err := u.loadEntries(ctx, workOrderID)
	if err != nil {
		return entities.CostSummary{}, err
	}
	return u.store(ctx, workOrderID, in), nil
}

// store summarizes in and saves the result as the order's snapshot. The snapshot is a
// cache: failing to write it is logged, not returned.
func (u *CostUseCase) store(ctx context.Context, workOrderID string, in costing.Entries) entities.CostSummary {
	summary := costing.Summarize(workOrderID, in, u.now())
	if err := u.workOrders.UpdateCostSummary(ctx, workOrderID, summary); err != nil {
		u.log.Warn().Err(err).Str("work_order_id", workOrderID).Msg("cost summary snapshot not stored")
	}
	return summary
}

func (u *CostUseCase) notify(ctx context.Context, actor entities.Actor, event, resource, resourceID, workOrderID string, payload map[string]any) {
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

// laborHours accepts hours or minutes, never both, and rounds to two decimals.
func laborHours(hours, minutes *float64) (float64, error) {
	var h float64
	switch {
	case hours != nil && minutes != nil:
		return 0, ErrInvalidHours
	case hours != nil:
		h = *hours
	case minutes != nil:
		h = *minutes / 60
	default:
		return 0, ErrInvalidHours
	}
	h = entities.RoundAmount(h)
	if h <= 0 {
		return 0, ErrInvalidHours
	}
	return h, nil
}
