package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fleet_maintenance/internal/adapter/persistence/repository"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func seedWorkOrder(t *testing.T, repo *repository.WorkOrderSQLiteRepository, id string, status entities.WorkOrderStatus) entities.WorkOrder {
	t.Helper()
	wo := entities.WorkOrder{
		ID:                       id,
		Code:                     "WO-" + id,
		EquipmentID:              "truck-7",
		Title:                    "Brake overhaul",
		Status:                   status,
		ApprovalStatus:           entities.ApprovalStatusApproved,
		CompletionApprovalStatus: entities.CompletionApprovalNotRequested,
		Specification:            json.RawMessage(`{"axles":2}`),
		CreatedBy:                "mgr-1",
		CreatedAt:                t0,
		UpdatedAt:                t0,
	}
	if status != entities.WorkOrderStatusPending {
		wo.StartedAt = &t0
	}
	_, err := repo.Create(context.Background(), wo)
	require.NoError(t, err)
	return wo
}

func TestWorkOrderSQLiteRepository_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkOrderSQLiteRepository(db)
	ctx := context.Background()

	seedWorkOrder(t, repo, "wo-1", entities.WorkOrderStatusInProgress)
	seedWorkOrder(t, repo, "wo-2", entities.WorkOrderStatusAwaitingParts)
	seedWorkOrder(t, repo, "wo-3", entities.WorkOrderStatusPending)

	got, err := repo.GetByID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Equal(t, "WO-wo-1", got.Code)
	require.NotNil(t, got.StartedAt)
	assert.True(t, got.StartedAt.Equal(t0))
	assert.JSONEq(t, `{"axles":2}`, string(got.Specification))
	assert.Nil(t, got.CostSummary)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	active, err := repo.ListByStatuses(ctx, entities.ActiveWorkOrderStatuses)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "wo-1", active[0].ID)
	assert.Equal(t, "wo-2", active[1].ID)
}

func TestWorkOrderSQLiteRepository_UpdateKeepsCostSummary(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkOrderSQLiteRepository(db)
	ctx := context.Background()

	wo := seedWorkOrder(t, repo, "wo-1", entities.WorkOrderStatusInProgress)
	summary := entities.CostSummary{
		WorkOrderID:     "wo-1",
		TotalActualCost: 250,
		VarianceStatus:  entities.VarianceOverBudget,
		CalculatedAt:    t0,
	}
	require.NoError(t, repo.UpdateCostSummary(ctx, "wo-1", summary))

	completed := t0.Add(3 * time.Hour)
	wo.Status = entities.WorkOrderStatusCompleted
	wo.CompletedAt = &completed
	wo.UpdatedAt = completed
	updated, err := repo.Update(ctx, wo)
	require.NoError(t, err)

	assert.Equal(t, entities.WorkOrderStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(completed))
	require.NotNil(t, updated.CostSummary)
	assert.Equal(t, 250.0, updated.CostSummary.TotalActualCost)

	gone, err := repo.Update(ctx, entities.WorkOrder{ID: "nope", Status: entities.WorkOrderStatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestTimeEventSQLiteRepository_ListsInTimestampOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedWorkOrder(t, repository.NewWorkOrderSQLiteRepository(db), "wo-1", entities.WorkOrderStatusInProgress)
	repo := repository.NewTimeEventSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Append(ctx, entities.TimeTrackingEvent{ID: "ev-2", WorkOrderID: "wo-1", Event: entities.TimeEventResume, Timestamp: t0.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = repo.Append(ctx, entities.TimeTrackingEvent{ID: "ev-1", WorkOrderID: "wo-1", Event: entities.TimeEventPause, Timestamp: t0.Add(time.Hour), Reason: "lunch"})
	require.NoError(t, err)

	events, err := repo.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entities.TimeEventPause, events[0].Event)
	assert.Equal(t, "lunch", events[0].Reason)
	assert.Equal(t, entities.TimeEventResume, events[1].Event)
}

func TestLaborEntrySQLiteRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedWorkOrder(t, repository.NewWorkOrderSQLiteRepository(db), "wo-1", entities.WorkOrderStatusInProgress)
	repo := repository.NewLaborEntrySQLiteRepository(db)
	ctx := context.Background()

	for i, src := range []entities.TimeSource{entities.TimeSourceAuto, entities.TimeSourceManual, entities.TimeSourceAuto} {
		_, err := repo.Create(ctx, entities.LaborEntry{
			ID:                 []string{"le-a", "le-m", "le-b"}[i],
			WorkOrderID:        "wo-1",
			EmployeeID:         "emp-1",
			HourlyRateSnapshot: 40,
			OvertimeFactor:     1,
			TimeSource:         src,
			WorkDate:           t0,
			CreatedAt:          t0.Add(time.Duration(i) * time.Minute),
			UpdatedAt:          t0,
		})
		require.NoError(t, err)
	}

	auto, err := repo.ListAutoByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	require.Len(t, auto, 2)
	assert.Equal(t, "le-a", auto[0].ID)
	assert.Equal(t, "le-b", auto[1].ID)

	all, err := repo.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	updated, err := repo.UpdateHours(ctx, "le-a", 1.5, 60, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1.5, updated.HoursWorked)
	assert.Equal(t, 60.0, updated.TotalCost)
	assert.Equal(t, 40.0, updated.HourlyRateSnapshot)

	missing, err := repo.UpdateHours(ctx, "nope", 1, 1, t0)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	deleted, err := repo.Delete(ctx, "le-m")
	require.NoError(t, err)
	assert.Equal(t, "le-m", deleted.ID)
	again, err := repo.Delete(ctx, "le-m")
	require.NoError(t, err)
	assert.Empty(t, again.ID)
}

func TestOutsourceEntrySQLiteRepository_OptionalPlannedCost(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedWorkOrder(t, repository.NewWorkOrderSQLiteRepository(db), "wo-1", entities.WorkOrderStatusInProgress)
	repo := repository.NewOutsourceEntrySQLiteRepository(db)
	ctx := context.Background()

	planned := 500.0
	_, err := repo.Create(ctx, entities.OutsourceEntry{ID: "os-1", WorkOrderID: "wo-1", VendorName: "Acme", PlannedCost: &planned, ActualCost: 550, CreatedAt: t0})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.OutsourceEntry{ID: "os-2", WorkOrderID: "wo-1", VendorName: "Acme", ActualCost: 80, CreatedAt: t0.Add(time.Minute)})
	require.NoError(t, err)

	entries, err := repo.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].PlannedCost)
	assert.Equal(t, 500.0, *entries[0].PlannedCost)
	assert.Nil(t, entries[1].PlannedCost)
}

func TestConsumableEntrySQLiteRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedWorkOrder(t, repository.NewWorkOrderSQLiteRepository(db), "wo-1", entities.WorkOrderStatusInProgress)
	repo := repository.NewConsumableEntrySQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.ConsumableEntry{
		ID: "ce-1", WorkOrderID: "wo-1", EntryType: entities.ConsumableEntryPlanned,
		ItemName: "Hydraulic oil", Unit: "l", Quantity: 4, UnitCostSnapshot: 12.5, TotalCost: 50, CreatedAt: t0,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "ce-1")
	require.NoError(t, err)
	assert.Equal(t, entities.ConsumableEntryPlanned, got.EntryType)
	assert.Equal(t, 50.0, got.TotalCost)

	deleted, err := repo.Delete(ctx, "ce-1")
	require.NoError(t, err)
	assert.Equal(t, "ce-1", deleted.ID)

	entries, err := repo.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApprovalSQLiteRepository_DecideOnlyOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApprovalSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Approval{
		ID: "ap-1", ReferenceType: entities.ApprovalReferenceWorkCompletion, ReferenceID: "wo-1",
		Status: entities.ApprovalStatusPending, RequestedAt: t0,
	})
	require.NoError(t, err)

	decided := t0.Add(time.Hour)
	decision := entities.Approval{
		ID: "ap-1", Status: entities.ApprovalStatusApproved, ApproverID: "mgr-1", DecidedAt: &decided,
		CostSnapshot: &entities.CostSummary{WorkOrderID: "wo-1", TotalActualCost: 99},
	}
	ok, err := repo.Decide(ctx, decision)
	require.NoError(t, err)
	assert.True(t, ok)

	decision.Status = entities.ApprovalStatusRejected
	ok, err = repo.Decide(ctx, decision)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := repo.ListByReference(ctx, entities.ApprovalReferenceWorkCompletion, "wo-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entities.ApprovalStatusApproved, list[0].Status)
	require.NotNil(t, list[0].CostSnapshot)
	assert.Equal(t, 99.0, list[0].CostSnapshot.TotalActualCost)

	other, err := repo.ListByReference(ctx, entities.ApprovalReferenceWorkOrder, "wo-1")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRequisitionSQLiteRepository_LineDecisions(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedWorkOrder(t, repository.NewWorkOrderSQLiteRepository(db), "wo-1", entities.WorkOrderStatusInProgress)
	repo := repository.NewRequisitionSQLiteRepository(db, testutil.NewTestUoW(db))
	ctx := context.Background()

	pending := entities.LineDecision{Status: entities.ApprovalStatusPending}
	req := entities.Requisition{
		ID: "req-1", WorkOrderID: "wo-1", RequestedBy: "tm-1", Status: entities.RequisitionStatusPending,
		CreatedAt: t0, UpdatedAt: t0,
		Lines: []entities.RequisitionLine{
			{ID: "line-2", RequisitionID: "req-1", LineNumber: 2, PartID: "pad", QuantityRequested: 4, Foreman: pending, Storekeeper: pending, UpdatedAt: t0},
			{ID: "line-1", RequisitionID: "req-1", LineNumber: 1, PartID: "disc", QuantityRequested: 2, Foreman: pending, Storekeeper: pending, UpdatedAt: t0},
		},
	}
	_, err := repo.Create(ctx, req)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "line-1", got.Lines[0].ID)

	line, err := repo.GetLineByID(ctx, "line-1")
	require.NoError(t, err)
	at := t0.Add(time.Hour)
	qty := 1.0
	line.QuantityApproved = &qty
	line.SetDecision(entities.ReviewTrackForeman, entities.LineDecision{
		Status: entities.ApprovalStatusApproved, ReviewerID: "fm-1", DecidedAt: &at,
	})

	ok, err := repo.ApplyLineDecision(ctx, line, entities.ReviewTrackForeman, entities.RequisitionStatusInReview, at)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ApplyLineDecision(ctx, line, entities.ReviewTrackForeman, entities.RequisitionStatusInReview, at)
	require.NoError(t, err)
	assert.False(t, ok, "a decided track must not be overwritten")

	got, err = repo.GetByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RequisitionStatusInReview, got.Status)
	assert.Equal(t, entities.ApprovalStatusApproved, got.Lines[0].Foreman.Status)
	assert.True(t, got.Lines[0].Storekeeper.IsPending())
	require.NotNil(t, got.Lines[0].QuantityApproved)
	assert.Equal(t, 1.0, *got.Lines[0].QuantityApproved)

	list, err := repo.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Lines, 2)
}

func TestWorkOrderTxSQLiteRepository_CreateWithApproval(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkOrderTxSQLiteRepository(testutil.NewTestUoW(db))
	workOrders := repository.NewWorkOrderSQLiteRepository(db)
	approvals := repository.NewApprovalSQLiteRepository(db)
	ctx := context.Background()

	pending := entities.Approval{
		ID: "ap-1", ReferenceType: entities.ApprovalReferenceWorkOrder, ReferenceID: "wo-1",
		Status: entities.ApprovalStatusPending, RequestedAt: t0,
	}
	wo := entities.WorkOrder{
		ID: "wo-1", Code: "WO-1", EquipmentID: "truck-7", Title: "Brake overhaul",
		Status: entities.WorkOrderStatusPending, ApprovalStatus: entities.ApprovalStatusPending,
		CompletionApprovalStatus: entities.CompletionApprovalNotRequested,
		CreatedBy: "mgr-1", CreatedAt: t0, UpdatedAt: t0,
	}
	created, err := repo.CreateWithApproval(ctx, wo, pending)
	require.NoError(t, err)
	assert.Equal(t, "wo-1", created.ID)

	list, err := approvals.ListByReference(ctx, entities.ApprovalReferenceWorkOrder, "wo-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	// The approval id is taken, so the second order must not be stored either.
	wo.ID, wo.Code = "wo-2", "WO-2"
	pending.ReferenceID = "wo-2"
	_, err = repo.CreateWithApproval(ctx, wo, pending)
	require.Error(t, err)

	missing, err := workOrders.GetByID(ctx, "wo-2")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestWorkOrderTxSQLiteRepository_UpdateWithApproval(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkOrderTxSQLiteRepository(testutil.NewTestUoW(db))
	workOrders := repository.NewWorkOrderSQLiteRepository(db)
	approvals := repository.NewApprovalSQLiteRepository(db)
	ctx := context.Background()

	wo := seedWorkOrder(t, workOrders, "wo-1", entities.WorkOrderStatusInProgress)
	pending := entities.Approval{
		ID: "ap-1", ReferenceType: entities.ApprovalReferenceWorkCompletion, ReferenceID: "wo-1",
		Status: entities.ApprovalStatusPending, RequestedAt: t0,
	}

	t.Run("missing order writes no approval", func(t *testing.T) {
		gone, err := repo.UpdateWithApproval(ctx, entities.WorkOrder{ID: "nope", Status: entities.WorkOrderStatusCompleted}, pending)
		require.NoError(t, err)
		assert.Empty(t, gone.ID)

		list, err := approvals.ListByReference(ctx, entities.ApprovalReferenceWorkCompletion, "wo-1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("approval failure rolls back the order", func(t *testing.T) {
		_, err := approvals.Create(ctx, entities.Approval{
			ID: "ap-taken", ReferenceType: entities.ApprovalReferenceWorkOrder, ReferenceID: "wo-9",
			Status: entities.ApprovalStatusPending, RequestedAt: t0,
		})
		require.NoError(t, err)

		completed := wo
		completed.Status = entities.WorkOrderStatusCompleted
		dup := pending
		dup.ID = "ap-taken"
		_, err = repo.UpdateWithApproval(ctx, completed, dup)
		require.Error(t, err)

		got, err := workOrders.GetByID(ctx, "wo-1")
		require.NoError(t, err)
		assert.Equal(t, entities.WorkOrderStatusInProgress, got.Status)
	})

	t.Run("stores both", func(t *testing.T) {
		completed := wo
		completed.Status = entities.WorkOrderStatusCompleted
		updated, err := repo.UpdateWithApproval(ctx, completed, pending)
		require.NoError(t, err)
		assert.Equal(t, entities.WorkOrderStatusCompleted, updated.Status)

		list, err := approvals.ListByReference(ctx, entities.ApprovalReferenceWorkCompletion, "wo-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "ap-1", list[0].ID)
	})
}

func TestWorkOrderTxSQLiteRepository_UpdateWithDecision(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkOrderTxSQLiteRepository(testutil.NewTestUoW(db))
	workOrders := repository.NewWorkOrderSQLiteRepository(db)
	approvals := repository.NewApprovalSQLiteRepository(db)
	ctx := context.Background()

	wo := seedWorkOrder(t, workOrders, "wo-1", entities.WorkOrderStatusPending)
	_, err := approvals.Create(ctx, entities.Approval{
		ID: "ap-1", ReferenceType: entities.ApprovalReferenceWorkOrder, ReferenceID: "wo-1",
		Status: entities.ApprovalStatusPending, RequestedAt: t0,
	})
	require.NoError(t, err)

	decidedAt := t0.Add(time.Hour)
	approved := entities.Approval{ID: "ap-1", Status: entities.ApprovalStatusApproved, ApproverID: "mgr-1", DecidedAt: &decidedAt}
	wo.ApprovalStatus = entities.ApprovalStatusApproved

	updated, pending, err := repo.UpdateWithDecision(ctx, wo, approved)
	require.NoError(t, err)
	assert.True(t, pending)
	assert.Equal(t, entities.ApprovalStatusApproved, updated.ApprovalStatus)

	// A second decision loses: neither record changes.
	rejected := approved
	rejected.Status = entities.ApprovalStatusRejected
	wo.ApprovalStatus = entities.ApprovalStatusRejected
	_, pending, err = repo.UpdateWithDecision(ctx, wo, rejected)
	require.NoError(t, err)
	assert.False(t, pending)

	got, err := workOrders.GetByID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalStatusApproved, got.ApprovalStatus)
	ap, err := approvals.GetByID(ctx, "ap-1")
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalStatusApproved, ap.Status)
}

func TestWorkOrderTxSQLiteRepository_UpdateWithLaborEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkOrderTxSQLiteRepository(testutil.NewTestUoW(db))
	workOrders := repository.NewWorkOrderSQLiteRepository(db)
	labor := repository.NewLaborEntrySQLiteRepository(db)
	ctx := context.Background()

	wo := seedWorkOrder(t, workOrders, "wo-1", entities.WorkOrderStatusPending)
	entry := func(id string) entities.LaborEntry {
		return entities.LaborEntry{
			ID: id, WorkOrderID: "wo-1", EmployeeID: "emp-" + id, HourlyRateSnapshot: 40, OvertimeFactor: 1,
			TimeSource: entities.TimeSourceAuto, WorkDate: t0, CreatedAt: t0, UpdatedAt: t0,
		}
	}

	started := wo
	started.Status = entities.WorkOrderStatusInProgress
	started.StartedAt = &t0
	_, err := repo.UpdateWithLaborEntries(ctx, started, []entities.LaborEntry{entry("le-1"), entry("le-1")})
	require.Error(t, err, "a duplicate entry aborts the start")

	got, err := workOrders.GetByID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusPending, got.Status)
	none, err := labor.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Empty(t, none)

	updated, err := repo.UpdateWithLaborEntries(ctx, started, []entities.LaborEntry{entry("le-1"), entry("le-2")})
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusInProgress, updated.Status)
	entries, err := labor.ListByWorkOrderID(ctx, "wo-1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
