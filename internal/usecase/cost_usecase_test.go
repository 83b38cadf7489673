package usecase

import (
	"context"
	"errors"
	"testing"

	"fleet_maintenance/internal/domain/entities"
	mock_interfaces "fleet_maintenance/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type costMocks struct {
	workOrders  *mock_interfaces.MockIWorkOrderRepository
	labor       *mock_interfaces.MockILaborEntryRepository
	consumables *mock_interfaces.MockIConsumableEntryRepository
	outsource   *mock_interfaces.MockIOutsourceEntryRepository
	notifier    *mock_interfaces.MockINotificationPublisher
}

func newCostUseCaseWithMocks(t *testing.T) (*CostUseCase, costMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := costMocks{
		workOrders:  mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		labor:       mock_interfaces.NewMockILaborEntryRepository(ctrl),
		consumables: mock_interfaces.NewMockIConsumableEntryRepository(ctrl),
		outsource:   mock_interfaces.NewMockIOutsourceEntryRepository(ctrl),
		notifier:    mock_interfaces.NewMockINotificationPublisher(ctrl),
	}
	uc := NewCostUseCase(m.workOrders, m.labor, m.consumables, m.outsource, m.notifier, zerolog.Nop())
	uc.now = clock
	return uc, m
}

// expectEntries registers the reads of a work order's entries.
func (m costMocks) expectEntries(woID string, labor []entities.LaborEntry, cons []entities.ConsumableEntry, out []entities.OutsourceEntry) {
	m.labor.EXPECT().ListByWorkOrderID(gomock.Any(), woID).Return(labor, nil)
	m.consumables.EXPECT().ListByWorkOrderID(gomock.Any(), woID).Return(cons, nil)
	m.outsource.EXPECT().ListByWorkOrderID(gomock.Any(), woID).Return(out, nil)
}

// expectRefresh registers the entry reads before a write and the snapshot write after it.
// The entries are the state before the write.
func (m costMocks) expectRefresh(woID string, labor []entities.LaborEntry, cons []entities.ConsumableEntry, out []entities.OutsourceEntry) {
	m.expectEntries(woID, labor, cons, out)
	m.workOrders.EXPECT().UpdateCostSummary(gomock.Any(), woID, gomock.AssignableToTypeOf(entities.CostSummary{})).Return(nil)
}

var foreman = entities.Actor{ID: "u-foreman", Role: entities.RoleForeman}
var teamMember = entities.Actor{ID: "u-team", Role: entities.RoleTeam}

func openWorkOrder(id string) entities.WorkOrder {
	return entities.WorkOrder{ID: id, Status: entities.WorkOrderStatusInProgress, ApprovalStatus: entities.ApprovalStatusApproved}
}

func TestCostUseCase_CreateLaborEntry_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   LaborEntryInput
		want error
	}{
		{name: "missing employee", in: LaborEntryInput{WorkOrderID: "wo-1", Hours: f64(1), HourlyRate: 10}, want: ErrInvalidEmployeeID},
		{name: "hours and minutes", in: LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(1), Minutes: f64(60), HourlyRate: 10}, want: ErrInvalidHours},
		{name: "no duration", in: LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", HourlyRate: 10}, want: ErrInvalidHours},
		{name: "zero hours", in: LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(0), HourlyRate: 10}, want: ErrInvalidHours},
		{name: "minutes round to zero", in: LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Minutes: f64(0.1), HourlyRate: 10}, want: ErrInvalidHours},
		{name: "zero rate", in: LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(1)}, want: ErrInvalidHourlyRate},
		{name: "factor below one", in: LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(1), HourlyRate: 10, OvertimeFactor: f64(0.9)}, want: ErrInvalidOvertimeFactor},
		{name: "blank work order", in: LaborEntryInput{WorkOrderID: " ", EmployeeID: "e-1", Hours: f64(1), HourlyRate: 10}, want: ErrInvalidWorkOrderID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newCostUseCaseWithMocks(t)
			_, _, err := uc.CreateLaborEntry(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestCostUseCase_CreateLaborEntry(t *testing.T) {
	t.Run("work order not found", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, nil)

		_, _, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(1), HourlyRate: 10})
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("cancelled work order", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusCancelled}, nil)

		_, _, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(1), HourlyRate: 10})
		if !errors.Is(err, ErrWorkOrderCancelled) {
			t.Fatalf("expected ErrWorkOrderCancelled, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.expectEntries("wo-1", nil, nil, nil)
		m.labor.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaborEntry{}, errors.New("db"))

		_, _, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(1), HourlyRate: 10})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("minutes are converted and cost is computed", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)

		var stored entities.LaborEntry
		m.labor.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LaborEntry{})).DoAndReturn(
			func(_ context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
				if e.ID == "" || e.WorkOrderID != "wo-1" || e.EmployeeID != "e-1" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.HoursWorked != 1.5 || e.TotalCost != 90 || e.TimeSource != entities.TimeSourceManual {
					t.Fatalf("unexpected hours/cost: %+v", e)
				}
				if !e.WorkDate.Equal(fixedNow) || e.CreatedBy != teamMember.ID {
					t.Fatalf("unexpected defaults: %+v", e)
				}
				stored = e
				return e, nil
			},
		)
		m.expectRefresh("wo-1", nil, nil, nil)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n entities.Notification) {
			if n.EventType != "labor_entry.created" || n.ResourceID != stored.ID || n.ActorID != teamMember.ID {
				t.Fatalf("unexpected notification: %+v", n)
			}
		})

		e, summary, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{
			Actor:          teamMember,
			WorkOrderID:    " wo-1 ",
			EmployeeID:     "e-1",
			Minutes:        f64(90),
			HourlyRate:     40,
			OvertimeFactor: f64(1.5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.TotalCost != 90 || summary.LaborActualCost != 90 || summary.TotalActualCost != 90 {
			t.Fatalf("unexpected result: %+v / %+v", e, summary)
		}
	})

	t.Run("snapshot write failure does not fail the mutation", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.labor.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LaborEntry) (entities.LaborEntry, error) { return e, nil },
		)
		m.labor.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil)
		m.consumables.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil)
		m.outsource.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil)
		m.workOrders.EXPECT().UpdateCostSummary(gomock.Any(), "wo-1", gomock.Any()).Return(errors.New("throttled"))
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		if _, _, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(2), HourlyRate: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("entry loading error aborts before writing", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.labor.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		m.labor.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, errors.New("db"))

		_, _, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(2), HourlyRate: 10})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCostUseCase_CreateLaborEntry_ReadsBeforeWriting(t *testing.T) {
	uc, m := newCostUseCaseWithMocks(t)
	prior := entities.LaborEntry{ID: "le-0", WorkOrderID: "wo-1", TotalCost: 30}
	m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
	gomock.InOrder(
		m.labor.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.LaborEntry{prior}, nil),
		m.consumables.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil),
		m.outsource.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil),
		m.labor.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LaborEntry) (entities.LaborEntry, error) { return e, nil },
		),
		m.workOrders.EXPECT().UpdateCostSummary(gomock.Any(), "wo-1", gomock.Any()).Return(nil),
	)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

	e, summary, err := uc.CreateLaborEntry(context.Background(), LaborEntryInput{WorkOrderID: "wo-1", EmployeeID: "e-1", Hours: f64(2), HourlyRate: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.TotalCost != 20 || summary.LaborActualCost != 50 {
		t.Fatalf("expected summary to include prior and new entry: %+v / %+v", e, summary)
	}
}

func TestCostUseCase_UpdateLaborEntry(t *testing.T) {
	existing := entities.LaborEntry{
		ID: "le-1", WorkOrderID: "wo-1", EmployeeID: "e-1",
		HoursWorked: 2, HourlyRateSnapshot: 50, OvertimeFactor: 1, TotalCost: 100,
		TimeSource: entities.TimeSourceManual,
	}

	t.Run("nothing to update", func(t *testing.T) {
		uc, _ := newCostUseCaseWithMocks(t)
		_, _, err := uc.UpdateLaborEntry(context.Background(), LaborEntryPatch{EntryID: "le-1"})
		if !errors.Is(err, ErrNothingToUpdate) {
			t.Fatalf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("invalid factor", func(t *testing.T) {
		uc, _ := newCostUseCaseWithMocks(t)
		_, _, err := uc.UpdateLaborEntry(context.Background(), LaborEntryPatch{EntryID: "le-1", OvertimeFactor: f64(0.5)})
		if !errors.Is(err, ErrInvalidOvertimeFactor) {
			t.Fatalf("expected ErrInvalidOvertimeFactor, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.labor.EXPECT().GetByID(gomock.Any(), "le-1").Return(entities.LaborEntry{}, nil)

		_, _, err := uc.UpdateLaborEntry(context.Background(), LaborEntryPatch{EntryID: "le-1", Description: str("x")})
		if !errors.Is(err, ErrLaborEntryNotFound) {
			t.Fatalf("expected ErrLaborEntryNotFound, got %v", err)
		}
	})

	t.Run("factor change recomputes total", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.labor.EXPECT().GetByID(gomock.Any(), "le-1").Return(existing, nil)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.labor.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
				if e.OvertimeFactor != 1.5 || e.TotalCost != 150 || e.Description != "night shift" {
					t.Fatalf("unexpected update: %+v", e)
				}
				if e.HoursWorked != 2 || e.HourlyRateSnapshot != 50 {
					t.Fatalf("hours and rate must not change: %+v", e)
				}
				if !e.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected updated_at to be refreshed")
				}
				return e, nil
			},
		)
		m.expectRefresh("wo-1", []entities.LaborEntry{existing, {ID: "le-2", TotalCost: 20}}, nil, nil)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		e, summary, err := uc.UpdateLaborEntry(context.Background(), LaborEntryPatch{
			EntryID: "le-1", OvertimeFactor: f64(1.5), Description: str(" night shift "),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.TotalCost != 150 || summary.LaborActualCost != 170 {
			t.Fatalf("unexpected result: %+v / %+v", e, summary)
		}
	})
}

func TestCostUseCase_DeleteLaborEntry(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newCostUseCaseWithMocks(t)
		_, err := uc.DeleteLaborEntry(context.Background(), teamMember, "")
		if !errors.Is(err, ErrInvalidEntryID) {
			t.Fatalf("expected ErrInvalidEntryID, got %v", err)
		}
	})

	t.Run("removed between read and delete", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.labor.EXPECT().GetByID(gomock.Any(), "le-1").Return(entities.LaborEntry{ID: "le-1", WorkOrderID: "wo-1"}, nil)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.expectEntries("wo-1", nil, nil, nil)
		m.labor.EXPECT().Delete(gomock.Any(), "le-1").Return(entities.LaborEntry{}, nil)

		_, err := uc.DeleteLaborEntry(context.Background(), teamMember, "le-1")
		if !errors.Is(err, ErrLaborEntryNotFound) {
			t.Fatalf("expected ErrLaborEntryNotFound, got %v", err)
		}
	})

	t.Run("success refreshes summary", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.labor.EXPECT().GetByID(gomock.Any(), "le-1").Return(entities.LaborEntry{ID: "le-1", WorkOrderID: "wo-1"}, nil)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.labor.EXPECT().Delete(gomock.Any(), "le-1").Return(entities.LaborEntry{ID: "le-1", WorkOrderID: "wo-1"}, nil)
		m.expectRefresh("wo-1", []entities.LaborEntry{{ID: "le-1", WorkOrderID: "wo-1", TotalCost: 40}}, nil, nil)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		summary, err := uc.DeleteLaborEntry(context.Background(), teamMember, "le-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.LaborActualCost != 0 || summary.VarianceStatus != entities.VarianceOnBudget {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})
}

func TestCostUseCase_CreateConsumableEntry(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			in   ConsumableEntryInput
			want error
		}{
			{name: "entry type", in: ConsumableEntryInput{WorkOrderID: "wo-1", ItemName: "oil", Quantity: 1}, want: ErrInvalidEntryType},
			{name: "item name", in: ConsumableEntryInput{WorkOrderID: "wo-1", EntryType: entities.ConsumableEntryActual, Quantity: 1}, want: ErrInvalidItemName},
			{name: "quantity", in: ConsumableEntryInput{WorkOrderID: "wo-1", EntryType: entities.ConsumableEntryActual, ItemName: "oil"}, want: ErrInvalidQuantity},
			{name: "unit cost", in: ConsumableEntryInput{WorkOrderID: "wo-1", EntryType: entities.ConsumableEntryActual, ItemName: "oil", Quantity: 1, UnitCost: -1}, want: ErrInvalidUnitCost},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, _ := newCostUseCaseWithMocks(t)
				_, _, err := uc.CreateConsumableEntry(context.Background(), tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("lubricant planned vs actual", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		var stored []entities.ConsumableEntry

		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil).Times(2)
		m.consumables.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ConsumableEntry) (entities.ConsumableEntry, error) {
				stored = append(stored, e)
				return e, nil
			},
		).Times(2)
		m.labor.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil).Times(2)
		m.consumables.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").DoAndReturn(
			func(context.Context, string) ([]entities.ConsumableEntry, error) { return stored, nil },
		).Times(2)
		m.outsource.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil).Times(2)
		m.workOrders.EXPECT().UpdateCostSummary(gomock.Any(), "wo-1", gomock.Any()).Return(nil).Times(2)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

		planned, _, err := uc.CreateConsumableEntry(context.Background(), ConsumableEntryInput{
			Actor: foreman, WorkOrderID: "wo-1", EntryType: entities.ConsumableEntryTypeForRole(foreman.Role),
			ItemName: "Lubricant", Unit: "L", Quantity: 10, UnitCost: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if planned.EntryType != entities.ConsumableEntryPlanned || planned.TotalCost != 50 {
			t.Fatalf("unexpected planned entry: %+v", planned)
		}

		actual, summary, err := uc.CreateConsumableEntry(context.Background(), ConsumableEntryInput{
			Actor: teamMember, WorkOrderID: "wo-1", EntryType: entities.ConsumableEntryTypeForRole(teamMember.Role),
			ItemName: "Lubricant", Unit: "L", Quantity: 12, UnitCost: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual.EntryType != entities.ConsumableEntryActual || actual.TotalCost != 60 {
			t.Fatalf("unexpected actual entry: %+v", actual)
		}
		if summary.PlannedConsumableCost != 50 || summary.ActualConsumableCost != 60 || summary.CostVariance != 10 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})
}

func TestCostUseCase_DeleteConsumableEntry(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.consumables.EXPECT().GetByID(gomock.Any(), "ce-1").Return(entities.ConsumableEntry{}, nil)

		_, err := uc.DeleteConsumableEntry(context.Background(), teamMember, "ce-1")
		if !errors.Is(err, ErrConsumableEntryNotFound) {
			t.Fatalf("expected ErrConsumableEntryNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		entry := entities.ConsumableEntry{ID: "ce-1", WorkOrderID: "wo-1"}
		m.consumables.EXPECT().GetByID(gomock.Any(), "ce-1").Return(entry, nil)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.consumables.EXPECT().Delete(gomock.Any(), "ce-1").Return(entry, nil)
		m.expectRefresh("wo-1", nil, []entities.ConsumableEntry{entry}, nil)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		if _, err := uc.DeleteConsumableEntry(context.Background(), teamMember, "ce-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCostUseCase_OutsourceEntries(t *testing.T) {
	t.Run("vendor required", func(t *testing.T) {
		uc, _ := newCostUseCaseWithMocks(t)
		_, _, err := uc.CreateOutsourceEntry(context.Background(), OutsourceEntryInput{WorkOrderID: "wo-1", ActualCost: 10})
		if !errors.Is(err, ErrInvalidVendor) {
			t.Fatalf("expected ErrInvalidVendor, got %v", err)
		}
	})

	t.Run("negative planned cost", func(t *testing.T) {
		uc, _ := newCostUseCaseWithMocks(t)
		_, _, err := uc.CreateOutsourceEntry(context.Background(), OutsourceEntryInput{WorkOrderID: "wo-1", VendorName: "ACME", PlannedCost: f64(-1), ActualCost: 10})
		if !errors.Is(err, ErrInvalidCost) {
			t.Fatalf("expected ErrInvalidCost, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.outsource.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.OutsourceEntry) (entities.OutsourceEntry, error) {
				if e.VendorName != "ACME" || e.PlannedCost == nil || *e.PlannedCost != 1000 || e.ActualCost != 1200.46 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return e, nil
			},
		)
		m.expectRefresh("wo-1", nil, nil, nil)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, summary, err := uc.CreateOutsourceEntry(context.Background(), OutsourceEntryInput{
			Actor: foreman, WorkOrderID: "wo-1", VendorName: " ACME ", PlannedCost: f64(1000), ActualCost: 1200.456,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.CostVariance != 200.46 || summary.VarianceStatus != entities.VarianceOverBudget {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("delete on cancelled order", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.outsource.EXPECT().GetByID(gomock.Any(), "oe-1").Return(entities.OutsourceEntry{ID: "oe-1", WorkOrderID: "wo-1"}, nil)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusCancelled}, nil)

		_, err := uc.DeleteOutsourceEntry(context.Background(), foreman, "oe-1")
		if !errors.Is(err, ErrWorkOrderCancelled) {
			t.Fatalf("expected ErrWorkOrderCancelled, got %v", err)
		}
	})
}

func TestCostUseCase_GetWorkOrderCosts(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-9").Return(entities.WorkOrder{}, nil)

		_, err := uc.GetWorkOrderCosts(context.Background(), "wo-9")
		if !errors.Is(err, ErrWorkOrderNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("returns entries and summary without writing", func(t *testing.T) {
		uc, m := newCostUseCaseWithMocks(t)
		m.workOrders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openWorkOrder("wo-1"), nil)
		m.labor.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.LaborEntry{{ID: "le-1", TotalCost: 80}}, nil)
		m.consumables.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.ConsumableEntry{{ID: "ce-1", EntryType: entities.ConsumableEntryPlanned, TotalCost: 100}}, nil)
		m.outsource.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return(nil, nil)

		res, err := uc.GetWorkOrderCosts(context.Background(), "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Labor) != 1 || len(res.Consumables) != 1 || len(res.Outsource) != 0 {
			t.Fatalf("unexpected entry lists: %+v", res)
		}
		if res.Summary.CostVariance != -20 || res.Summary.VarianceStatus != entities.VarianceUnderBudget {
			t.Fatalf("unexpected summary: %+v", res.Summary)
		}
	})
}
