package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/infrastructure/config"
	"fleet_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:          "0",
		AppEnv:        "test",
		StorageDriver: config.StorageSQLite,
		SQLitePath:    ":memory:",
		Reconcile:     config.ReconcileConfig{Interval: time.Minute},
	}
	a, err := New(context.Background(), cfg, zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew_SQLiteWiresTheRouter(t *testing.T) {
	a := newSQLiteApp(t)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNew_EndToEndCostFlow(t *testing.T) {
	a := newSQLiteApp(t)
	ctx := context.Background()
	foreman := entities.Actor{ID: "fm-1", Role: entities.RoleForeman}
	manager := entities.Actor{ID: "mgr-1", Role: entities.RoleManager}

	wo, err := a.WorkOrders.Create(ctx, usecase.CreateWorkOrderInput{
		Actor:       foreman,
		Code:        "WO-1",
		EquipmentID: "truck-7",
		Title:       "Replace brake pads",
	})
	require.NoError(t, err)

	_, _, err = a.Approvals.ApproveWorkOrder(ctx, manager, wo.ID, "ok")
	require.NoError(t, err)

	hours := 2.0
	_, summary, err := a.Costs.CreateLaborEntry(ctx, usecase.LaborEntryInput{
		Actor:       foreman,
		WorkOrderID: wo.ID,
		EmployeeID:  "emp-1",
		Hours:       &hours,
		HourlyRate:  40,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, summary.LaborActualCost)

	report, err := a.Reconciliation.RunOnce(ctx)
	require.NoError(t, err)
	assert.False(t, report.Skipped)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/"+wo.ID+"/costs", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"labor_actual_cost":80`), w.Body.String())
}

func TestServe_StopsWhenContextIsCancelled(t *testing.T) {
	a := newSQLiteApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
