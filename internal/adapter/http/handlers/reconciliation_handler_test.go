package handlers

import (
	"net/http"
	"testing"
	"time"

	"fleet_maintenance/internal/adapter/http/handlers/mocks"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReconciliationHandler_RunReconciliation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("team members cannot trigger a run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewReconciliationHandler(mocks.NewMockIReconciliationUseCase(ctrl))

		r := newRouter()
		r.POST("/v1/reconciliation/run", h.RunReconciliation)

		w := serve(r, newRequest(http.MethodPost, "/v1/reconciliation/run", "", entities.Actor{ID: "t-1", Role: entities.RoleTeam}))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("report is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewReconciliationHandler(uc)

		r := newRouter()
		r.POST("/v1/reconciliation/run", h.RunReconciliation)

		uc.EXPECT().RunOnce(gomock.Any()).Return(usecase.RunReport{
			RunID:          "run-1",
			Duration:       250 * time.Millisecond,
			OrdersScanned:  4,
			OrdersUpdated:  3,
			EntriesUpdated: 5,
		}, nil)

		w := serve(r, newRequest(http.MethodPost, "/v1/reconciliation/run", "", manager))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["run_id"] != "run-1" || body["duration_ms"] != 250.0 || body["orders_updated"] != 3.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("a concurrent run is reported as skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewReconciliationHandler(uc)

		r := newRouter()
		r.POST("/v1/reconciliation/run", h.RunReconciliation)

		uc.EXPECT().RunOnce(gomock.Any()).Return(usecase.RunReport{Skipped: true}, nil)

		w := serve(r, newRequest(http.MethodPost, "/v1/reconciliation/run", "", manager))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if got := decodeBody(t, w); got["skipped"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := serve(r, newRequest(http.MethodGet, "/v1/ping", "", entities.Actor{}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
