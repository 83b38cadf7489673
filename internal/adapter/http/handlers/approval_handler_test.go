package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fleet_maintenance/internal/adapter/http/handlers/mocks"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestApprovalHandler_DecideWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/work-orders/:id/approval/approve", h.ApproveWorkOrder)

		now := time.Now().UTC()
		uc.EXPECT().ApproveWorkOrder(gomock.Any(), manager, "wo-1", "go ahead").Return(
			entities.WorkOrder{ID: "wo-1", ApprovalStatus: entities.ApprovalStatusApproved},
			entities.Approval{ID: "ap-1", Status: entities.ApprovalStatusApproved, ApproverID: "mgr-1", DecidedAt: &now},
			nil,
		)

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/approval/approve", `{"notes":"go ahead"}`, manager))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		wo, _ := body["work_order"].(map[string]any)
		approval, _ := body["approval"].(map[string]any)
		if wo["approval_status"] != "approved" || approval["approver_id"] != "mgr-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject by a foreman is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/work-orders/:id/approval/reject", h.RejectWorkOrder)

		uc.EXPECT().RejectWorkOrder(gomock.Any(), foreman, "wo-1", "").
			Return(entities.WorkOrder{}, entities.Approval{}, usecase.ErrRoleNotAllowed)

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/approval/reject", "", foreman))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if got := decodeBody(t, w); got["code"] != "ROLE_NOT_ALLOWED" {
			t.Fatalf("unexpected code: %s", w.Body.String())
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/work-orders/:id/approval/approve", h.ApproveWorkOrder)

		uc.EXPECT().ApproveWorkOrder(gomock.Any(), manager, "wo-1", "").
			Return(entities.WorkOrder{}, entities.Approval{}, usecase.ErrApprovalAlreadyDecided)

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/approval/approve", "", manager))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestApprovalHandler_ApproveCompletion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("notes are optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/work-orders/:id/approve-completion", h.ApproveCompletion)

		uc.EXPECT().ApproveCompletion(gomock.Any(), manager, "wo-1", nil).Return(
			entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusCompleted},
			entities.Approval{ID: "ap-2", ReferenceType: entities.ApprovalReferenceWorkCompletion},
			nil,
		)

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/approve-completion", "", manager))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not awaiting approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/work-orders/:id/approve-completion", h.ApproveCompletion)

		uc.EXPECT().ApproveCompletion(gomock.Any(), manager, "wo-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, notes *string) (entities.WorkOrder, entities.Approval, error) {
				if notes == nil || *notes != "checked" {
					t.Fatalf("expected notes to be forwarded, got %v", notes)
				}
				return entities.WorkOrder{}, entities.Approval{}, usecase.ErrCompletionNotPending
			})

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/approve-completion", `{"notes":"checked"}`, manager))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestApprovalHandler_ListApprovals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIApprovalUseCase(ctrl)
	h := NewApprovalHandler(uc)

	r := gin.New()
	r.GET("/v1/work-orders/:id/approvals", h.ListApprovals)

	uc.EXPECT().ListApprovals(gomock.Any(), "wo-1").Return(nil, nil)

	w := serve(r, newRequest(http.MethodGet, "/v1/work-orders/wo-1/approvals", "", entities.Actor{}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"approvals":[]}` {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestApprovalHandler_Requisitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty lines are rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewApprovalHandler(mocks.NewMockIApprovalUseCase(ctrl))

		r := newRouter()
		r.POST("/v1/work-orders/:id/requisitions", h.CreateRequisition)

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/requisitions", `{"lines":[]}`, foreman))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/work-orders/:id/requisitions", h.CreateRequisition)

		uc.EXPECT().CreateRequisition(gomock.Any(), usecase.CreateRequisitionInput{
			Actor:       foreman,
			WorkOrderID: "wo-1",
			Lines:       []usecase.RequisitionLineInput{{PartID: "part-9", Quantity: 4}},
		}).Return(entities.Requisition{ID: "req-1", Status: entities.RequisitionStatusPending}, nil)

		w := serve(r, newRequest(http.MethodPost, "/v1/work-orders/wo-1/requisitions",
			`{"lines":[{"part_id":"part-9","quantity":4}]}`, foreman))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if got := decodeBody(t, w); got["id"] != "req-1" || got["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("get missing requisition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.GET("/v1/requisitions/:id", h.GetRequisition)

		uc.EXPECT().GetRequisition(gomock.Any(), "req-404").Return(entities.Requisition{}, usecase.ErrRequisitionNotFound)

		w := serve(r, newRequest(http.MethodGet, "/v1/requisitions/req-404", "", entities.Actor{}))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestApprovalHandler_DecideLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve with quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/requisition-lines/:id/approve", h.ApproveLine)

		qty := 2.0
		uc.EXPECT().ApproveLine(gomock.Any(), usecase.LineDecisionInput{
			Actor:    foreman,
			LineID:   "line-1",
			Quantity: &qty,
		}).Return(entities.Requisition{ID: "req-1", Status: entities.RequisitionStatusApproved}, nil)

		w := serve(r, newRequest(http.MethodPost, "/v1/requisition-lines/line-1/approve", `{"quantity":2}`, foreman))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("reject without remarks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/requisition-lines/:id/reject", h.RejectLine)

		uc.EXPECT().RejectLine(gomock.Any(), gomock.Any()).Return(entities.Requisition{}, usecase.ErrRemarksRequired)

		w := serve(r, newRequest(http.MethodPost, "/v1/requisition-lines/line-1/reject", `{"remarks":"   "}`, foreman))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeBody(t, w); got["code"] != "REMARKS_REQUIRED" {
			t.Fatalf("unexpected code: %s", w.Body.String())
		}
	})

	t.Run("line already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := newRouter()
		r.POST("/v1/requisition-lines/:id/approve", h.ApproveLine)

		storekeeper := entities.Actor{ID: "sk-1", Role: entities.RoleStorekeeper}
		uc.EXPECT().ApproveLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.LineDecisionInput) (entities.Requisition, error) {
				if in.Track != entities.ReviewTrackStorekeeper || in.Actor != storekeeper {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Requisition{}, usecase.ErrLineAlreadyDecided
			})

		w := serve(r, newRequest(http.MethodPost, "/v1/requisition-lines/line-1/approve", `{"track":"storekeeper"}`, storekeeper))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
