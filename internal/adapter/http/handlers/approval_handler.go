package handlers

import (
	"context"
	"errors"
	"net/http"

	"fleet_maintenance/internal/adapter/http/dto/request"
	"fleet_maintenance/internal/adapter/http/dto/response"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
	"fleet_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles work order decisions, completion sign-off and part requisitions.
type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// ApproveWorkOrder godoc
// @Summary      Approve a pending work order
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                   true   "Caller id"
// @Param        X-User-Role  header  string                   true   "Caller role"
// @Param        id           path    string                   true   "Work order id"
// @Param        body         body    request.DecisionRequest  false  "Decision notes"
// @Success      200  {object}  response.DecisionResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/approval/approve [post]
func (h *ApprovalHandler) ApproveWorkOrder(c *gin.Context) {
	h.decideWorkOrder(c, h.usecase.ApproveWorkOrder)
}

// RejectWorkOrder godoc
// @Summary      Reject a pending work order
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                   true   "Caller id"
// @Param        X-User-Role  header  string                   true   "Caller role"
// @Param        id           path    string                   true   "Work order id"
// @Param        body         body    request.DecisionRequest  false  "Decision notes"
// @Success      200  {object}  response.DecisionResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/approval/reject [post]
func (h *ApprovalHandler) RejectWorkOrder(c *gin.Context) {
	h.decideWorkOrder(c, h.usecase.RejectWorkOrder)
}

// ApproveCompletion godoc
// @Summary      Approve a reported completion
// @Description  Moves the work order to completed.
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                             true   "Caller id"
// @Param        X-User-Role  header  string                             true   "Caller role"
// @Param        id           path    string                             true   "Work order id"
// @Param        body         body    request.CompletionApprovalRequest  false  "Completion notes"
// @Success      200  {object}  response.DecisionResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/approve-completion [post]
func (h *ApprovalHandler) ApproveCompletion(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.CompletionApprovalRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	wo, approval, err := h.usecase.ApproveCompletion(c.Request.Context(), actor, id, payload.Notes)
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(wo, approval))
}

// ListApprovals godoc
// @Summary      Approval history of a work order
// @Tags         approvals
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  response.ApprovalListResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/approvals [get]
func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListApprovals(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApprovals(list))
}

// CreateRequisition godoc
// @Summary      Request parts for a work order
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                            true  "Caller id"
// @Param        X-User-Role  header  string                            true  "Caller role"
// @Param        id           path    string                            true  "Work order id"
// @Param        body         body    request.CreateRequisitionRequest  true  "Requisition"
// @Success      201  {object}  entities.Requisition
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/requisitions [post]
func (h *ApprovalHandler) CreateRequisition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	req, err := h.usecase.CreateRequisition(c.Request.Context(), payload.ToInput(actor, id))
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequisition(req))
}

// GetRequisition godoc
// @Summary      Get a requisition with its lines
// @Tags         requisitions
// @Produce      json
// @Param        id   path      string  true  "Requisition id"
// @Success      200  {object}  entities.Requisition
// @Failure      404  {object}  pkg.HTTPError
// @Router       /requisitions/{id} [get]
func (h *ApprovalHandler) GetRequisition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := h.usecase.GetRequisition(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequisition(req))
}

// ApproveLine godoc
// @Summary      Approve one review track of a requisition line
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                       true   "Caller id"
// @Param        X-User-Role  header  string                       true   "Caller role"
// @Param        id           path    string                       true   "Requisition line id"
// @Param        body         body    request.LineDecisionRequest  false  "Track and approved quantity"
// @Success      200  {object}  entities.Requisition
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /requisition-lines/{id}/approve [post]
func (h *ApprovalHandler) ApproveLine(c *gin.Context) {
	h.decideLine(c, h.usecase.ApproveLine)
}

// RejectLine godoc
// @Summary      Reject one review track of a requisition line
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                       true  "Caller id"
// @Param        X-User-Role  header  string                       true  "Caller role"
// @Param        id           path    string                       true  "Requisition line id"
// @Param        body         body    request.LineDecisionRequest  true  "Track and remarks"
// @Success      200  {object}  entities.Requisition
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /requisition-lines/{id}/reject [post]
func (h *ApprovalHandler) RejectLine(c *gin.Context) {
	h.decideLine(c, h.usecase.RejectLine)
}

func (h *ApprovalHandler) decideWorkOrder(
	c *gin.Context,
	decide func(ctx context.Context, actor entities.Actor, workOrderID, notes string) (entities.WorkOrder, entities.Approval, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.DecisionRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	wo, approval, err := decide(c.Request.Context(), actor, id, payload.Notes)
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(wo, approval))
}

func (h *ApprovalHandler) decideLine(
	c *gin.Context,
	decide func(ctx context.Context, in usecase.LineDecisionInput) (entities.Requisition, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.LineDecisionRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	req, err := decide(c.Request.Context(), payload.ToInput(actor, id))
	if err != nil {
		writeError(c, mapApprovalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequisition(req))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return mapUseCaseError(err, "WORK_ORDER_NOT_FOUND")
	case errors.Is(err, usecase.ErrRequisitionNotFound), errors.Is(err, usecase.ErrRequisitionLineNotFound):
		return mapUseCaseError(err, "REQUISITION_NOT_FOUND")
	case errors.Is(err, usecase.ErrRemarksRequired):
		return mapUseCaseError(err, "REMARKS_REQUIRED")
	case errors.Is(err, usecase.ErrNoPendingApproval), errors.Is(err, usecase.ErrApprovalAlreadyDecided),
		errors.Is(err, usecase.ErrCompletionNotPending), errors.Is(err, usecase.ErrLineAlreadyDecided):
		return mapUseCaseError(err, "ALREADY_DECIDED")
	case errors.Is(err, usecase.ErrForemanApprovalRequired):
		return mapUseCaseError(err, "FOREMAN_APPROVAL_REQUIRED")
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return mapUseCaseError(err, "ROLE_NOT_ALLOWED")
	default:
		return mapUseCaseError(err, "")
	}
}
