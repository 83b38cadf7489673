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

// WorkOrderHandler exposes the work order lifecycle and the live timer.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder godoc
// @Summary      Create a work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                          true  "Caller id"
// @Param        X-User-Role  header  string                          true  "Caller role"
// @Param        body         body    request.CreateWorkOrderRequest  true  "Work order"
// @Success      201  {object}  response.WorkOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), payload.ToInput(actor))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

// GetWorkOrder godoc
// @Summary      Get a work order
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wo, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// GetElapsed godoc
// @Summary      Live elapsed active time
// @Description  Replays the pause/resume log up to now. Nothing is persisted.
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  response.ElapsedResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/elapsed [get]
func (h *WorkOrderHandler) GetElapsed(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	elapsed, err := h.usecase.GetElapsed(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromElapsed(id, elapsed))
}

// StartWorkOrder godoc
// @Summary      Start an approved work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                         true   "Caller id"
// @Param        X-User-Role  header  string                         true   "Caller role"
// @Param        id           path    string                         true   "Work order id"
// @Param        body         body    request.StartWorkOrderRequest  false  "Auto-tracked assignees"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/start [post]
func (h *WorkOrderHandler) StartWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.StartWorkOrderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	wo, err := h.usecase.Start(c.Request.Context(), payload.ToInput(actor, id))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// PauseWorkOrder godoc
// @Summary      Pause the work order timer
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                         true   "Caller id"
// @Param        X-User-Role  header  string                         true   "Caller role"
// @Param        id           path    string                         true   "Work order id"
// @Param        body         body    request.PauseWorkOrderRequest  false  "Pause reason"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/pause [post]
func (h *WorkOrderHandler) PauseWorkOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.PauseWorkOrderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	wo, err := h.usecase.Pause(c.Request.Context(), actor, id, payload.Reason)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// ResumeWorkOrder godoc
// @Summary      Resume the work order timer
// @Tags         work-orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Param        id           path    string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/resume [post]
func (h *WorkOrderHandler) ResumeWorkOrder(c *gin.Context) {
	h.transition(c, h.usecase.Resume)
}

// CompleteWorkOrder godoc
// @Summary      Report a work order as complete
// @Description  Stops the timer and leaves the completion awaiting manager approval.
// @Tags         work-orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Param        id           path    string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/complete [post]
func (h *WorkOrderHandler) CompleteWorkOrder(c *gin.Context) {
	h.transition(c, h.usecase.ReportCompletion)
}

// CancelWorkOrder godoc
// @Summary      Cancel a work order
// @Tags         work-orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Param        id           path    string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/cancel [post]
func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// ChangeStatus godoc
// @Summary      Move a started work order between in_progress and the blocking statuses
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                       true  "Caller id"
// @Param        X-User-Role  header  string                       true  "Caller role"
// @Param        id           path    string                       true  "Work order id"
// @Param        body         body    request.ChangeStatusRequest  true  "Target status"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/status [patch]
func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	wo, err := h.usecase.ChangeStatus(c.Request.Context(), actor, id, payload.ResolveStatus())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, actor entities.Actor, id string) (entities.WorkOrder, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	wo, err := apply(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return mapUseCaseError(err, "WORK_ORDER_NOT_FOUND")
	case errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, usecase.ErrWorkOrderClosed),
		errors.Is(err, usecase.ErrWorkOrderCancelled):
		return mapUseCaseError(err, "INVALID_STATUS_TRANSITION")
	case errors.Is(err, usecase.ErrWorkOrderNotApproved):
		return mapUseCaseError(err, "WORK_ORDER_NOT_APPROVED")
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return mapUseCaseError(err, "ROLE_NOT_ALLOWED")
	default:
		return mapUseCaseError(err, "")
	}
}
