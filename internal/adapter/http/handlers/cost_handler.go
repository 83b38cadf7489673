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

// CostHandler handles cost entries and the planned-vs-actual summary of a work order.
type CostHandler struct {
	usecase usecase.ICostUseCase
}

func NewCostHandler(uc usecase.ICostUseCase) *CostHandler {
	return &CostHandler{usecase: uc}
}

// GetWorkOrderCosts godoc
// @Summary      Cost summary and entries of a work order
// @Tags         costs
// @Produce      json
// @Param        id   path      string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderCostsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/costs [get]
func (h *CostHandler) GetWorkOrderCosts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	costs, err := h.usecase.GetWorkOrderCosts(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapCostError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderCosts(costs))
}

// CreateLaborEntry godoc
// @Summary      Record labor on a work order
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                     true  "Caller id"
// @Param        X-User-Role  header  string                     true  "Caller role"
// @Param        id           path    string                     true  "Work order id"
// @Param        body         body    request.LaborEntryRequest  true  "Labor entry"
// @Success      201  {object}  response.LaborEntryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/labor-entries [post]
func (h *CostHandler) CreateLaborEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.LaborEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	entry, summary, err := h.usecase.CreateLaborEntry(c.Request.Context(), payload.ToInput(actor, id))
	if err != nil {
		writeError(c, mapCostError(err))
		return
	}
	c.JSON(http.StatusCreated, response.LaborEntryResponse{Entry: entry, CostSummary: summary})
}

// UpdateLaborEntry godoc
// @Summary      Edit the overtime factor or description of a labor entry
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                           true  "Caller id"
// @Param        X-User-Role  header  string                           true  "Caller role"
// @Param        id           path    string                           true  "Labor entry id"
// @Param        body         body    request.UpdateLaborEntryRequest  true  "Fields to change"
// @Success      200  {object}  response.LaborEntryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /labor-entries/{id} [patch]
func (h *CostHandler) UpdateLaborEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.UpdateLaborEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	entry, summary, err := h.usecase.UpdateLaborEntry(c.Request.Context(), payload.ToPatch(actor, id))
	if err != nil {
		writeError(c, mapCostError(err))
		return
	}
	c.JSON(http.StatusOK, response.LaborEntryResponse{Entry: entry, CostSummary: summary})
}

// DeleteLaborEntry godoc
// @Summary      Delete a labor entry
// @Tags         costs
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Param        id           path    string  true  "Labor entry id"
// @Success      200  {object}  response.CostSummaryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /labor-entries/{id} [delete]
func (h *CostHandler) DeleteLaborEntry(c *gin.Context) {
	h.deleteEntry(c, h.usecase.DeleteLaborEntry)
}

// CreateConsumableEntry godoc
// @Summary      Record consumable usage
// @Description  Foremen record planned usage; every other role records actual usage.
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                          true  "Caller id"
// @Param        X-User-Role  header  string                          true  "Caller role"
// @Param        id           path    string                          true  "Work order id"
// @Param        body         body    request.ConsumableEntryRequest  true  "Consumable entry"
// @Success      201  {object}  response.ConsumableEntryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/consumable-entries [post]
func (h *CostHandler) CreateConsumableEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.ConsumableEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	entry, summary, err := h.usecase.CreateConsumableEntry(c.Request.Context(), payload.ToInput(actor, id))
	if err != nil {
		writeError(c, mapCostError(err))
		return
	}
	c.JSON(http.StatusCreated, response.ConsumableEntryResponse{Entry: entry, CostSummary: summary})
}

// DeleteConsumableEntry godoc
// @Summary      Delete a consumable entry
// @Tags         costs
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Param        id           path    string  true  "Consumable entry id"
// @Success      200  {object}  response.CostSummaryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /consumable-entries/{id} [delete]
func (h *CostHandler) DeleteConsumableEntry(c *gin.Context) {
	h.deleteEntry(c, h.usecase.DeleteConsumableEntry)
}

// CreateOutsourceEntry godoc
// @Summary      Record outsourced work
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                         true  "Caller id"
// @Param        X-User-Role  header  string                         true  "Caller role"
// @Param        id           path    string                         true  "Work order id"
// @Param        body         body    request.OutsourceEntryRequest  true  "Outsource entry"
// @Success      201  {object}  response.OutsourceEntryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/outsource-entries [post]
func (h *CostHandler) CreateOutsourceEntry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.OutsourceEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	entry, summary, err := h.usecase.CreateOutsourceEntry(c.Request.Context(), payload.ToInput(actor, id))
	if err != nil {
		writeError(c, mapCostError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OutsourceEntryResponse{Entry: entry, CostSummary: summary})
}

// DeleteOutsourceEntry godoc
// @Summary      Delete an outsource entry
// @Tags         costs
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Param        id           path    string  true  "Outsource entry id"
// @Success      200  {object}  response.CostSummaryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /outsource-entries/{id} [delete]
func (h *CostHandler) DeleteOutsourceEntry(c *gin.Context) {
	h.deleteEntry(c, h.usecase.DeleteOutsourceEntry)
}

func (h *CostHandler) deleteEntry(
	c *gin.Context,
	remove func(ctx context.Context, actor entities.Actor, entryID string) (entities.CostSummary, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	summary, err := remove(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, mapCostError(err))
		return
	}
	c.JSON(http.StatusOK, response.CostSummaryResponse{CostSummary: summary})
}

func mapCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return mapUseCaseError(err, "WORK_ORDER_NOT_FOUND")
	case errors.Is(err, usecase.ErrLaborEntryNotFound), errors.Is(err, usecase.ErrConsumableEntryNotFound),
		errors.Is(err, usecase.ErrOutsourceEntryNotFound):
		return mapUseCaseError(err, "ENTRY_NOT_FOUND")
	case errors.Is(err, usecase.ErrWorkOrderCancelled):
		return mapUseCaseError(err, "WORK_ORDER_CANCELLED")
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return mapUseCaseError(err, "ROLE_NOT_ALLOWED")
	case errors.Is(err, usecase.ErrValidation):
		return mapUseCaseError(err, "INVALID_COST_ENTRY")
	default:
		return mapUseCaseError(err, "")
	}
}
