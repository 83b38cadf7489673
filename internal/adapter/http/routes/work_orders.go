package routes

import (
	"fleet_maintenance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing              = "/ping"
	PathWorkOrders        = "/work-orders"
	PathLaborEntries      = "/labor-entries"
	PathConsumableEntries = "/consumable-entries"
	PathOutsourceEntries  = "/outsource-entries"
	PathRequisitions      = "/requisitions"
	PathRequisitionLines  = "/requisition-lines"
	PathReconciliation    = "/reconciliation"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addWorkOrderRoutes(public, authenticated *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	reads := public.Group(PathWorkOrders)
	{
		reads.GET("/:id", h.GetWorkOrder)
		reads.GET("/:id/elapsed", h.GetElapsed)
	}

	writes := authenticated.Group(PathWorkOrders)
	{
		writes.POST("", h.CreateWorkOrder)
		writes.POST("/:id/start", h.StartWorkOrder)
		writes.POST("/:id/pause", h.PauseWorkOrder)
		writes.POST("/:id/resume", h.ResumeWorkOrder)
		writes.POST("/:id/complete", h.CompleteWorkOrder)
		writes.POST("/:id/cancel", h.CancelWorkOrder)
		writes.PATCH("/:id/status", h.ChangeStatus)
	}
}

func addCostRoutes(public, authenticated *gin.RouterGroup, h *handlers.CostHandler) {
	public.GET(PathWorkOrders+"/:id/costs", h.GetWorkOrderCosts)

	writes := authenticated.Group(PathWorkOrders)
	{
		writes.POST("/:id/labor-entries", h.CreateLaborEntry)
		writes.POST("/:id/consumable-entries", h.CreateConsumableEntry)
		writes.POST("/:id/outsource-entries", h.CreateOutsourceEntry)
	}

	authenticated.PATCH(PathLaborEntries+"/:id", h.UpdateLaborEntry)
	authenticated.DELETE(PathLaborEntries+"/:id", h.DeleteLaborEntry)
	authenticated.DELETE(PathConsumableEntries+"/:id", h.DeleteConsumableEntry)
	authenticated.DELETE(PathOutsourceEntries+"/:id", h.DeleteOutsourceEntry)
}

func addApprovalRoutes(public, authenticated *gin.RouterGroup, h *handlers.ApprovalHandler) {
	public.GET(PathWorkOrders+"/:id/approvals", h.ListApprovals)
	public.GET(PathRequisitions+"/:id", h.GetRequisition)

	writes := authenticated.Group(PathWorkOrders)
	{
		writes.POST("/:id/approval/approve", h.ApproveWorkOrder)
		writes.POST("/:id/approval/reject", h.RejectWorkOrder)
		writes.POST("/:id/approve-completion", h.ApproveCompletion)
		writes.POST("/:id/requisitions", h.CreateRequisition)
	}

	lines := authenticated.Group(PathRequisitionLines)
	{
		lines.POST("/:id/approve", h.ApproveLine)
		lines.POST("/:id/reject", h.RejectLine)
	}
}

func addReconciliationRoutes(authenticated *gin.RouterGroup, h *handlers.ReconciliationHandler) {
	authenticated.POST(PathReconciliation+"/run", h.RunReconciliation)
}
