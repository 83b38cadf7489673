package handlers

import (
	"net/http"

	"fleet_maintenance/internal/adapter/http/dto/response"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
	"fleet_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

var errReconcileNotAllowed = pkg.NewDomainErrorSimple("ROLE_NOT_ALLOWED", "only managers and admins can trigger reconciliation", http.StatusForbidden)

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// RunReconciliation godoc
// @Summary      Run one reconciliation pass now
// @Description  Returns 202 with the run report. When a pass is already running the report is marked skipped.
// @Tags         reconciliation
// @Produce      json
// @Param        X-User-ID    header  string  true  "Caller id"
// @Param        X-User-Role  header  string  true  "Caller role"
// @Success      202  {object}  response.RunReportResponse
// @Failure      403  {object}  pkg.HTTPError
// @Router       /reconciliation/run [post]
func (h *ReconciliationHandler) RunReconciliation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !entities.CanDecideWorkOrders(actor.Role) {
		writeError(c, errReconcileNotAllowed)
		return
	}

	report, err := h.usecase.RunOnce(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err, ""))
		return
	}
	c.JSON(http.StatusAccepted, response.FromRunReport(report))
}
