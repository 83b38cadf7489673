package routes

import (
	_ "fleet_maintenance/docs" // swagger spec
	"fleet_maintenance/internal/adapter/http/handlers"
	"fleet_maintenance/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const BasePath = "/v1"

// Handlers groups the HTTP handlers mounted under BasePath.
type Handlers struct {
	WorkOrders     *handlers.WorkOrderHandler
	Costs          *handlers.CostHandler
	Approvals      *handlers.ApprovalHandler
	Reconciliation *handlers.ReconciliationHandler
}

// NewRouter builds the gin engine. Reads are open; every mutation requires the caller
// identity headers.
func NewRouter(log zerolog.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(BasePath)
	authenticated := v1.Group("", middleware.Identity())

	addPingRoutes(v1)
	addWorkOrderRoutes(v1, authenticated, h.WorkOrders)
	addCostRoutes(v1, authenticated, h.Costs)
	addApprovalRoutes(v1, authenticated, h.Approvals)
	addReconciliationRoutes(authenticated, h.Reconciliation)

	return router
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
}
