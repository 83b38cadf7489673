package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet_maintenance/internal/adapter/http/handlers"
	"fleet_maintenance/internal/adapter/http/routes"
	"fleet_maintenance/internal/adapter/persistence/repository"
	"fleet_maintenance/internal/infrastructure/config"
	"fleet_maintenance/internal/infrastructure/database"
	"fleet_maintenance/internal/infrastructure/messaging"
	"fleet_maintenance/internal/infrastructure/scheduler"
	"fleet_maintenance/internal/usecase"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 15 * time.Second

// Repositories is the persistence bundle selected by STORAGE_DRIVER.
type Repositories struct {
	WorkOrders   interfaces.IWorkOrderRepository
	WorkOrderTx  interfaces.IWorkOrderTransactionRepository
	TimeEvents   interfaces.ITimeEventRepository
	Labor        interfaces.ILaborEntryRepository
	Consumables  interfaces.IConsumableEntryRepository
	Outsource    interfaces.IOutsourceEntryRepository
	Approvals    interfaces.IApprovalRepository
	Requisitions interfaces.IRequisitionRepository
}

// App holds the wired service: use cases, HTTP router and reconciliation scheduler.
type App struct {
	cfg config.Config
	log zerolog.Logger

	WorkOrders     usecase.IWorkOrderUseCase
	Costs          usecase.ICostUseCase
	Approvals      usecase.IApprovalUseCase
	Reconciliation usecase.IReconciliationUseCase

	Router    *gin.Engine
	scheduler *scheduler.Scheduler
	closers   []func() error
}

func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	repos, err := a.openRepositories(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	notifier, err := a.openNotifier()
	if err != nil {
		a.Close()
		return nil, err
	}

	costs := usecase.NewCostUseCase(repos.WorkOrders, repos.Labor, repos.Consumables, repos.Outsource, notifier, log)
	a.Costs = costs
	reconciliation := usecase.NewReconciliationUseCase(repos.WorkOrders, repos.TimeEvents, repos.Labor, costs, log)
	a.Reconciliation = reconciliation
	a.WorkOrders = usecase.NewWorkOrderUseCase(repos.WorkOrders, repos.WorkOrderTx, repos.TimeEvents, reconciliation, notifier, log)
	a.Approvals = usecase.NewApprovalUseCase(repos.WorkOrders, repos.WorkOrderTx, repos.Approvals, repos.Requisitions, costs, reconciliation, notifier, log)

	a.Router = routes.NewRouter(log, routes.Handlers{
		WorkOrders:     handlers.NewWorkOrderHandler(a.WorkOrders),
		Costs:          handlers.NewCostHandler(a.Costs),
		Approvals:      handlers.NewApprovalHandler(a.Approvals),
		Reconciliation: handlers.NewReconciliationHandler(a.Reconciliation),
	})
	a.scheduler = scheduler.New(reconciliation, cfg.Reconcile.Interval, cfg.Reconcile.Warmup, log)

	return a, nil
}

func (a *App) openRepositories(ctx context.Context) (Repositories, error) {
	switch a.cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(a.cfg.SQLitePath)
		if err != nil {
			return Repositories{}, fmt.Errorf("opening sqlite: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.log.Info().Str("path", a.cfg.SQLitePath).Msg("using sqlite storage")

		uow := database.NewSQLiteUnitOfWork(db)
		return Repositories{
			WorkOrders:   repository.NewWorkOrderSQLiteRepository(db),
			WorkOrderTx:  repository.NewWorkOrderTxSQLiteRepository(uow),
			TimeEvents:   repository.NewTimeEventSQLiteRepository(db),
			Labor:        repository.NewLaborEntrySQLiteRepository(db),
			Consumables:  repository.NewConsumableEntrySQLiteRepository(db),
			Outsource:    repository.NewOutsourceEntrySQLiteRepository(db),
			Approvals:    repository.NewApprovalSQLiteRepository(db),
			Requisitions: repository.NewRequisitionSQLiteRepository(db, uow),
		}, nil

	default:
		ddb, err := database.ConnectDynamoDB(ctx, a.cfg.DynamoDB)
		if err != nil {
			return Repositories{}, fmt.Errorf("connecting to dynamodb: %w", err)
		}
		a.log.Info().Str("region", a.cfg.DynamoDB.Region).Str("endpoint", a.cfg.DynamoDB.Endpoint).Msg("using dynamodb storage")

		return Repositories{
			WorkOrders:   repository.NewWorkOrderDynamoRepository(ddb),
			WorkOrderTx:  repository.NewWorkOrderTxDynamoRepository(ddb),
			TimeEvents:   repository.NewTimeEventDynamoRepository(ddb),
			Labor:        repository.NewLaborEntryDynamoRepository(ddb),
			Consumables:  repository.NewConsumableEntryDynamoRepository(ddb),
			Outsource:    repository.NewOutsourceEntryDynamoRepository(ddb),
			Approvals:    repository.NewApprovalDynamoRepository(ddb),
			Requisitions: repository.NewRequisitionDynamoRepository(ddb),
		}, nil
	}
}

func (a *App) openNotifier() (interfaces.INotificationPublisher, error) {
	if a.cfg.NATSURL == "" {
		a.log.Info().Msg("NATS_URL not set, notifications are only logged")
		return messaging.NewLogNotificationPublisher(a.log), nil
	}
	conn, err := messaging.ConnectNATS(a.cfg.NATSURL, a.log)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	a.closers = append(a.closers, func() error {
		return conn.Drain()
	})
	return messaging.NewNATSNotificationPublisher(conn, a.cfg.NATSSubjectPrefix, a.log), nil
}

// Serve runs the HTTP server and, when enabled, the reconciliation scheduler until ctx is
// cancelled, then shuts both down.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.cfg.Reconcile.Enabled {
		a.scheduler.Start(ctx)
		defer a.scheduler.Stop()
	} else {
		a.log.Info().Msg("reconciliation scheduler disabled")
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases storage and broker connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
