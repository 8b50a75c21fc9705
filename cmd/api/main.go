package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/david8219501/leader-app-server-08-09-25/internal/api/http"
	"github.com/david8219501/leader-app-server-08-09-25/internal/api/http/handlers"
	"github.com/david8219501/leader-app-server-08-09-25/internal/auth"
	"github.com/david8219501/leader-app-server-08-09-25/internal/config"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
	"github.com/david8219501/leader-app-server-08-09-25/internal/observability"
	"github.com/david8219501/leader-app-server-08-09-25/internal/persistence"
	"github.com/david8219501/leader-app-server-08-09-25/internal/repository"
	"github.com/david8219501/leader-app-server-08-09-25/internal/service"
	"github.com/david8219501/leader-app-server-08-09-25/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.InitSchema {
		if err := persistence.InitSchema(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to init schema", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	managerRepo := repository.NewManagerRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	accountService := service.NewAccountService(cfg.Auth, managerRepo, dispatcher)
	rosterService := service.NewRosterService(employeeRepo, dispatcher)
	scheduleService := service.NewScheduleService(shiftRepo, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(accountService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Manager:        handlers.NewManagerHandler(accountService),
		Employees:      handlers.NewEmployeesHandler(rosterService),
		Shifts:         handlers.NewShiftsHandler(scheduleService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
