package main

import (
	"context"
	"time"

	"github.com/fintrack/ledger-service/internal/api"
	apivalidator "github.com/fintrack/ledger-service/internal/api/validator"
	v1 "github.com/fintrack/ledger-service/internal/api/v1"
	"github.com/fintrack/ledger-service/internal/config"
	"github.com/fintrack/ledger-service/internal/database"
	apierrors "github.com/fintrack/ledger-service/internal/errors"
	"github.com/fintrack/ledger-service/internal/metrics"
	"github.com/fintrack/ledger-service/internal/repository"
	"github.com/fintrack/ledger-service/internal/service"
	"github.com/fintrack/ledger-service/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			newFiberApp,
			newValidator,
			apivalidator.NewXValidator,
			metrics.NewMetrics,
			database.NewConnection,
			session.NewResolver,
			repository.NewTransactionRepository,
			service.NewLedgerService,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apierrors.ErrorHandler(),
	})
}

func newValidator() *validator.Validate {
	return validator.New()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	resolver *session.Resolver, db *gorm.DB, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, resolver, logger)

	systemCollector := metrics.NewSystemCollector(m, logger)
	databaseCollector := metrics.NewDatabaseMetricsCollector(m, logger, db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			systemCollector.Start(15 * time.Second)
			databaseCollector.Start(15 * time.Second)
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			systemCollector.Stop()
			databaseCollector.Stop()
			return app.ShutdownWithContext(ctx)
		},
	})
}
