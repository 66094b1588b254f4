package api

import (
	v1 "github.com/fintrack/ledger-service/internal/api/v1"
	"github.com/fintrack/ledger-service/internal/api/v1/middleware"
	"github.com/fintrack/ledger-service/internal/metrics"
	"github.com/fintrack/ledger-service/internal/session"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics,
	resolver *session.Resolver, logger *zap.Logger) {
	app.Use(metrics.HTTPMetricsMiddleware(m))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	requireSession := middleware.RequireSession(resolver, logger)

	// "/summary" must be registered ahead of the "/:id" wildcard.
	app.Post("/", handler.CreateTransaction)
	app.Get("/", requireSession, handler.ListTransactions)
	app.Get("/summary", requireSession, handler.Summary)
	app.Get("/:id", requireSession, handler.GetTransaction)
}
