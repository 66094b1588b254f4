package metrics

import (
	"database/sql"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DatabaseMetricsCollector periodically samples the gorm connection
// pool statistics.
type DatabaseMetricsCollector struct {
	metrics *Metrics
	logger  *zap.Logger
	sqlDB   *sql.DB
	ticker  *time.Ticker
	stopCh  chan struct{}
}

func NewDatabaseMetricsCollector(metrics *Metrics, logger *zap.Logger, db *gorm.DB) *DatabaseMetricsCollector {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get sql.DB from gorm.DB", zap.Error(err))
		metrics.RecordDBConnectionError()
	}

	return &DatabaseMetricsCollector{
		metrics: metrics,
		logger:  logger,
		sqlDB:   sqlDB,
		stopCh:  make(chan struct{}),
	}
}

func (dmc *DatabaseMetricsCollector) Start(interval time.Duration) {
	if dmc.sqlDB == nil {
		dmc.logger.Warn("Cannot start database metrics collector: sqlDB is nil")
		return
	}

	dmc.ticker = time.NewTicker(interval)
	go dmc.collectLoop()
	dmc.logger.Info("Database metrics collector started", zap.Duration("interval", interval))
}

func (dmc *DatabaseMetricsCollector) Stop() {
	if dmc.ticker != nil {
		dmc.ticker.Stop()
	}
	close(dmc.stopCh)
	dmc.logger.Info("Database metrics collector stopped")
}

func (dmc *DatabaseMetricsCollector) collectLoop() {
	dmc.collect()

	for {
		select {
		case <-dmc.ticker.C:
			dmc.collect()
		case <-dmc.stopCh:
			return
		}
	}
}

func (dmc *DatabaseMetricsCollector) collect() {
	stats := dmc.sqlDB.Stats()
	dmc.metrics.UpdateDBPoolStats(stats.InUse, stats.Idle)
}
