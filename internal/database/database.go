package database

import (
	"github.com/fintrack/ledger-service/internal/config"
	"github.com/fintrack/ledger-service/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(cfg.Database, logger)
}
