package repository

import (
	"context"
	"errors"

	"github.com/fintrack/ledger-service/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
var ErrTransactionDuplicate = errors.New("TRANSACTION_DUPLICATE")

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListBySessionID(ctx context.Context, sessionID string) ([]model.Transaction, error)
	GetByID(ctx context.Context, id, sessionID string) (*model.Transaction, error)
	SumAmountBySessionID(ctx context.Context, sessionID string) (int64, error)
}

type transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transaction{db: db}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	err := t.db.WithContext(ctx).Create(tx).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTransactionDuplicate
	}

	return err
}

func (t *transaction) ListBySessionID(ctx context.Context, sessionID string) ([]model.Transaction, error) {
	transactions := make([]model.Transaction, 0)

	err := t.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (t *transaction) GetByID(ctx context.Context, id, sessionID string) (*model.Transaction, error) {
	var tx model.Transaction

	err := t.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *transaction) SumAmountBySessionID(ctx context.Context, sessionID string) (int64, error) {
	var total int64

	err := t.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
