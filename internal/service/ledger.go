package service

import (
	"context"
	"errors"

	"github.com/fintrack/ledger-service/internal/constants"
	"github.com/fintrack/ledger-service/internal/model"
	"github.com/fintrack/ledger-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LedgerService interface {
	CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (CreateTransactionResult, error)
	ListTransactions(ctx context.Context, sessionID string) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id, sessionID string) (*model.Transaction, error)
	Summary(ctx context.Context, sessionID string) (SummaryResult, error)
}

type ledger struct {
	transactionRepo repository.TransactionRepository
	logger          *zap.Logger
}

func NewLedgerService(transactionRepo repository.TransactionRepository, logger *zap.Logger) LedgerService {
	return &ledger{transactionRepo: transactionRepo, logger: logger}
}

func (l *ledger) CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (CreateTransactionResult, error) {
	amount := cmd.Amount
	if cmd.Type == TransactionTypeDebit {
		amount = -amount
	}

	tx := model.Transaction{
		ID:        uuid.NewString(),
		Title:     cmd.Title,
		Amount:    amount,
		SessionID: cmd.SessionID,
	}

	err := l.transactionRepo.Create(ctx, &tx)
	if err != nil && errors.Is(err, repository.ErrTransactionDuplicate) {
		l.logger.Warn("Duplicate transaction id generated",
			zap.String("transactionID", tx.ID),
			zap.String("sessionID", cmd.SessionID))
		return CreateTransactionResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err != nil {
		l.logger.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("sessionID", cmd.SessionID))
		return CreateTransactionResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return CreateTransactionResult{TransactionID: tx.ID}, nil
}

func (l *ledger) ListTransactions(ctx context.Context, sessionID string) ([]model.Transaction, error) {
	transactions, err := l.transactionRepo.ListBySessionID(ctx, sessionID)
	if err != nil {
		l.logger.Error("Failed to list transactions",
			zap.Error(err),
			zap.String("sessionID", sessionID))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return transactions, nil
}

func (l *ledger) GetTransaction(ctx context.Context, id, sessionID string) (*model.Transaction, error) {
	tx, err := l.transactionRepo.GetByID(ctx, id, sessionID)
	if err == nil {
		return tx, nil
	}

	// A nonexistent id and an id owned by another session are reported
	// identically so that existence never leaks across sessions.
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return nil, NewServiceError(constants.ErrCodeTransactionNotFound, err)
	}

	l.logger.Error("Failed to get transaction",
		zap.Error(err),
		zap.String("transactionID", id),
		zap.String("sessionID", sessionID))
	return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
}

func (l *ledger) Summary(ctx context.Context, sessionID string) (SummaryResult, error) {
	total, err := l.transactionRepo.SumAmountBySessionID(ctx, sessionID)
	if err != nil {
		l.logger.Error("Failed to compute summary",
			zap.Error(err),
			zap.String("sessionID", sessionID))
		return SummaryResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return SummaryResult{Total: total}, nil
}
