package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fintrack/ledger-service/internal/constants"
	"github.com/fintrack/ledger-service/internal/mocks"
	"github.com/fintrack/ledger-service/internal/model"
	"github.com/fintrack/ledger-service/internal/repository"
	"github.com/fintrack/ledger-service/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLedger_CreateTransaction(t *testing.T) {
	logger := zap.NewNop()

	t.Run("stores credit amount with positive sign", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		cmd := service.CreateTransactionCommand{
			Title:     "salary",
			Amount:    100,
			Type:      service.TransactionTypeCredit,
			SessionID: "session-1",
		}

		mockRepo.On("Create", context.Background(),
			mock.MatchedBy(func(tx *model.Transaction) bool {
				_, err := uuid.Parse(tx.ID)
				return err == nil &&
					tx.Title == "salary" &&
					tx.Amount == 100 &&
					tx.SessionID == "session-1"
			})).Return(nil)

		result, err := svc.CreateTransaction(context.Background(), cmd)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.TransactionID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("stores debit amount negated", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		cmd := service.CreateTransactionCommand{
			Title:     "groceries",
			Amount:    50,
			Type:      service.TransactionTypeDebit,
			SessionID: "session-1",
		}

		mockRepo.On("Create", context.Background(),
			mock.MatchedBy(func(tx *model.Transaction) bool {
				return tx.Amount == -50
			})).Return(nil)

		_, err := svc.CreateTransaction(context.Background(), cmd)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("generates a distinct id per transaction", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		seen := make(map[string]bool)
		mockRepo.On("Create", context.Background(),
			mock.MatchedBy(func(tx *model.Transaction) bool {
				if seen[tx.ID] {
					return false
				}
				seen[tx.ID] = true
				return true
			})).Return(nil).Twice()

		cmd := service.CreateTransactionCommand{Title: "t", Amount: 1, Type: service.TransactionTypeCredit, SessionID: "s"}

		_, err := svc.CreateTransaction(context.Background(), cmd)
		assert.NoError(t, err)
		_, err = svc.CreateTransaction(context.Background(), cmd)
		assert.NoError(t, err)

		mockRepo.AssertExpectations(t)
	})

	t.Run("wraps repository failure as operation failed", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Transaction")).Return(errors.New("connection reset"))

		result, err := svc.CreateTransaction(context.Background(), service.CreateTransactionCommand{
			Title: "t", Amount: 1, Type: service.TransactionTypeCredit, SessionID: "s",
		})

		assert.Error(t, err)
		assert.Equal(t, service.CreateTransactionResult{}, result)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
	})

	t.Run("wraps duplicate id as operation failed", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Transaction")).Return(repository.ErrTransactionDuplicate)

		_, err := svc.CreateTransaction(context.Background(), service.CreateTransactionCommand{
			Title: "t", Amount: 1, Type: service.TransactionTypeCredit, SessionID: "s",
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
		assert.True(t, errors.Is(err, repository.ErrTransactionDuplicate))
	})
}

func TestLedger_ListTransactions(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns session transactions", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		expected := []model.Transaction{
			{ID: "id-1", Title: "salary", Amount: 100, SessionID: "session-1"},
			{ID: "id-2", Title: "groceries", Amount: -50, SessionID: "session-1"},
		}

		mockRepo.On("ListBySessionID", context.Background(), "session-1").Return(expected, nil)

		transactions, err := svc.ListTransactions(context.Background(), "session-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, transactions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("returns empty slice for a fresh session", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("ListBySessionID", context.Background(), "session-2").
			Return([]model.Transaction{}, nil)

		transactions, err := svc.ListTransactions(context.Background(), "session-2")

		assert.NoError(t, err)
		assert.Empty(t, transactions)
		assert.NotNil(t, transactions)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("ListBySessionID", context.Background(), "session-1").
			Return(nil, errors.New("connection reset"))

		_, err := svc.ListTransactions(context.Background(), "session-1")

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
	})
}

func TestLedger_GetTransaction(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns transaction scoped to the session", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		expected := &model.Transaction{ID: "id-1", Title: "salary", Amount: 100, SessionID: "session-1"}
		mockRepo.On("GetByID", context.Background(), "id-1", "session-1").Return(expected, nil)

		tx, err := svc.GetTransaction(context.Background(), "id-1", "session-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, tx)
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("GetByID", context.Background(), "id-1", "session-2").
			Return(nil, repository.ErrTransactionNotFound)

		tx, err := svc.GetTransaction(context.Background(), "id-1", "session-2")

		assert.Nil(t, tx)
		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeTransactionNotFound, serviceErr.Code)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("GetByID", context.Background(), "id-1", "session-1").
			Return(nil, errors.New("connection reset"))

		_, err := svc.GetTransaction(context.Background(), "id-1", "session-1")

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
	})
}

func TestLedger_Summary(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns net balance", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("SumAmountBySessionID", context.Background(), "session-1").Return(int64(50), nil)

		summary, err := svc.Summary(context.Background(), "session-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(50), summary.Total)
	})

	t.Run("returns zero total for a session without transactions", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("SumAmountBySessionID", context.Background(), "session-2").Return(int64(0), nil)

		summary, err := svc.Summary(context.Background(), "session-2")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.Total)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		mockRepo := &mocks.TransactionRepository{}
		svc := service.NewLedgerService(mockRepo, logger)

		mockRepo.On("SumAmountBySessionID", context.Background(), "session-1").
			Return(int64(0), errors.New("connection reset"))

		_, err := svc.Summary(context.Background(), "session-1")

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, serviceErr.Code)
	})
}
