package mocks

import (
	"context"

	"github.com/fintrack/ledger-service/internal/model"
	"github.com/fintrack/ledger-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type LedgerService struct {
	mock.Mock
}

func (m *LedgerService) CreateTransaction(ctx context.Context, cmd service.CreateTransactionCommand) (service.CreateTransactionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.CreateTransactionResult), args.Error(1)
}

func (m *LedgerService) ListTransactions(ctx context.Context, sessionID string) ([]model.Transaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerService) GetTransaction(ctx context.Context, id, sessionID string) (*model.Transaction, error) {
	args := m.Called(ctx, id, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *LedgerService) Summary(ctx context.Context, sessionID string) (service.SummaryResult, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(service.SummaryResult), args.Error(1)
}
