package v1

import "github.com/fintrack/ledger-service/internal/model"

type ListTransactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
}

type SummaryResponse struct {
	Total int64 `json:"total"`
}
