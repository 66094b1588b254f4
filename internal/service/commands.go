package service

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

type CreateTransactionCommand struct {
	Title     string
	Amount    int64
	Type      string
	SessionID string
}

type CreateTransactionResult struct {
	TransactionID string
}

type SummaryResult struct {
	Total int64 `json:"total"`
}
