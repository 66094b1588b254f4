package model

import "time"

// Transaction is a single immutable ledger entry. The sign of Amount
// encodes the entry type: positive for credits, negative for debits.
type Transaction struct {
	ID        string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Amount    int64     `gorm:"column:amount;not null" json:"amount"`
	SessionID string    `gorm:"column:session_id;type:char(36);index:idx_session_id" json:"session_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
