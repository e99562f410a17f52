package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Transaction represents a single income or expense record.
// Amount is an exact decimal to avoid float rounding in summaries.
// Date is normalized to UTC midnight. Rows are soft-deleted via DeletedAt
// and excluded from every query.
type Transaction struct {
	ID          string          `gorm:"primaryKey;size:36"`
	UserEmail   string          `gorm:"size:255;index;not null"`
	Description string          `gorm:"size:255;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Type        string          `gorm:"size:16;index;not null"` // INCOME / EXPENSE
	CategoryID  string          `gorm:"size:36;index;not null"`
	Date        time.Time       `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// Deleted reports whether the transaction has been soft-deleted.
func (t *Transaction) Deleted() bool {
	return t.DeletedAt != nil
}
