package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10000000) // 10 million cap per transaction

// ValidateAmount checks that a monetary amount is strictly positive and sane.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t.UTC(), nil
}

// ValidateTransactionType checks the type is INCOME or EXPENSE.
func ValidateTransactionType(txType string) error {
	if txType != "INCOME" && txType != "EXPENSE" {
		return fmt.Errorf("type must be INCOME or EXPENSE, got %q", txType)
	}
	return nil
}
