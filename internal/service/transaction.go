package service

import (
	"strings"
	"time"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/apperr"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput carries the writable fields of a transaction.
type TransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Type        string // INCOME / EXPENSE
	CategoryID  string
	Date        time.Time
}

// Summary aggregates income/expense/balance over a transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategorySummary holds per-category income and expense sums.
type CategorySummary struct {
	CategoryID string          `json:"category_id"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
}

// TransactionService manages per-user transactions and their summaries.
type TransactionService struct {
	DB *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{DB: db}
}

func (s *TransactionService) validate(in TransactionInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return apperr.Validation("description is required")
	}
	if err := util.ValidateAmount(in.Amount); err != nil {
		return apperr.Validation(err.Error())
	}
	if err := util.ValidateTransactionType(in.Type); err != nil {
		return apperr.Validation(err.Error())
	}
	if in.Date.IsZero() {
		return apperr.Validation("date is required")
	}
	if in.CategoryID == "" {
		return apperr.Validation("category is required")
	}
	return nil
}

// resolveCategory loads an active category owned by the user.
func (s *TransactionService) resolveCategory(userEmail, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.DB.
		Where("id = ? AND user_email = ? AND active = ?", categoryID, userEmail, true).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return &category, nil
}

// normalizeDate pins a date to UTC midnight.
func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create records a new transaction for the user.
func (s *TransactionService) Create(userEmail string, in TransactionInput) (*models.Transaction, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if _, err := s.resolveCategory(userEmail, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := models.Transaction{
		ID:          uuid.NewString(),
		UserEmail:   userEmail,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		CategoryID:  in.CategoryID,
		Date:        normalizeDate(in.Date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.DB.Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// findOwned loads a non-deleted transaction owned by the user.
func (s *TransactionService) findOwned(userEmail, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.DB.
		Where("id = ? AND user_email = ? AND deleted_at IS NULL", id, userEmail).
		First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("transaction not found")
		}
		return nil, err
	}
	return &tx, nil
}

// Update overwrites all writable fields of a transaction.
func (s *TransactionService) Update(userEmail, id string, in TransactionInput) (*models.Transaction, error) {
	tx, err := s.findOwned(userEmail, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if _, err := s.resolveCategory(userEmail, in.CategoryID); err != nil {
		return nil, err
	}

	tx.Description = in.Description
	tx.Amount = in.Amount
	tx.Type = in.Type
	tx.CategoryID = in.CategoryID
	tx.Date = normalizeDate(in.Date)
	tx.UpdatedAt = time.Now()

	if err := s.DB.Save(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete soft-deletes a transaction; it disappears from every later read.
func (s *TransactionService) Delete(userEmail, id string) error {
	tx, err := s.findOwned(userEmail, id)
	if err != nil {
		return err
	}

	now := time.Now()
	tx.DeletedAt = &now
	tx.UpdatedAt = now
	return s.DB.Save(tx).Error
}

// List returns all non-deleted transactions owned by the user.
func (s *TransactionService) List(userEmail string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.DB.
		Where("user_email = ? AND deleted_at IS NULL", userEmail).
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// monthWindow returns the inclusive bounds of a calendar month in UTC:
// first day 00:00:00 through last day 23:59:59, exact month lengths.
func monthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// ListByMonth returns the user's transactions within the given calendar month.
func (s *TransactionService) ListByMonth(userEmail string, year, month int) ([]models.Transaction, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}
	start, end := monthWindow(year, month)
	return s.listBetween(userEmail, start, end)
}

// ListByCategory returns the user's transactions referencing the category.
func (s *TransactionService) ListByCategory(userEmail, categoryID string) ([]models.Transaction, error) {
	if categoryID == "" {
		return nil, apperr.Validation("category is required")
	}
	var txs []models.Transaction
	if err := s.DB.
		Where("user_email = ? AND category_id = ? AND deleted_at IS NULL", userEmail, categoryID).
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// ListByDateRange returns the user's transactions with start <= date <= end.
func (s *TransactionService) ListByDateRange(userEmail string, start, end time.Time) ([]models.Transaction, error) {
	if start.IsZero() || end.IsZero() {
		return nil, apperr.Validation("start and end dates are required")
	}
	if start.After(end) {
		return nil, apperr.Validation("start date is after end date")
	}
	return s.listBetween(userEmail, start, end)
}

func (s *TransactionService) listBetween(userEmail string, start, end time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.DB.
		Where("user_email = ? AND date >= ? AND date <= ? AND deleted_at IS NULL", userEmail, start, end).
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Summary totals income and expense over all of the user's transactions.
func (s *TransactionService) Summary(userEmail string) (Summary, error) {
	txs, err := s.List(userEmail)
	if err != nil {
		return Summary{}, err
	}
	return summarize(txs), nil
}

// SummaryByDateRange totals income and expense within the range.
func (s *TransactionService) SummaryByDateRange(userEmail string, start, end time.Time) (Summary, error) {
	txs, err := s.ListByDateRange(userEmail, start, end)
	if err != nil {
		return Summary{}, err
	}
	return summarize(txs), nil
}

// CategorySummary groups the month's transactions by category id.
func (s *TransactionService) CategorySummary(userEmail string, year, month int) ([]CategorySummary, error) {
	txs, err := s.ListByMonth(userEmail, year, month)
	if err != nil {
		return nil, err
	}
	return groupByCategory(txs), nil
}

// CategorySummaryByDateRange groups the range's transactions by category id.
func (s *TransactionService) CategorySummaryByDateRange(userEmail string, start, end time.Time) ([]CategorySummary, error) {
	txs, err := s.ListByDateRange(userEmail, start, end)
	if err != nil {
		return nil, err
	}
	return groupByCategory(txs), nil
}

func summarize(txs []models.Transaction) Summary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for i := range txs {
		if txs[i].Type == models.TypeIncome {
			totalIncome = totalIncome.Add(txs[i].Amount)
		} else {
			totalExpense = totalExpense.Add(txs[i].Amount)
		}
	}
	return Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

// groupByCategory yields one row per category appearing in txs; categories
// with no transactions in the set are simply absent. Row order is unspecified.
func groupByCategory(txs []models.Transaction) []CategorySummary {
	groups := make(map[string]*CategorySummary)
	for i := range txs {
		tx := &txs[i]
		cs, ok := groups[tx.CategoryID]
		if !ok {
			cs = &CategorySummary{
				CategoryID: tx.CategoryID,
				Income:     decimal.Zero,
				Expense:    decimal.Zero,
			}
			groups[tx.CategoryID] = cs
		}
		if tx.Type == models.TypeIncome {
			cs.Income = cs.Income.Add(tx.Amount)
		} else {
			cs.Expense = cs.Expense.Add(tx.Amount)
		}
	}

	out := make([]CategorySummary, 0, len(groups))
	for _, cs := range groups {
		out = append(out, *cs)
	}
	return out
}
