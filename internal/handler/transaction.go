package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes transaction CRUD and summary endpoints.
type TransactionHandler struct {
	Transactions *service.TransactionService
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{Transactions: transactions}
}

type transactionReq struct {
	Description string `json:"description" binding:"required,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required"`
	CategoryID  string `json:"category_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
}

// toInput parses the request into a service input; amount and date errors
// surface as validation failures.
func (r *transactionReq) toInput() (service.TransactionInput, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return service.TransactionInput{}, err
	}
	date, err := util.ParseDate(r.Date)
	if err != nil {
		return service.TransactionInput{}, err
	}
	return service.TransactionInput{
		Description: r.Description,
		Amount:      amount,
		Type:        r.Type,
		CategoryID:  r.CategoryID,
		Date:        date,
	}, nil
}

func transactionJSON(tx *models.Transaction) gin.H {
	return gin.H{
		"id":          tx.ID,
		"description": tx.Description,
		"amount":      tx.Amount,
		"type":        tx.Type,
		"category_id": tx.CategoryID,
		"date":        tx.Date.Format("2006-01-02"),
		"created_at":  tx.CreatedAt,
		"updated_at":  tx.UpdatedAt,
	}
}

func transactionListJSON(txs []models.Transaction) []gin.H {
	items := make([]gin.H, 0, len(txs))
	for i := range txs {
		items = append(items, transactionJSON(&txs[i]))
	}
	return items
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	tx, err := h.Transactions.Create(user.Email, in)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": transactionJSON(tx),
	})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	tx, err := h.Transactions.Update(user.Email, c.Param("id"), in)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": transactionJSON(tx),
	})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Transactions.Delete(user.Email, c.Param("id")); err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "transaction removed",
	})
}

func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, err := h.Transactions.List(user.Email)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transactions": transactionListJSON(txs),
	})
}

// yearMonthParams reads ?year=YYYY&month=M. Both are required; the service
// validates the month range.
func yearMonthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "year is required")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month is required")
		return 0, 0, false
	}
	return year, month, true
}

// rangeParams reads ?start=YYYY-MM-DD&end=YYYY-MM-DD, both at UTC midnight.
func rangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := util.ParseDate(c.Query("start"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid start date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := util.ParseDate(c.Query("end"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid end date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *TransactionHandler) ListByMonth(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	txs, err := h.Transactions.ListByMonth(user.Email, year, month)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transactions": transactionListJSON(txs),
	})
}

func (h *TransactionHandler) ListByCategory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, err := h.Transactions.ListByCategory(user.Email, c.Query("category_id"))
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transactions": transactionListJSON(txs),
	})
}

func (h *TransactionHandler) ListByPeriod(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	txs, err := h.Transactions.ListByDateRange(user.Email, start, end)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transactions": transactionListJSON(txs),
	})
}

func summaryJSON(s service.Summary) gin.H {
	return gin.H{
		"total_income":  s.TotalIncome,
		"total_expense": s.TotalExpense,
		"balance":       s.Balance,
	}
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.Transactions.Summary(user.Email)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"summary": summaryJSON(summary),
	})
}

func (h *TransactionHandler) SummaryByPeriod(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	summary, err := h.Transactions.SummaryByDateRange(user.Email, start, end)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"summary": summaryJSON(summary),
	})
}

func (h *TransactionHandler) CategorySummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	rows, err := h.Transactions.CategorySummary(user.Email, year, month)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"by_category": rows,
	})
}

func (h *TransactionHandler) CategorySummaryByPeriod(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	rows, err := h.Transactions.CategorySummaryByDateRange(user.Email, start, end)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"by_category": rows,
	})
}
