package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes the caller's transactions as CSV or XLSX.
type ExportHandler struct {
	Transactions *service.TransactionService
}

func NewExportHandler(transactions *service.TransactionService) *ExportHandler {
	return &ExportHandler{Transactions: transactions}
}

var exportHeaders = []string{"Type", "Description", "Amount", "Category", "Date"}

// ExportCSV streams the transactions as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, err := h.Transactions.List(user.Email)
	if err != nil {
		util.Fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for i := range txs {
		tx := &txs[i]
		writer.Write([]string{
			tx.Type,
			tx.Description,
			tx.Amount.String(),
			tx.CategoryID,
			tx.Date.Format("2006-01-02"),
		})
	}

	// the response is already streaming, so a failed flush can only be
	// logged, not turned into an error envelope
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = c.Error(err)
	}
}

// ExportXLSX writes the transactions as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, err := h.Transactions.List(user.Email)
	if err != nil {
		util.Fail(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txs {
		tx := &txs[idx]
		row := idx + 2

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Amount.String())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.CategoryID)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Date.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 38)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
