package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedExportData(t *testing.T, db *gorm.DB, email string) {
	t.Helper()

	category := models.Category{
		ID:             uuid.NewString(),
		UserEmail:      email,
		Name:           "Food",
		NormalizedName: "food",
		IsDefault:      true,
		Active:         true,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	svc := service.NewTransactionService(db)
	if _, err := svc.Create(email, service.TransactionInput{
		Description: "groceries",
		Amount:      decimal.RequireFromString("30.50"),
		Type:        "EXPENSE",
		CategoryID:  category.ID,
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	db := newTestDB(t)
	seedExportData(t, db, "ana@example.com")
	h := NewExportHandler(service.NewTransactionService(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	h.ExportCSV(authedContext(w, req, "ana@example.com"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Type,Description,Amount,Category,Date") {
		t.Errorf("header row missing from export:\n%s", body)
	}
	if !strings.Contains(body, "EXPENSE,groceries,30.5") || !strings.Contains(body, "2024-03-02") {
		t.Errorf("transaction row missing from export:\n%s", body)
	}
}

// brokenWriter fails every write, simulating a dropped download.
type brokenWriter struct {
	header http.Header
}

func (w *brokenWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func (w *brokenWriter) WriteHeader(int) {}

func TestExportCSV_WriteFailureIsRecorded(t *testing.T) {
	db := newTestDB(t)
	seedExportData(t, db, "ana@example.com")
	h := NewExportHandler(service.NewTransactionService(db))

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	c := authedContext(&brokenWriter{}, req, "ana@example.com")
	h.ExportCSV(c)

	if len(c.Errors) == 0 {
		t.Error("failed flush should be recorded on the context")
	}
}
