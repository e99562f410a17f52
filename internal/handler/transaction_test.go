package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"
)

func TestListByMonth_RequiresYearAndMonth(t *testing.T) {
	db := newTestDB(t)
	h := NewTransactionHandler(service.NewTransactionService(db))

	cases := []struct {
		name  string
		query string
	}{
		{"both missing", ""},
		{"year missing", "?month=2"},
		{"month missing", "?year=2024"},
		{"year not a number", "?year=abc&month=2"},
		{"month not a number", "?year=2024&month=feb"},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/transactions/by-month"+c.query, nil)
		h.ListByMonth(authedContext(w, req, "ana@example.com"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", c.name, w.Code, http.StatusBadRequest)
		}
	}
}

func TestCategorySummary_RequiresYearAndMonth(t *testing.T) {
	db := newTestDB(t)
	h := NewTransactionHandler(service.NewTransactionService(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/category-summary", nil)
	h.CategorySummary(authedContext(w, req, "ana@example.com"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListByMonth_ValidParams(t *testing.T) {
	db := newTestDB(t)
	h := NewTransactionHandler(service.NewTransactionService(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/by-month?year=2024&month=2", nil)
	h.ListByMonth(authedContext(w, req, "ana@example.com"))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}
