package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Validation runs before any store access, so these paths are testable
// with a nil pool.

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), "user_id", int64(1))
	ctx = context.WithValue(ctx, "username", "alice")
	return req.WithContext(ctx)
}

func TestAddIncomeMissingFields(t *testing.T) {
	handler := AddIncome(nil)

	cases := []struct {
		name string
		body string
	}{
		{"empty category", `{"category":"","amount":100,"date":"2024-01-15","type":"monthly"}`},
		{"missing amount", `{"category":"salary","date":"2024-01-15","type":"monthly"}`},
		{"empty date", `{"category":"salary","amount":100,"date":"","type":"monthly"}`},
		{"empty type", `{"category":"salary","amount":100,"date":"2024-01-15","type":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, authedRequest(http.MethodPost, "/addIncome", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			body := decodeBody(t, rec)
			if body["message"] != "All fields are required" {
				t.Errorf("message = %q, want %q", body["message"], "All fields are required")
			}
		})
	}
}

func TestAddIncomeNegativeAmount(t *testing.T) {
	handler := AddIncome(nil)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodPost, "/addIncome",
		`{"category":"salary","amount":-5,"date":"2024-01-15","type":"monthly"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAddIncomeBadDate(t *testing.T) {
	handler := AddIncome(nil)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodPost, "/addIncome",
		`{"category":"salary","amount":100,"date":"15/01/2024","type":"monthly"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "invalid date format" {
		t.Errorf("message = %q, want %q", body["message"], "invalid date format")
	}
}

func TestAddExpenseMissingDescription(t *testing.T) {
	handler := AddExpense(nil)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodPost, "/addExpense",
		`{"category":"food","description":"","amount":30,"date":"2024-01-15","type":"variable"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "All fields are required" {
		t.Errorf("message = %q, want %q", body["message"], "All fields are required")
	}
}

func TestExpenseByCategoryRequiresYear(t *testing.T) {
	handler := ExpenseByCategory(nil)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodGet, "/expenseByCategory", ""))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Year is required" {
		t.Errorf("message = %q, want %q", body["message"], "Year is required")
	}
}

func TestExpenseByCategoryRejectsBadYear(t *testing.T) {
	handler := ExpenseByCategory(nil)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodGet, "/expenseByCategory?year=abcd", ""))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTransactionsByMonthRequiresYear(t *testing.T) {
	handler := TransactionsByMonth(nil)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodGet, "/transactionsByMonth", ""))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
