package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"fintrack-server/src/aggregate"
	"fintrack-server/src/apperr"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AddIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Context().Value("user_id").(int64)

		var req struct {
			Category string   `json:"category"`
			Amount   *float64 `json:"amount"`
			Date     string   `json:"date"`
			Type     string   `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add income request body for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid request"))
			return
		}

		if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Date) == "" ||
			strings.TrimSpace(req.Type) == "" || req.Amount == nil {
			apperr.WriteError(w, apperr.New(apperr.Validation, "All fields are required"))
			return
		}
		if *req.Amount < 0 {
			apperr.WriteError(w, apperr.New(apperr.Validation, "amount must be non-negative"))
			return
		}
		date, err := util.ParseEntryDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid income date %q for user %d", req.Date, ownerID)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid date format"))
			return
		}

		entry := models.IncomeEntry{
			Category: req.Category,
			Amount:   *req.Amount,
			Date:     date,
			Type:     req.Type,
		}
		if err := db.AppendIncome(r.Context(), pool, ownerID, entry); err != nil {
			log.Printf("ERROR: Failed to append income for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "failed to add income"))
			return
		}

		log.Printf("INFO: Added income for user %d, category %s", ownerID, entry.Category)

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Income added successfully",
		})
	}
}

func AddExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Context().Value("user_id").(int64)

		var req struct {
			Category    string   `json:"category"`
			Description string   `json:"description"`
			Amount      *float64 `json:"amount"`
			Date        string   `json:"date"`
			Type        string   `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add expense request body for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid request"))
			return
		}

		if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Description) == "" ||
			strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Type) == "" || req.Amount == nil {
			apperr.WriteError(w, apperr.New(apperr.Validation, "All fields are required"))
			return
		}
		if *req.Amount < 0 {
			apperr.WriteError(w, apperr.New(apperr.Validation, "amount must be non-negative"))
			return
		}
		date, err := util.ParseEntryDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid expense date %q for user %d", req.Date, ownerID)
			apperr.WriteError(w, apperr.New(apperr.Validation, "invalid date format"))
			return
		}

		entry := models.ExpenseEntry{
			Category:    req.Category,
			Description: req.Description,
			Amount:      *req.Amount,
			Date:        date,
			Type:        req.Type,
		}
		if err := db.AppendExpense(r.Context(), pool, ownerID, entry); err != nil {
			if errors.Is(err, db.ErrNoTransactionRecord) {
				log.Printf("ERROR: Expense before any income for user %d", ownerID)
				apperr.WriteError(w, apperr.New(apperr.NotFound, "Kindly add income first"))
				return
			}
			log.Printf("ERROR: Failed to append expense for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "failed to add expense"))
			return
		}

		log.Printf("INFO: Added expense for user %d, category %s", ownerID, entry.Category)

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Expense added successfully",
		})
	}
}

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Context().Value("user_id").(int64)

		record, err := db.GetTransactionRecord(r.Context(), pool, ownerID)
		if err != nil {
			if errors.Is(err, db.ErrNoTransactionRecord) {
				apperr.WriteError(w, apperr.New(apperr.NotFound, "No transactions found"))
				return
			}
			log.Printf("ERROR: Failed to get transaction record for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "failed to get transactions"))
			return
		}

		summary := aggregate.Balance(record)
		writeJSON(w, http.StatusOK, struct {
			Success bool `json:"success"`
			models.BalanceSummary
		}{true, summary})
	}
}

func ExpenseByCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Context().Value("user_id").(int64)

		year, err := yearParam(r)
		if err != nil {
			apperr.WriteError(w, err)
			return
		}

		record, err := db.GetTransactionRecord(r.Context(), pool, ownerID)
		if err != nil {
			if errors.Is(err, db.ErrNoTransactionRecord) {
				apperr.WriteError(w, apperr.New(apperr.NotFound, "No transactions found"))
				return
			}
			log.Printf("ERROR: Failed to get transaction record for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "failed to get expenses"))
			return
		}

		slices := aggregate.ExpenseByCategory(record, year)
		if len(slices) == 0 {
			apperr.WriteError(w, apperr.New(apperr.NotFound, "No expense found for the selected year"))
			return
		}
		writeJSON(w, http.StatusOK, slices)
	}
}

func TransactionsByMonth(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Context().Value("user_id").(int64)

		year, err := yearParam(r)
		if err != nil {
			apperr.WriteError(w, err)
			return
		}

		record, err := db.GetTransactionRecord(r.Context(), pool, ownerID)
		if err != nil {
			if errors.Is(err, db.ErrNoTransactionRecord) {
				apperr.WriteError(w, apperr.New(apperr.NotFound, "No transactions found"))
				return
			}
			log.Printf("ERROR: Failed to get transaction record for user %d: %v", ownerID, err)
			apperr.WriteError(w, apperr.New(apperr.Internal, "failed to get transactions"))
			return
		}

		rows := aggregate.TotalsByMonth(record, year)
		if len(rows) == 0 {
			apperr.WriteError(w, apperr.New(apperr.NotFound, "No transactions found for the selected year"))
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func yearParam(r *http.Request) (int, error) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return 0, apperr.New(apperr.Validation, "Year is required")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, apperr.New(apperr.Validation, "invalid year")
	}
	return year, nil
}
