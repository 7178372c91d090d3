package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	cache "fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoTransactionRecord = errors.New("transaction record not found")

// GetTransactionRecord serves from the record cache when it can. A
// read racing an append may re-populate the cache with the pre-append
// record after the append's invalidation; the entry stays stale until
// the owner's next append. Tolerated at this data volume.
func GetTransactionRecord(ctx context.Context, pool *pgxpool.Pool, ownerID int64) (*models.TransactionRecord, error) {
	if record, ok := cache.GetRecordCache(ownerID); ok {
		return record, nil
	}

	query := `
		SELECT owner_id, income, expense, created_at, updated_at
		FROM transaction_records
		WHERE owner_id = $1
	`
	var (
		record      models.TransactionRecord
		incomeJSON  []byte
		expenseJSON []byte
	)
	err := pool.QueryRow(ctx, query, ownerID).Scan(
		&record.OwnerID,
		&incomeJSON,
		&expenseJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoTransactionRecord
		}
		return nil, fmt.Errorf("query error: %w", err)
	}

	if err := json.Unmarshal(incomeJSON, &record.Income); err != nil {
		return nil, fmt.Errorf("decode income list: %w", err)
	}
	if err := json.Unmarshal(expenseJSON, &record.Expense); err != nil {
		return nil, fmt.Errorf("decode expense list: %w", err)
	}

	cache.SetRecordCache(ownerID, &record)
	return &record, nil
}

// AppendIncome creates the owner's record on first use, otherwise
// appends server-side. A single statement, so concurrent appends for
// one owner serialize on the row instead of losing updates.
func AppendIncome(ctx context.Context, pool *pgxpool.Pool, ownerID int64, entry models.IncomeEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode income entry: %w", err)
	}

	query := `
		INSERT INTO transaction_records (owner_id, income)
		VALUES ($1, jsonb_build_array($2::jsonb))
		ON CONFLICT (owner_id)
		DO UPDATE SET income = transaction_records.income || EXCLUDED.income, updated_at = NOW()
	`
	if _, err := pool.Exec(ctx, query, ownerID, payload); err != nil {
		return fmt.Errorf("append income: %w", err)
	}

	cache.DelRecordCache(ownerID)
	return nil
}

// AppendExpense requires a pre-existing record: income must precede
// expense for every owner.
func AppendExpense(ctx context.Context, pool *pgxpool.Pool, ownerID int64, entry models.ExpenseEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode expense entry: %w", err)
	}

	query := `
		UPDATE transaction_records
		SET expense = expense || jsonb_build_array($2::jsonb), updated_at = NOW()
		WHERE owner_id = $1
	`
	cmd, err := pool.Exec(ctx, query, ownerID, payload)
	if err != nil {
		return fmt.Errorf("append expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNoTransactionRecord
	}

	cache.DelRecordCache(ownerID)
	return nil
}
