package models

import "time"

// One record per owner holding the two embedded entry lists. The record
// is created lazily on the owner's first income entry.
type TransactionRecord struct {
	OwnerID   int64          `json:"owner_id"`
	Income    []IncomeEntry  `json:"income"`
	Expense   []ExpenseEntry `json:"expense"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type IncomeEntry struct {
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
}

type ExpenseEntry struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
}

// TransactionView is a single merged line in the balance summary.
// Description is only set for expense entries.
type TransactionView struct {
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
}

type BalanceSummary struct {
	TotalIncome  float64           `json:"totalIncome"`
	TotalExpense float64           `json:"totalExpense"`
	TotalBalance float64           `json:"totalBalance"`
	Transactions []TransactionView `json:"transactions"`
}

// CategorySlice feeds the expense pie chart. ID is the category name
// concatenated with the overall expense total; consumers key slices by
// it and must treat it as opaque.
type CategorySlice struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type MonthlyTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
