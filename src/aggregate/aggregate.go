// Package aggregate computes the derived read views over a user's
// transaction record: balance summary, category breakdown and monthly
// totals. All functions are pure; callers fetch the record first.
package aggregate

import (
	"math"
	"sort"
	"strconv"
	"time"

	"fintrack-server/src/models"
)

// Balance merges both entry lists into one date-descending listing and
// totals each side. Equal dates keep income before expense and
// insertion order within each list.
func Balance(record *models.TransactionRecord) models.BalanceSummary {
	summary := models.BalanceSummary{
		Transactions: make([]models.TransactionView, 0, len(record.Income)+len(record.Expense)),
	}

	for _, entry := range record.Income {
		summary.TotalIncome += entry.Amount
		summary.Transactions = append(summary.Transactions, models.TransactionView{
			Category: entry.Category,
			Amount:   entry.Amount,
			Date:     entry.Date,
			Type:     entry.Type,
		})
	}
	for _, entry := range record.Expense {
		summary.TotalExpense += entry.Amount
		summary.Transactions = append(summary.Transactions, models.TransactionView{
			Category:    entry.Category,
			Description: entry.Description,
			Amount:      entry.Amount,
			Date:        entry.Date,
			Type:        entry.Type,
		})
	}
	summary.TotalBalance = summary.TotalIncome - summary.TotalExpense

	sort.SliceStable(summary.Transactions, func(i, j int) bool {
		return summary.Transactions[i].Date.After(summary.Transactions[j].Date)
	})

	return summary
}

// ExpenseByCategory groups the given year's expenses by category and
// turns each group into a whole-number percentage of that year's total.
// Slice ids carry the category name plus the overall total; the serving
// frontend keys chart slices by that composite, so it stays as is.
func ExpenseByCategory(record *models.TransactionRecord, year int) []models.CategorySlice {
	sums := make(map[string]float64)
	var order []string
	var total float64

	for _, entry := range record.Expense {
		if entry.Date.Year() != year {
			continue
		}
		if _, seen := sums[entry.Category]; !seen {
			order = append(order, entry.Category)
		}
		sums[entry.Category] += entry.Amount
		total += entry.Amount
	}
	if len(order) == 0 {
		return nil
	}

	totalLabel := strconv.FormatFloat(total, 'f', -1, 64)
	slices := make([]models.CategorySlice, 0, len(order))
	for _, category := range order {
		var percent float64
		if total > 0 {
			percent = math.Round(sums[category] / total * 100)
		}
		slices = append(slices, models.CategorySlice{
			ID:    category + totalLabel,
			Label: category,
			Value: percent,
		})
	}
	return slices
}

// TotalsByMonth buckets the given year's entries by abbreviated month
// name, one row per month with a zero for whichever side has no data.
// Which list an entry came from decides income vs expense, not the
// entry's free-form type field. Rows come back ordered by month name,
// not calendar order; consumers re-sort client-side.
func TotalsByMonth(record *models.TransactionRecord, year int) []models.MonthlyTotal {
	type bucket struct {
		income  float64
		expense float64
	}
	buckets := make(map[string]*bucket)

	add := func(date time.Time, amount float64, isExpense bool) {
		if date.Year() != year {
			return
		}
		month := date.Format("Jan")
		b := buckets[month]
		if b == nil {
			b = &bucket{}
			buckets[month] = b
		}
		if isExpense {
			b.expense += amount
		} else {
			b.income += amount
		}
	}

	for _, entry := range record.Income {
		add(entry.Date, entry.Amount, false)
	}
	for _, entry := range record.Expense {
		add(entry.Date, entry.Amount, true)
	}

	rows := make([]models.MonthlyTotal, 0, len(buckets))
	for month, b := range buckets {
		rows = append(rows, models.MonthlyTotal{
			Month:   month,
			Income:  b.income,
			Expense: b.expense,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})
	return rows
}
