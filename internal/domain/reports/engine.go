package reports

import (
	"fmt"

	"budget-app-go/internal/domain/expenses"
)

const maxDisplayPercentage = 100.0

// ComputeBudgetSummary compares each budget of the period against the spend
// recorded for its category in the same window. With month set the period is
// that calendar month and only monthly budgets qualify; without it the period
// is the whole year and only yearly budgets qualify. Rows follow budget order.
func ComputeBudgetSummary(snapshot Snapshot, year int, month *int) []BudgetSummary {
	colors := make(map[string]string, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		if _, ok := colors[category.Name]; !ok {
			colors[category.Name] = category.Color
		}
	}

	usedByCategory := make(map[string]int64)
	for _, expense := range snapshot.Expenses {
		if !inWindow(expense, year, month) {
			continue
		}
		usedByCategory[expense.Category] += expense.Amount
	}

	summary := make([]BudgetSummary, 0)
	for _, budget := range snapshot.Budgets {
		if !budget.MatchesPeriod(year, month) {
			continue
		}

		used := usedByCategory[budget.Category]
		color, ok := colors[budget.Category]
		if !ok {
			color = expenses.DefaultCategoryColor
		}

		summary = append(summary, BudgetSummary{
			Category:     budget.Category,
			Budget:       budget.Amount,
			Used:         used,
			Remaining:    budget.Amount - used,
			Percentage:   min(percentage(used, budget.Amount), maxDisplayPercentage),
			Color:        color,
			IsOverBudget: used > budget.Amount,
		})
	}

	return summary
}

// ComputeMonthlyReport rolls one calendar month up. TotalExpenses counts every
// expense of the month, including categories without a budget, while
// TotalBudget only sums the budgeted rows.
func ComputeMonthlyReport(snapshot Snapshot, year, month int) MonthlyReport {
	var total int64
	count := 0
	for _, expense := range snapshot.Expenses {
		if !expense.InMonth(year, month) {
			continue
		}
		total += expense.Amount
		count++
	}

	summary := ComputeBudgetSummary(snapshot, year, &month)

	var totalBudget int64
	for _, row := range summary {
		totalBudget += row.Budget
	}

	return MonthlyReport{
		Month:             MonthLabel(year, month),
		Year:              year,
		TotalExpenses:     total,
		TotalBudget:       totalBudget,
		BudgetUtilization: percentage(total, totalBudget),
		Categories:        summary,
		ExpenseCount:      count,
	}
}

func MonthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func inWindow(expense expenses.Expense, year int, month *int) bool {
	if month == nil {
		return expense.InYear(year)
	}
	return expense.InMonth(year, *month)
}

func percentage(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
