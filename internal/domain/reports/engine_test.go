package reports

import (
	"reflect"
	"testing"

	"budget-app-go/internal/domain/budgets"
	"budget-app-go/internal/domain/expenses"
)

func intPtr(v int) *int { return &v }

func monthlyBudget(id int64, category string, amount int64, year, month int) budgets.Budget {
	return budgets.Budget{ID: id, Category: category, Amount: amount, Period: budgets.PeriodMonthly, Year: year, Month: intPtr(month)}
}

func yearlyBudget(id int64, category string, amount int64, year int) budgets.Budget {
	return budgets.Budget{ID: id, Category: category, Amount: amount, Period: budgets.PeriodYearly, Year: year}
}

func expense(id int64, date, category string, amount int64) expenses.Expense {
	return expenses.Expense{ID: id, Date: date, Category: category, Amount: amount, User: "alice"}
}

func TestBudgetSummaryWithinBudget(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{monthlyBudget(1, "food", 10000, 2024, 3)},
		Expenses: []expenses.Expense{
			expense(1, "2024-03-05", "food", 4000),
			expense(2, "2024-03-20", "food", 3000),
		},
	}

	summary := ComputeBudgetSummary(snapshot, 2024, intPtr(3))
	if len(summary) != 1 {
		t.Fatalf("expected 1 row, got %d", len(summary))
	}
	row := summary[0]
	if row.Used != 7000 || row.Remaining != 3000 || row.Percentage != 70 || row.IsOverBudget {
		t.Fatalf("unexpected summary row: %+v", row)
	}
}

func TestBudgetSummaryOverBudgetIsCapped(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{monthlyBudget(1, "food", 10000, 2024, 3)},
		Expenses: []expenses.Expense{
			expense(1, "2024-03-05", "food", 4000),
			expense(2, "2024-03-20", "food", 8000),
		},
	}

	row := ComputeBudgetSummary(snapshot, 2024, intPtr(3))[0]
	if row.Used != 12000 || row.Remaining != -2000 {
		t.Fatalf("unexpected amounts: %+v", row)
	}
	if row.Percentage != 100 {
		t.Fatalf("expected capped percentage 100, got %v", row.Percentage)
	}
	if !row.IsOverBudget {
		t.Fatalf("expected over budget flag")
	}
}

func TestBudgetSummaryPercentageNeverExceedsCap(t *testing.T) {
	for _, used := range []int64{10001, 20000, 1_000_000_000} {
		snapshot := Snapshot{
			Budgets:  []budgets.Budget{monthlyBudget(1, "food", 10000, 2024, 3)},
			Expenses: []expenses.Expense{expense(1, "2024-03-05", "food", used)},
		}
		row := ComputeBudgetSummary(snapshot, 2024, intPtr(3))[0]
		if row.Percentage > 100 {
			t.Fatalf("used %d: percentage %v exceeds cap", used, row.Percentage)
		}
		if !row.IsOverBudget {
			t.Fatalf("used %d: expected over budget", used)
		}
		if row.Remaining != 10000-used {
			t.Fatalf("used %d: expected remaining %d, got %d", used, 10000-used, row.Remaining)
		}
	}
}

func TestBudgetSummaryExactlyAtBudgetIsNotOver(t *testing.T) {
	snapshot := Snapshot{
		Budgets:  []budgets.Budget{monthlyBudget(1, "food", 10000, 2024, 3)},
		Expenses: []expenses.Expense{expense(1, "2024-03-05", "food", 10000)},
	}
	row := ComputeBudgetSummary(snapshot, 2024, intPtr(3))[0]
	if row.IsOverBudget || row.Percentage != 100 || row.Remaining != 0 {
		t.Fatalf("unexpected row at exact budget: %+v", row)
	}
}

func TestBudgetSummaryZeroAmountBudget(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{
			monthlyBudget(1, "food", 0, 2024, 3),
			monthlyBudget(2, "travel", 0, 2024, 3),
		},
		Expenses: []expenses.Expense{expense(1, "2024-03-05", "food", 500)},
	}

	summary := ComputeBudgetSummary(snapshot, 2024, intPtr(3))
	if summary[0].Percentage != 0 || !summary[0].IsOverBudget {
		t.Fatalf("expected 0%% and over budget for spent zero budget, got %+v", summary[0])
	}
	if summary[1].Percentage != 0 || summary[1].IsOverBudget {
		t.Fatalf("expected 0%% and not over budget for unspent zero budget, got %+v", summary[1])
	}
}

func TestBudgetSummaryEmptyWithoutBudgets(t *testing.T) {
	snapshot := Snapshot{
		Expenses: []expenses.Expense{expense(1, "2024-03-05", "food", 500)},
	}
	summary := ComputeBudgetSummary(snapshot, 2024, intPtr(3))
	if summary == nil || len(summary) != 0 {
		t.Fatalf("expected empty non-nil summary, got %#v", summary)
	}
	if got := ComputeBudgetSummary(snapshot, 2024, nil); len(got) != 0 {
		t.Fatalf("expected empty yearly summary, got %+v", got)
	}
}

func TestBudgetSummaryPeriodMustMatchExactly(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{
			monthlyBudget(1, "food", 10000, 2024, 3),
			yearlyBudget(2, "food", 120000, 2024),
			monthlyBudget(3, "food", 10000, 2024, 4),
			yearlyBudget(4, "food", 100000, 2023),
		},
		Expenses: []expenses.Expense{
			expense(1, "2024-03-05", "food", 1000),
			expense(2, "2024-04-05", "food", 2000),
			expense(3, "2023-03-05", "food", 4000),
		},
	}

	monthly := ComputeBudgetSummary(snapshot, 2024, intPtr(3))
	if len(monthly) != 1 || monthly[0].Budget != 10000 || monthly[0].Used != 1000 {
		t.Fatalf("unexpected monthly summary: %+v", monthly)
	}

	yearly := ComputeBudgetSummary(snapshot, 2024, nil)
	if len(yearly) != 1 || yearly[0].Budget != 120000 || yearly[0].Used != 3000 {
		t.Fatalf("unexpected yearly summary: %+v", yearly)
	}
}

func TestBudgetSummaryCategoryMatchIsExact(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{monthlyBudget(1, "Food", 10000, 2024, 3)},
		Expenses: []expenses.Expense{
			expense(1, "2024-03-05", "food", 4000),
			expense(2, "2024-03-05", "Food ", 4000),
			expense(3, "2024-03-05", "Food", 100),
		},
	}
	row := ComputeBudgetSummary(snapshot, 2024, intPtr(3))[0]
	if row.Used != 100 {
		t.Fatalf("expected only exact category matches, got used %d", row.Used)
	}
}

func TestBudgetSummaryOrderAndColors(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{
			monthlyBudget(7, "travel", 100, 2024, 3),
			monthlyBudget(2, "food", 100, 2024, 3),
			monthlyBudget(5, "misc", 100, 2024, 3),
		},
		Categories: []expenses.Category{
			{ID: 1, Name: "food", Color: "#10B981"},
			{ID: 2, Name: "travel", Color: "#2563EB"},
		},
	}

	summary := ComputeBudgetSummary(snapshot, 2024, intPtr(3))
	got := []string{summary[0].Category, summary[1].Category, summary[2].Category}
	if !reflect.DeepEqual(got, []string{"travel", "food", "misc"}) {
		t.Fatalf("expected budget enumeration order, got %v", got)
	}
	if summary[0].Color != "#2563EB" || summary[1].Color != "#10B981" {
		t.Fatalf("unexpected colors: %+v", summary)
	}
	if summary[2].Color != expenses.DefaultCategoryColor {
		t.Fatalf("expected fallback color, got %s", summary[2].Color)
	}
}

func TestBudgetSummaryIgnoresMalformedDates(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{monthlyBudget(1, "food", 10000, 2024, 3)},
		Expenses: []expenses.Expense{
			expense(1, "2024/03/05", "food", 4000),
			expense(2, "", "food", 4000),
			expense(3, "2024-03-05", "food", 1),
		},
	}
	row := ComputeBudgetSummary(snapshot, 2024, intPtr(3))[0]
	if row.Used != 1 {
		t.Fatalf("expected malformed dates to be ignored, got used %d", row.Used)
	}
}

func TestMonthlyReportIncludesUnbudgetedSpend(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{monthlyBudget(1, "travel", 5000, 2024, 3)},
		Expenses: []expenses.Expense{
			expense(1, "2024-03-05", "food", 4000),
			expense(2, "2024-03-20", "food", 3000),
			expense(3, "2024-03-21", "travel", 1000),
			expense(4, "2024-04-01", "travel", 9999),
		},
	}

	summary := ComputeBudgetSummary(snapshot, 2024, intPtr(3))
	for _, row := range summary {
		if row.Category == "food" {
			t.Fatalf("expected unbudgeted food to be excluded, got %+v", row)
		}
	}

	report := ComputeMonthlyReport(snapshot, 2024, 3)
	if report.TotalExpenses != 8000 {
		t.Fatalf("expected total expenses 8000, got %d", report.TotalExpenses)
	}
	if report.TotalBudget != 5000 {
		t.Fatalf("expected total budget 5000, got %d", report.TotalBudget)
	}
	if report.BudgetUtilization != 160 {
		t.Fatalf("expected utilization 160, got %v", report.BudgetUtilization)
	}
	if report.ExpenseCount != 3 {
		t.Fatalf("expected 3 expenses, got %d", report.ExpenseCount)
	}
	if report.Month != "2024-03" || report.Year != 2024 {
		t.Fatalf("unexpected label: %s %d", report.Month, report.Year)
	}
	if len(report.Categories) != 1 || report.Categories[0].Used != 1000 {
		t.Fatalf("unexpected categories: %+v", report.Categories)
	}
}

func TestMonthlyReportWithoutBudgets(t *testing.T) {
	snapshot := Snapshot{
		Expenses: []expenses.Expense{expense(1, "2024-03-05", "food", 4000)},
	}
	report := ComputeMonthlyReport(snapshot, 2024, 3)
	if report.TotalBudget != 0 || report.BudgetUtilization != 0 {
		t.Fatalf("expected zero budget and utilization, got %+v", report)
	}
	if report.TotalExpenses != 4000 || report.ExpenseCount != 1 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if report.Categories == nil {
		t.Fatalf("expected empty categories slice, got nil")
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	snapshot := Snapshot{
		Budgets: []budgets.Budget{
			monthlyBudget(1, "food", 10000, 2024, 3),
			monthlyBudget(2, "travel", 3000, 2024, 3),
		},
		Expenses: []expenses.Expense{
			expense(1, "2024-03-05", "food", 4000),
			expense(2, "2024-03-07", "travel", 5000),
		},
		Categories: []expenses.Category{{ID: 1, Name: "food", Color: "#10B981"}},
	}
	before := Snapshot{
		Budgets:    append([]budgets.Budget(nil), snapshot.Budgets...),
		Expenses:   append([]expenses.Expense(nil), snapshot.Expenses...),
		Categories: append([]expenses.Category(nil), snapshot.Categories...),
	}

	first := ComputeMonthlyReport(snapshot, 2024, 3)
	second := ComputeMonthlyReport(snapshot, 2024, 3)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports, got %+v and %+v", first, second)
	}
	if !reflect.DeepEqual(ComputeBudgetSummary(snapshot, 2024, intPtr(3)), ComputeBudgetSummary(snapshot, 2024, intPtr(3))) {
		t.Fatalf("expected identical summaries")
	}
	if !reflect.DeepEqual(before, snapshot) {
		t.Fatalf("expected snapshot to stay untouched")
	}
}
