package reports

import (
	"context"

	"budget-app-go/internal/domain/budgets"
	"budget-app-go/internal/domain/expenses"
	"golang.org/x/sync/errgroup"
)

type ExpenseSource interface {
	ListExpensesByMonth(ctx context.Context, year, month int) ([]expenses.Expense, error)
	ListExpensesByYear(ctx context.Context, year int) ([]expenses.Expense, error)
	ListCategories(ctx context.Context) ([]expenses.Category, error)
}

type BudgetSource interface {
	ListBudgetsByPeriod(ctx context.Context, year int, month *int) ([]budgets.Budget, error)
}

type Service struct {
	expenses ExpenseSource
	budgets  BudgetSource
}

func NewService(expenses ExpenseSource, budgets BudgetSource) *Service {
	return &Service{expenses: expenses, budgets: budgets}
}

func (s *Service) BudgetSummary(ctx context.Context, year int, month *int) ([]BudgetSummary, error) {
	snapshot, err := s.loadSnapshot(ctx, year, month)
	if err != nil {
		return nil, err
	}

	reportsGenerated.WithLabelValues(kindBudgetSummary).Inc()
	return ComputeBudgetSummary(snapshot, year, month), nil
}

func (s *Service) MonthlyReport(ctx context.Context, year, month int) (MonthlyReport, error) {
	snapshot, err := s.loadSnapshot(ctx, year, &month)
	if err != nil {
		return MonthlyReport{}, err
	}

	reportsGenerated.WithLabelValues(kindMonthly).Inc()
	return ComputeMonthlyReport(snapshot, year, month), nil
}

// loadSnapshot reads the three collections independently. Writes landing
// between the reads are not isolated from each other.
func (s *Service) loadSnapshot(ctx context.Context, year int, month *int) (Snapshot, error) {
	var snapshot Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if month != nil {
			snapshot.Expenses, err = s.expenses.ListExpensesByMonth(gctx, year, *month)
		} else {
			snapshot.Expenses, err = s.expenses.ListExpensesByYear(gctx, year)
		}
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Budgets, err = s.budgets.ListBudgetsByPeriod(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Categories, err = s.expenses.ListCategories(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}
