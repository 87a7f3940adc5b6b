package expenses

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListExpenses(ctx context.Context, filter ListFilter) ([]Expense, error) {
	if filter.Year == nil {
		filter.Month = nil
	}
	items, err := s.repo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []Expense{}, nil
	}
	return items, nil
}

func (s *Service) ListExpensesByMonth(ctx context.Context, year, month int) ([]Expense, error) {
	return s.ListExpenses(ctx, ListFilter{Year: &year, Month: &month})
}

func (s *Service) ListExpensesByYear(ctx context.Context, year int) ([]Expense, error) {
	return s.ListExpenses(ctx, ListFilter{Year: &year})
}

func (s *Service) GetExpense(ctx context.Context, expenseID int64) (*Expense, error) {
	return s.repo.GetExpenseByID(ctx, expenseID)
}

func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	expense, err := normalizeExpense(input.Date, input.Category, input.Amount, input.User, input.Description)
	if err != nil {
		return nil, err
	}
	expense.CreatedAt = s.now().UTC()

	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *Service) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*Expense, error) {
	normalized, err := normalizeExpense(input.Date, input.Category, input.Amount, input.User, input.Description)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.GetExpenseByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	expense.Date = normalized.Date
	expense.Category = normalized.Category
	expense.Amount = normalized.Amount
	expense.User = normalized.User
	expense.Description = normalized.Description

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, expenseID int64) error {
	deleted, err := s.repo.DeleteExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func normalizeExpense(date, category string, amount int64, user string, description *string) (Expense, error) {
	date = strings.TrimSpace(date)
	if _, ok := parseDate(date); !ok {
		return Expense{}, ErrInvalidDate
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Expense{}, ErrCategoryRequired
	}
	if amount <= 0 {
		return Expense{}, ErrInvalidAmount
	}
	user = strings.TrimSpace(user)
	if user == "" {
		return Expense{}, ErrUserRequired
	}

	return Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		User:        user,
		Description: normalizeDescription(description),
	}, nil
}

func normalizeDescription(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
