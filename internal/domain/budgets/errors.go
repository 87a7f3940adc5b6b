package budgets

import "errors"

var (
	ErrBudgetNotFound   = errors.New("budget not found")
	ErrBudgetExists     = errors.New("budget already exists for category and period")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidPeriod    = errors.New("period must be monthly or yearly")
	ErrInvalidYear      = errors.New("year must be between 1 and 9999")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12 for monthly budgets")
	ErrUnexpectedMonth  = errors.New("month must be empty for yearly budgets")
)

func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrCategoryRequired),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidYear),
		errors.Is(err, ErrInvalidMonth),
		errors.Is(err, ErrUnexpectedMonth):
		return true
	default:
		return false
	}
}
