package budgets

type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

type Budget struct {
	ID       int64  `gorm:"primaryKey"`
	Category string `gorm:"not null"`
	Amount   int64  `gorm:"not null"`
	Period   Period `gorm:"type:varchar(10);not null"`
	Year     int    `gorm:"not null;index"`
	Month    *int
}

// MatchesPeriod reports whether the budget belongs to the exact period:
// a monthly budget for (year, month) when month is set, otherwise a yearly
// budget for year.
func (b Budget) MatchesPeriod(year int, month *int) bool {
	if b.Year != year {
		return false
	}
	if month == nil {
		return b.Period == PeriodYearly
	}
	return b.Period == PeriodMonthly && b.Month != nil && *b.Month == *month
}

// ListFilter narrows the plain budget listing. A month only applies together
// with a year and then keeps monthly budgets for that month.
type ListFilter struct {
	Year  *int
	Month *int
}

func (f ListFilter) Matches(b Budget) bool {
	if f.Year == nil {
		return true
	}
	if b.Year != *f.Year {
		return false
	}
	if f.Month == nil {
		return true
	}
	return b.Period == PeriodMonthly && b.Month != nil && *b.Month == *f.Month
}

type CreateBudgetInput struct {
	Category string
	Amount   int64
	Period   Period
	Year     int
	Month    *int
}

// UpdateBudgetInput carries a partial update; nil fields are left untouched.
// ClearMonth drops the month, which is required when switching to yearly.
type UpdateBudgetInput struct {
	ID         int64
	Category   *string
	Amount     *int64
	Period     *Period
	Year       *int
	Month      *int
	ClearMonth bool
}
