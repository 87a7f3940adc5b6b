package handler

import (
	budgetsdomain "budget-app-go/internal/domain/budgets"
	expensesdomain "budget-app-go/internal/domain/expenses"
	reportsdomain "budget-app-go/internal/domain/reports"
	"budget-app-go/pkg/logger"
)

type Handlers struct {
	Expenses *expensesdomain.Service
	Budgets  *budgetsdomain.Service
	Reports  *reportsdomain.Service
	log      logger.Logger
}

func New(expenses *expensesdomain.Service, budgets *budgetsdomain.Service, reports *reportsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Expenses: expenses,
		Budgets:  budgets,
		Reports:  reports,
		log:      log,
	}
}
