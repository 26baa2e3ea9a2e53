package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense расход за день. ExpenseDate — дата, к которой отнесён расход,
// она может отличаться от даты создания записи (расход задним числом).
type Expense struct {
	ID          int             `json:"id"`
	ExpenseDate Date            `json:"expense_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DummyExpense используется для приёма данных расхода из JSON-запроса.
// Дата опциональна: если не передана, подставляется сегодняшняя.
type DummyExpense struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	ExpenseDate string          `json:"expense_date,omitempty" validate:"omitempty"`
}
