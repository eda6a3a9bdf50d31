package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	CategoryID    *int            `json:"category_id" db:"category_id"`
	CategoryName  *string         `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Description   string          `json:"description" db:"description"`
	Type          string          `json:"type" db:"type"`
	Date          time.Time       `json:"date" db:"date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// CategorySummary — підсумок транзакцій однієї категорії за період.
type CategorySummary struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary — зведення за період: загальні суми та розбивка за категоріями.
type Summary struct {
	TotalIncome       decimal.Decimal   `json:"total_income"`
	TotalExpense      decimal.Decimal   `json:"total_expense"`
	Balance           decimal.Decimal   `json:"balance"`
	IncomeCategories  []CategorySummary `json:"income_categories"`
	ExpenseCategories []CategorySummary `json:"expense_categories"`
}
