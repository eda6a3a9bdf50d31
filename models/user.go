package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        int       `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password_hash"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserStatistics — агреговані показники користувача для адмін-панелі.
type UserStatistics struct {
	AccountsCount       int             `json:"accounts_count"`
	TransactionsCount   int             `json:"transactions_count"`
	CategoriesCount     int             `json:"categories_count"`
	BudgetsCount        int             `json:"budgets_count"`
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	LastTransactionDate *string         `json:"last_transaction_date"`
}
