package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Budget обмежує витрати однієї категорії в межах вікна start_date..end_date.
// Поля Spent, Remaining та Percent обчислюються сервером і не приймаються на запис.
type Budget struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	CategoryID    int             `json:"category_id" db:"category_id"`
	CategoryName  *string         `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Period        string          `json:"period" db:"period"`
	StartDate     time.Time       `json:"start_date" db:"start_date"`
	EndDate       time.Time       `json:"end_date" db:"end_date"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percent       float64         `json:"percent"`
}
