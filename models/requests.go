package models

import "github.com/shopspring/decimal"

// Типізовані тіла запитів. Необов'язкові поля позначені вказівниками,
// щоб відрізняти "не передано" від порожнього значення.

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountCreateRequest struct {
	Name     string           `json:"name"`
	Balance  *decimal.Decimal `json:"balance"`
	Currency *string          `json:"currency"`
	IsActive *bool            `json:"is_active"`
}

type AccountUpdateRequest struct {
	Name     *string          `json:"name"`
	Balance  *decimal.Decimal `json:"balance"`
	Currency *string          `json:"currency"`
	IsActive *bool            `json:"is_active"`
}

type CategoryCreateRequest struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color"`
}

// CategoryUpdateRequest не містить type: тип категорії незмінний після створення.
type CategoryUpdateRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type TransactionCreateRequest struct {
	CategoryID  *int            `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
}

type TransactionUpdateRequest struct {
	CategoryID  *int             `json:"category_id"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}

type BudgetCreateRequest struct {
	CategoryID int             `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
}

// BudgetUpdateRequest не містить period та end_date: після створення вони незмінні.
type BudgetUpdateRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	StartDate *string          `json:"start_date"`
}

type AdminUserUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}
