package models

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"

	// DefaultCategoryColor — колір нових категорій, якщо не вказано інший.
	DefaultCategoryColor = "#3B82F6"
	// UncategorizedColor — колір транзакцій без категорії у зведеннях.
	UncategorizedColor = "#808080"
)

type Category struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"user_id" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Type   string `json:"type" db:"type"`
	Color  string `json:"color" db:"color"`
}
