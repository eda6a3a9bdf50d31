package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/models"
)

// TransactionFilter — необов'язкові фільтри списку транзакцій.
type TransactionFilter struct {
	Type       string
	CategoryID *int
	StartDate  *time.Time
	EndDate    *time.Time
}

func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, description, type, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		transaction.UserID, transaction.CategoryID, transaction.Amount,
		transaction.Description, transaction.Type, transaction.Date).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("помилка при додаванні транзакції: %w", err)
	}
	return nil
}

// GetTransactionsByUserID повертає транзакції користувача за фільтром,
// найновіші першими. Назва та колір категорії підтягуються джойном.
func GetTransactionsByUserID(pool *pgxpool.Pool, userID int, filter TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.category_id, c.name,
		       COALESCE(c.color, $6), t.amount, t.description, t.type, t.date, t.created_at
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		  AND ($2 = '' OR t.type = $2)
		  AND ($3::int IS NULL OR t.category_id = $3)
		  AND ($4::date IS NULL OR t.date >= $4)
		  AND ($5::date IS NULL OR t.date <= $5)
		ORDER BY t.date DESC, t.id DESC`
	rows, err := pool.Query(context.Background(), query,
		userID, filter.Type, filter.CategoryID, filter.StartDate, filter.EndDate,
		models.UncategorizedColor)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання транзакцій: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.CategoryName,
			&t.CategoryColor, &t.Amount, &t.Description, &t.Type, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("помилка читання транзакції: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func GetTransactionByID(pool *pgxpool.Pool, id, userID int) (*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.category_id, c.name,
		       COALESCE(c.color, $3), t.amount, t.description, t.type, t.date, t.created_at
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1 AND t.user_id = $2`

	var t models.Transaction
	err := pool.QueryRow(context.Background(), query, id, userID, models.UncategorizedColor).Scan(
		&t.ID, &t.UserID, &t.CategoryID, &t.CategoryName, &t.CategoryColor,
		&t.Amount, &t.Description, &t.Type, &t.Date, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка отримання транзакції: %w", err)
	}
	return &t, nil
}

func UpdateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, description = $3, date = $4
		WHERE id = $5 AND user_id = $6`
	result, err := pool.Exec(context.Background(), query,
		transaction.CategoryID, transaction.Amount, transaction.Description,
		transaction.Date, transaction.ID, transaction.UserID)
	if err != nil {
		return fmt.Errorf("помилка оновлення транзакції: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTransaction(pool *pgxpool.Pool, id, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("помилка видалення транзакції: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSummary рахує зведення за період: загальні доходи й витрати та
// розбивку за категоріями кожного типу.
func GetSummary(pool *pgxpool.Pool, userID int, startDate, endDate *time.Time) (*models.Summary, error) {
	query := `
		SELECT t.type, COALESCE(t.category_id, 0), COALESCE(c.name, 'Без категорії'),
		       COALESCE(c.color, $4), SUM(t.amount)
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		  AND ($2::date IS NULL OR t.date >= $2)
		  AND ($3::date IS NULL OR t.date <= $3)
		GROUP BY t.type, COALESCE(t.category_id, 0), c.name, c.color
		ORDER BY SUM(t.amount) DESC`
	rows, err := pool.Query(context.Background(), query,
		userID, startDate, endDate, models.UncategorizedColor)
	if err != nil {
		return nil, fmt.Errorf("помилка обчислення зведення: %w", err)
	}
	defer rows.Close()

	summary := &models.Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		IncomeCategories:  []models.CategorySummary{},
		ExpenseCategories: []models.CategorySummary{},
	}
	for rows.Next() {
		var txType string
		var cs models.CategorySummary
		if err := rows.Scan(&txType, &cs.ID, &cs.Name, &cs.Color, &cs.Amount); err != nil {
			return nil, fmt.Errorf("помилка читання зведення: %w", err)
		}
		switch txType {
		case models.CategoryTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(cs.Amount)
			summary.IncomeCategories = append(summary.IncomeCategories, cs)
		case models.CategoryTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(cs.Amount)
			summary.ExpenseCategories = append(summary.ExpenseCategories, cs)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}
