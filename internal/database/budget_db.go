package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/internal/budget"
	"github.com/opavlenko/finance-manager/models"
)

func CreateBudget(pool *pgxpool.Pool, b *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, period, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := pool.QueryRow(context.Background(), query,
		b.UserID, b.CategoryID, b.Amount, b.Period, b.StartDate, b.EndDate).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("помилка при додаванні бюджету: %w", err)
	}
	return nil
}

// GetBudgetsByUserID повертає бюджети користувача; period="" — всі.
func GetBudgetsByUserID(pool *pgxpool.Pool, userID int, period string) ([]models.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, c.name, COALESCE(c.color, $3),
		       b.amount, b.period, b.start_date, b.end_date
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND ($2 = '' OR b.period = $2)
		ORDER BY b.start_date DESC, b.id DESC`
	rows, err := pool.Query(context.Background(), query, userID, period, models.UncategorizedColor)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання бюджетів: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.CategoryName, &b.CategoryColor,
			&b.Amount, &b.Period, &b.StartDate, &b.EndDate); err != nil {
			return nil, fmt.Errorf("помилка читання бюджету: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func GetBudgetByID(pool *pgxpool.Pool, id, userID int) (*models.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, c.name, COALESCE(c.color, $3),
		       b.amount, b.period, b.start_date, b.end_date
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1 AND b.user_id = $2`

	var b models.Budget
	err := pool.QueryRow(context.Background(), query, id, userID, models.UncategorizedColor).Scan(
		&b.ID, &b.UserID, &b.CategoryID, &b.CategoryName, &b.CategoryColor,
		&b.Amount, &b.Period, &b.StartDate, &b.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка отримання бюджету: %w", err)
	}
	return &b, nil
}

// UpdateBudget оновлює суму та початкову дату. Період і кінцева дата
// після створення незмінні, сервер їх не приймає.
func UpdateBudget(pool *pgxpool.Pool, b *models.Budget) error {
	query := `
		UPDATE budgets SET amount = $1, start_date = $2
		WHERE id = $3 AND user_id = $4`
	result, err := pool.Exec(context.Background(), query, b.Amount, b.StartDate, b.ID, b.UserID)
	if err != nil {
		return fmt.Errorf("помилка оновлення бюджету: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteBudget(pool *pgxpool.Pool, id, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("помилка видалення бюджету: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSpentForBudget повертає суму витрат категорії у вікні бюджету.
func GetSpentForBudget(pool *pgxpool.Pool, userID, categoryID int, startDate, endDate time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = 'expense'
		  AND date >= $3 AND date <= $4`

	var spent decimal.Decimal
	err := pool.QueryRow(context.Background(), query, userID, categoryID, startDate, endDate).Scan(&spent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("помилка обчислення витрат бюджету: %w", err)
	}
	return spent, nil
}

// RenewExpiredBudgets переносить завершені бюджети на наступне вікно:
// новий початок — день після старого кінця, кінець виводиться з періоду.
func RenewExpiredBudgets(pool *pgxpool.Pool) error {
	query := `
		SELECT id, period, end_date FROM budgets WHERE end_date < $1`
	rows, err := pool.Query(context.Background(), query, time.Now())
	if err != nil {
		return fmt.Errorf("помилка пошуку завершених бюджетів: %w", err)
	}
	defer rows.Close()

	type renewal struct {
		id       int
		newStart time.Time
		newEnd   time.Time
	}
	var renewals []renewal
	for rows.Next() {
		var id int
		var period string
		var endDate time.Time
		if err := rows.Scan(&id, &period, &endDate); err != nil {
			return fmt.Errorf("помилка читання бюджету: %w", err)
		}
		newStart := endDate.AddDate(0, 0, 1)
		newEnd, err := budget.DeriveEndDate(newStart, period)
		if err != nil {
			log.Printf("бюджет %d пропущено: %v", id, err)
			continue
		}
		renewals = append(renewals, renewal{id, newStart, newEnd})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range renewals {
		_, err := pool.Exec(context.Background(),
			`UPDATE budgets SET start_date = $1, end_date = $2 WHERE id = $3`,
			r.newStart, r.newEnd, r.id)
		if err != nil {
			return fmt.Errorf("помилка переносу бюджету %d: %w", r.id, err)
		}
	}
	if len(renewals) > 0 {
		log.Printf("перенесено бюджетів на нове вікно: %d", len(renewals))
	}
	return nil
}
