package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/models"
)

func CreateAccount(pool *pgxpool.Pool, account *models.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, balance, currency, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		account.UserID, account.Name, account.Balance, account.Currency, account.IsActive).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("помилка при додаванні рахунку: %w", err)
	}
	return nil
}

// GetAccountsByUserID повертає рахунки користувача; isActive=nil — без фільтра.
func GetAccountsByUserID(pool *pgxpool.Pool, userID int, isActive *bool) ([]models.Account, error) {
	query := `
		SELECT id, user_id, name, balance, currency, is_active, created_at
		FROM accounts
		WHERE user_id = $1 AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY created_at`
	rows, err := pool.Query(context.Background(), query, userID, isActive)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання рахунків: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.Currency, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("помилка читання рахунку: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func GetAccountByID(pool *pgxpool.Pool, id, userID int) (*models.Account, error) {
	query := `
		SELECT id, user_id, name, balance, currency, is_active, created_at
		FROM accounts
		WHERE id = $1 AND user_id = $2`

	var a models.Account
	err := pool.QueryRow(context.Background(), query, id, userID).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Balance, &a.Currency, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка отримання рахунку: %w", err)
	}
	return &a, nil
}

func UpdateAccount(pool *pgxpool.Pool, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, balance = $2, currency = $3, is_active = $4
		WHERE id = $5 AND user_id = $6`
	result, err := pool.Exec(context.Background(), query,
		account.Name, account.Balance, account.Currency, account.IsActive, account.ID, account.UserID)
	if err != nil {
		return fmt.Errorf("помилка оновлення рахунку: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteAccount(pool *pgxpool.Pool, id, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("помилка видалення рахунку: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
